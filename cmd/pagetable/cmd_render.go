package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	pagetable "github.com/domonda/go-pagetable"
	"github.com/domonda/go-pagetable/csvtable"
	"github.com/domonda/go-pagetable/exceltable"
	"github.com/domonda/go-pagetable/htmltable"
)

var (
	renderTableID    string
	renderTableClass string
	renderTitle      string
	renderSortKeys   []string
	renderHrefColumn int
	renderHrefPrefix string
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a CSV or Excel file as sortable HTML table",
	Long: `Renders the rows of a CSV file, or of the first sheet of an .xlsx file,
as HTML table with the hooks of the page behaviors.
The first row is used as header.

Sortable columns are given as key=column-index pairs:

  pagetable render items.csv --sort name=0 --sort qty=2 --href-column 0 --href-prefix /items/`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func initRenderCommand() {
	renderCmd.Flags().StringVar(&renderTableID, "id", "", "Id of the table element")
	renderCmd.Flags().StringVar(&renderTableClass, "class", "table table-hover", "Class of the table element")
	renderCmd.Flags().StringVar(&renderTitle, "title", "", "Table caption (default: sheet name of .xlsx files)")
	renderCmd.Flags().StringSliceVar(&renderSortKeys, "sort", nil, "Sortable column as key=index")
	renderCmd.Flags().IntVar(&renderHrefColumn, "href-column", -1, "Column whose value is appended to --href-prefix as row target")
	renderCmd.Flags().StringVar(&renderHrefPrefix, "href-prefix", "", "Prefix of the row targets")
	rootCmd.AddCommand(renderCmd)
}

func readView(cmd *cobra.Command, path string) (pagetable.View, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		sheet, err := exceltable.ReadFirstSheet(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return pagetable.NewStringsView(sheet.Title(), sheet.Rows), nil
	}
	rows, err := csvtable.Parse(data)
	if err != nil {
		return nil, err
	}
	return pagetable.NewStringsView("", rows), nil
}

func runRender(cmd *cobra.Command, args []string) error {
	view, err := readView(cmd, args[0])
	if err != nil {
		return err
	}
	if renderTitle != "" {
		view = pagetable.ViewWithTitle(view, renderTitle)
	}
	writer := htmltable.NewWriterForConfig(config).
		WithTableID(renderTableID).
		WithTableClass(renderTableClass).
		WithHeaderRow(true)

	for _, pair := range renderSortKeys {
		key, index, ok := strings.Cut(pair, "=")
		col, err := strconv.Atoi(index)
		if !ok || key == "" || err != nil || col < 0 || col >= len(view.Columns()) {
			return fmt.Errorf("invalid sort column %q, expected key=index", pair)
		}
		writer = writer.WithSortKey(col, key)
	}

	if renderHrefColumn >= 0 {
		if renderHrefColumn >= len(view.Columns()) {
			return fmt.Errorf("href column %d out of range", renderHrefColumn)
		}
		writer = writer.WithRowTarget(func(row int) string {
			value := pagetable.CellString(view, row, renderHrefColumn)
			if value == "" {
				return ""
			}
			return renderHrefPrefix + value
		})
	}

	if err := writer.WriteView(cmd.Context(), cmd.OutOrStdout(), view); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
