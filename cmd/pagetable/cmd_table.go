package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	fs "github.com/ungerik/go-fs"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	pagetable "github.com/domonda/go-pagetable"
	"github.com/domonda/go-pagetable/dom"
	"github.com/domonda/go-pagetable/host"
)

var (
	tableID     string
	sortKeys    []string
	filterTerm  string
	outDir      string
	filename    string
	visibleOnly bool
	writeBOM    bool
)

var sortCmd = &cobra.Command{
	Use:   "sort [file]",
	Short: "Sort a table like clicking its sortable headers",
	Long: `Sorts the body rows of a table by the column keys given with --by.
Every --by toggles the direction of that column like a header click,
so the first sort of a column is descending.`,
	Args: cobra.ExactArgs(1),
	RunE: runTransform,
}

var filterCmd = &cobra.Command{
	Use:   "filter [file]",
	Short: "Hide the table rows not containing a search term",
	Args:  cobra.ExactArgs(1),
	RunE:  runTransform,
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export a table as CSV or Excel file",
	Long: `Exports all rows of a table, header rows included, into --out-dir.
Filenames ending in .xlsx produce an Excel workbook, all others CSV.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the visible rows of a table",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func initTableCommands() {
	for _, cmd := range []*cobra.Command{sortCmd, filterCmd, exportCmd, showCmd} {
		cmd.Flags().StringVarP(&tableID, "table", "t", "", "Table id (default: first table with body)")
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{sortCmd, showCmd} {
		cmd.Flags().StringSliceVar(&sortKeys, "by", nil, "Sort column keys in click order")
	}
	for _, cmd := range []*cobra.Command{filterCmd, showCmd} {
		cmd.Flags().StringVar(&filterTerm, "term", "", "Search term")
	}
	exportCmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "Directory for the exported file")
	exportCmd.Flags().StringVarP(&filename, "filename", "f", "", "Export filename (default from config)")
	exportCmd.Flags().BoolVar(&visibleOnly, "visible-only", false, "Export only rows not hidden by --term")
	exportCmd.Flags().StringVar(&filterTerm, "term", "", "Search term applied before export")
	exportCmd.Flags().BoolVar(&writeBOM, "bom", false, "Prefix CSV with a UTF-8 byte order mark")
}

func prepareTable(cmd *cobra.Command, args []string) (*tableRun, error) {
	run, err := newTableRun(cmd, args[0], newMemoryHost())
	if err != nil {
		return nil, err
	}
	for _, key := range sortKeys {
		if run.page.Sorter.Column(run.table, key) == nil {
			return nil, fmt.Errorf("table %q has no sortable column %q", run.table.ID(), key)
		}
		run.page.Sorter.SortTableBy(run.table, key)
	}
	if filterRequested(cmd) {
		run.page.Filter.Filter(run.table, filterTerm)
	}
	return run, nil
}

// filterRequested reports if --term was passed,
// an explicitly empty term shows all rows again.
func filterRequested(cmd *cobra.Command) bool {
	return filterTerm != "" || cmd.Flags().Changed("term")
}

// runTransform sorts and filters the table and writes the changed page.
func runTransform(cmd *cobra.Command, args []string) error {
	run, err := prepareTable(cmd, args)
	if err != nil {
		return err
	}
	return writePage(cmd, run.page)
}

func runShow(cmd *cobra.Command, args []string) error {
	run, err := prepareTable(cmd, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(run.table))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	dir := fs.File(outDir)
	h := host.NewDir(location, dir)
	run, err := newTableRun(cmd, args[0], h)
	if err != nil {
		return err
	}
	if run.table.ID() == "" {
		return errors.New("can't export a table without id")
	}
	if filterRequested(cmd) {
		run.page.Filter.Filter(run.table, filterTerm)
	}
	var options []pagetable.Option
	if visibleOnly {
		options = append(options, pagetable.OptionVisibleRowsOnly)
	}
	if writeBOM {
		options = append(options, pagetable.OptionWriteBOM)
	}
	if err := run.page.Exporter.ExportTable(run.table.ID(), filename, options...); err != nil {
		return err
	}
	for _, download := range h.Downloads {
		logger.Info("Exported table",
			zap.String("table", run.table.ID()),
			zap.String("file", string(h.File(download.Filename))),
		)
		fmt.Fprintln(cmd.OutOrStdout(), h.File(download.Filename).LocalPath())
	}
	return nil
}

// renderTable renders the visible body rows of t as a bordered
// text table using the header cells as column titles.
func renderTable(t *dom.Table) string {
	var headers []string
	for _, th := range t.Headers() {
		headers = append(headers, dom.TextContent(th))
	}
	body := t.Body()
	view := t.FilteredView(func(row *html.Node) bool {
		return row.Parent == body && !dom.IsHidden(row)
	})
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(pagetable.ViewRows(view, false)...).
		Render()
}
