package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	pagetable "github.com/domonda/go-pagetable"
	"github.com/domonda/go-pagetable/dom"
	"github.com/domonda/go-pagetable/labels"
)

var (
	fromValue string
	toValue   string
	rowIndex  int
	key       string
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Derive the movement type from a from and to location",
	Long: `Prints the movement type for the --from and --to values.
With a file the values are selected in the location fields of the
page and the movement type indicator is updated like in a browser.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

var activateCmd = &cobra.Command{
	Use:   "activate [file]",
	Short: "Activate a table row and print the navigation target",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivate,
}

func initFormCommands() {
	classifyCmd.Flags().StringVar(&fromValue, "from", "", "Value of the from location")
	classifyCmd.Flags().StringVar(&toValue, "to", "", "Value of the to location")
	activateCmd.Flags().StringVarP(&tableID, "table", "t", "", "Table id (default: first table with body)")
	activateCmd.Flags().IntVarP(&rowIndex, "row", "r", 0, "Index of the body row")
	activateCmd.Flags().StringVarP(&key, "key", "k", "", "Press this key on the row instead of clicking it")
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(activateCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		tag, err := config.LanguageTag()
		if err != nil {
			return err
		}
		l, err := labels.New(tag)
		if err != nil {
			return err
		}
		c := pagetable.Classify(fromValue, toValue)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", l.Classification(c), c.AlertClass())
		return nil
	}

	page, err := openPage(cmd, args[0], newMemoryHost())
	if err != nil {
		return err
	}
	if !page.Indicator.Bound() {
		return fmt.Errorf("page has no #%s and #%s fields", config.Indicator.FromID, config.Indicator.ToID)
	}
	fields := []struct{ id, value string }{
		{config.Indicator.FromID, fromValue},
		{config.Indicator.ToID, toValue},
	}
	for _, f := range fields {
		if !page.ChangeField(page.Doc.ElementByID(f.id), f.value) {
			return fmt.Errorf("#%s has no option %q", f.id, f.value)
		}
	}
	c := page.Indicator.Classification()
	logger.Debug("Classified movement", zap.Stringer("classification", c))
	return writePage(cmd, page)
}

func runActivate(cmd *cobra.Command, args []string) error {
	h := newMemoryHost()
	run, err := newTableRun(cmd, args[0], h)
	if err != nil {
		return err
	}
	rows := run.table.BodyRows()
	if rowIndex < 0 || rowIndex >= len(rows) {
		return fmt.Errorf("row %d out of range, table has %d body rows", rowIndex, len(rows))
	}
	row := rows[rowIndex]
	if key != "" {
		run.page.KeyDown(row, key, false, false)
	} else {
		cells := dom.Cells(row)
		target := row
		if len(cells) > 0 {
			target = cells[0]
		}
		run.page.Click(target, 0, 0)
	}
	if len(h.Navigations) == 0 {
		logger.Info("Row not activatable", zap.Int("row", rowIndex))
		return nil
	}
	for _, url := range h.Navigations {
		fmt.Fprintln(cmd.OutOrStdout(), url)
	}
	return nil
}
