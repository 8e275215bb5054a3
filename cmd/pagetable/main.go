// Command pagetable runs the behaviors of an inventory page
// on an HTML file: sorting, filtering and exporting tables,
// deriving the movement type and activating rows.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	pagetable "github.com/domonda/go-pagetable"
	"github.com/domonda/go-pagetable/behavior"
	"github.com/domonda/go-pagetable/dom"
	"github.com/domonda/go-pagetable/host"
)

var (
	// Global flags
	verbose    bool
	configPath string
	lang       string
	location   string

	logger *zap.Logger
	config *pagetable.PageConfig
)

var rootCmd = &cobra.Command{
	Use:   "pagetable",
	Short: "Run inventory page behaviors on HTML files",
	Long: `pagetable loads a server rendered inventory page and runs
the same behaviors a browser would: table sorting, search filtering,
CSV and Excel export, the movement type indicator and row activation.

Commands that change the page write the resulting HTML to stdout.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return loadConfig()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "pagetable.yaml", "Page config file (defaults if missing)")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "Language for collation and labels (overrides config)")
	rootCmd.PersistentFlags().StringVar(&location, "location", "/", "Path of the page location")

	initTableCommands()
	initFormCommands()
	initRenderCommand()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() error {
	cfg, err := pagetable.LoadPageConfig(configPath)
	if err != nil {
		return err
	}
	if lang != "" {
		cfg.Language = lang
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	config = cfg
	return nil
}

// readInput reads the file at path or stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// openPage parses the HTML file at path and initializes
// all page behaviors with h as host.
func openPage(cmd *cobra.Command, path string, h behavior.Host) (*behavior.Page, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	doc, err := dom.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	page, err := behavior.NewPage(doc, h, behavior.WithConfig(config), behavior.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	page.Init()
	return page, nil
}

func newMemoryHost() *host.Memory {
	return host.NewMemory(location)
}

// tableByID returns the table with id or the first table
// of the page with a body if id is empty.
func tableByID(page *behavior.Page, id string) (*dom.Table, error) {
	if id != "" {
		if table := page.Doc.TableByID(id); table != nil {
			return table, nil
		}
		return nil, fmt.Errorf("no table with id %q", id)
	}
	for _, table := range page.Doc.Tables() {
		if table.Body() != nil {
			return table, nil
		}
	}
	return nil, errors.New("page has no table with body")
}

func writePage(cmd *cobra.Command, page *behavior.Page) error {
	return page.Doc.Render(cmd.OutOrStdout())
}

type tableRun struct {
	page  *behavior.Page
	table *dom.Table
}

func newTableRun(cmd *cobra.Command, path string, h behavior.Host) (*tableRun, error) {
	page, err := openPage(cmd, path, h)
	if err != nil {
		return nil, err
	}
	t, err := tableByID(page, tableID)
	if err != nil {
		return nil, err
	}
	return &tableRun{page: page, table: t}, nil
}
