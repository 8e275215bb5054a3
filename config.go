package pagetable

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// PageConfig names the hooks of the DOM contract
// and the settings of the page behaviors.
// It is validated once when a page is initialized.
type PageConfig struct {
	// Language used for collation and labels, as BCP 47 tag.
	Language string `yaml:"language"`

	Sort      SortConfig      `yaml:"sort"`
	Search    SearchConfig    `yaml:"search"`
	Export    ExportConfig    `yaml:"export"`
	Indicator IndicatorConfig `yaml:"indicator"`
	Rows      RowsConfig      `yaml:"rows"`
	Alerts    AlertsConfig    `yaml:"alerts"`
	Dashboard DashboardConfig `yaml:"dashboard"`

	// ConfirmMessage is used for [data-confirm] elements without a message.
	ConfirmMessage string `yaml:"confirm_message"`
	// Shortcuts enables Ctrl/Cmd+N and Escape navigation.
	Shortcuts bool `yaml:"shortcuts"`
	// ResponsiveClass is the class of the wrapper element around tables.
	ResponsiveClass string `yaml:"responsive_class"`
}

type SortConfig struct {
	// KeyAttr marks sortable headers and holds the column key.
	KeyAttr string `yaml:"key_attr"`
	// OrderAttr persists the sort direction on the header.
	OrderAttr string `yaml:"order_attr"`
	// ClassPrefix is prepended to "asc" or "desc" for the sort indicator class.
	ClassPrefix string `yaml:"class_prefix"`
}

type SearchConfig struct {
	InputID string `yaml:"input_id"`
	// TableAttr on the search input names the id of the filtered table.
	TableAttr string `yaml:"table_attr"`
}

type ExportConfig struct {
	DefaultFilename string `yaml:"default_filename"`
	TableAttr       string `yaml:"table_attr"`
	FilenameAttr    string `yaml:"filename_attr"`
	WriteBOM        bool   `yaml:"write_bom"`
}

type IndicatorConfig struct {
	FromID    string `yaml:"from_id"`
	ToID      string `yaml:"to_id"`
	DisplayID string `yaml:"display_id"`
}

type RowsConfig struct {
	ActivatableClass string `yaml:"activatable_class"`
	TargetAttr       string `yaml:"target_attr"`
	ActivationKey    string `yaml:"activation_key"`
}

type AlertsConfig struct {
	DismissibleClass string        `yaml:"dismissible_class"`
	AutoClose        time.Duration `yaml:"auto_close"`
}

type DashboardConfig struct {
	Path    string        `yaml:"path"`
	Refresh time.Duration `yaml:"refresh"`
}

// DefaultPageConfig returns the configuration matching
// the markup rendered by the inventory application.
func DefaultPageConfig() *PageConfig {
	return &PageConfig{
		Language: "en",
		Sort: SortConfig{
			KeyAttr:     "data-sort",
			OrderAttr:   "data-order",
			ClassPrefix: "sort-",
		},
		Search: SearchConfig{
			InputID:   "table-search",
			TableAttr: "data-table",
		},
		Export: ExportConfig{
			DefaultFilename: "export.csv",
			TableAttr:       "data-export-table",
			FilenameAttr:    "data-export-filename",
		},
		Indicator: IndicatorConfig{
			FromID:    "from_location",
			ToID:      "to_location",
			DisplayID: "movement-type-indicator",
		},
		Rows: RowsConfig{
			ActivatableClass: "clickable-row",
			TargetAttr:       "data-href",
			ActivationKey:    "Enter",
		},
		Alerts: AlertsConfig{
			DismissibleClass: "alert-dismissible",
			AutoClose:        5 * time.Second,
		},
		Dashboard: DashboardConfig{
			Path:    "/",
			Refresh: 30 * time.Second,
		},
		ConfirmMessage:  "Are you sure you want to delete this item?",
		Shortcuts:       true,
		ResponsiveClass: "table-responsive",
	}
}

// LoadPageConfig loads a YAML file over the defaults.
// A missing file returns the defaults.
func LoadPageConfig(path string) (*PageConfig, error) {
	cfg := DefaultPageConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read page config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse page config: %w", err)
	}
	return cfg, cfg.Validate()
}

// LanguageTag parses the configured language.
func (c *PageConfig) LanguageTag() (language.Tag, error) {
	if c.Language == "" {
		return language.English, nil
	}
	return language.Parse(c.Language)
}

// Validate checks that every hook of the DOM contract is named.
func (c *PageConfig) Validate() error {
	if c == nil {
		return errors.New("<nil> PageConfig")
	}
	if _, err := c.LanguageTag(); err != nil {
		return fmt.Errorf("invalid language %q: %w", c.Language, err)
	}
	required := []struct {
		name, value string
	}{
		{"sort.key_attr", c.Sort.KeyAttr},
		{"sort.order_attr", c.Sort.OrderAttr},
		{"search.input_id", c.Search.InputID},
		{"export.default_filename", c.Export.DefaultFilename},
		{"export.table_attr", c.Export.TableAttr},
		{"rows.activatable_class", c.Rows.ActivatableClass},
		{"rows.target_attr", c.Rows.TargetAttr},
		{"rows.activation_key", c.Rows.ActivationKey},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("missing page config %s", r.name)
		}
	}
	for _, attr := range []string{c.Sort.KeyAttr, c.Sort.OrderAttr, c.Search.TableAttr, c.Export.TableAttr, c.Rows.TargetAttr} {
		if attr != "" && !strings.HasPrefix(attr, "data-") {
			return fmt.Errorf("page config attribute %q must start with data-", attr)
		}
	}
	if c.Alerts.AutoClose < 0 || c.Dashboard.Refresh < 0 {
		return errors.New("page config durations must not be negative")
	}
	return nil
}
