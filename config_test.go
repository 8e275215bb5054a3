package pagetable

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultPageConfig(t *testing.T) {
	cfg := DefaultPageConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "export.csv", cfg.Export.DefaultFilename)
	require.Equal(t, "data-sort", cfg.Sort.KeyAttr)
	require.Equal(t, 5*time.Second, cfg.Alerts.AutoClose)

	tag, err := cfg.LanguageTag()
	require.NoError(t, err)
	require.Equal(t, language.English, tag)
}

func TestLoadPageConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadPageConfig(filepath.Join(dir, "missing.yaml"))
		require.NoError(t, err)
		require.Equal(t, DefaultPageConfig(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		path := filepath.Join(dir, "page.yaml")
		data := "language: de\n" +
			"export:\n" +
			"  default_filename: lager.csv\n" +
			"alerts:\n" +
			"  auto_close: 2s\n" +
			"shortcuts: false\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		cfg, err := LoadPageConfig(path)
		require.NoError(t, err)
		require.Equal(t, "de", cfg.Language)
		require.Equal(t, "lager.csv", cfg.Export.DefaultFilename)
		require.Equal(t, "data-export-table", cfg.Export.TableAttr, "unset values keep defaults")
		require.Equal(t, 2*time.Second, cfg.Alerts.AutoClose)
		require.False(t, cfg.Shortcuts)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sort: [\n"), 0o600))
		_, err := LoadPageConfig(path)
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sort:\n  key_attr: sort\n"), 0o600))
		_, err := LoadPageConfig(path)
		require.ErrorContains(t, err, "must start with data-")
	})
}

func TestPageConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*PageConfig)
		wantErr bool
	}{
		{name: "defaults", modify: func(*PageConfig) {}},
		{name: "empty language", modify: func(c *PageConfig) { c.Language = "" }},
		{name: "bad language", modify: func(c *PageConfig) { c.Language = "not a tag!" }, wantErr: true},
		{name: "missing key attr", modify: func(c *PageConfig) { c.Sort.KeyAttr = "" }, wantErr: true},
		{name: "missing filename", modify: func(c *PageConfig) { c.Export.DefaultFilename = "" }, wantErr: true},
		{name: "optional table attr", modify: func(c *PageConfig) { c.Search.TableAttr = "" }},
		{name: "negative refresh", modify: func(c *PageConfig) { c.Dashboard.Refresh = -time.Second }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPageConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}

	var nilConfig *PageConfig
	require.Error(t, nilConfig.Validate())
}
