package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pagetable "github.com/domonda/go-pagetable"
)

const itemsPage = `<!DOCTYPE html>
<html><body>
<input id="table-search" type="text">
<table id="items">
  <thead><tr><th data-sort="name">Name</th><th data-sort="qty">Qty</th></tr></thead>
  <tbody>
    <tr class="clickable-row" data-href="/items/1"><td>Widget</td><td data-qty="10">ten</td></tr>
    <tr class="clickable-row" data-href="/items/2"><td>gadget</td><td data-qty="2">two</td></tr>
    <tr class="clickable-row" data-href="/items/3"><td>Bolt</td><td data-qty="10">ten</td></tr>
    <tr class="clickable-row"><td>Nut</td><td data-qty="5">five</td></tr>
  </tbody>
</table>
<table><tbody><tr><td>no id</td></tr></tbody></table>
</body></html>`

const movementPage = `<!DOCTYPE html>
<html><body>
<form id="movement" method="post">
  <select id="from_location"><option value="">-</option><option value="1">Shelf A</option></select>
  <select id="to_location"><option value="">-</option><option value="2">Shelf B</option></select>
  <div id="movement-type-indicator" class="alert" style="display: none"></div>
</form>
</body></html>`

// setup resets the global flags and returns a command
// writing into the returned buffer.
func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	config = pagetable.DefaultPageConfig()
	location = "/"
	tableID, sortKeys, filterTerm = "", nil, ""
	outDir, filename, visibleOnly, writeBOM = ".", "", false, false
	fromValue, toValue, rowIndex, key = "", "", 0, ""
	renderTableID, renderTableClass, renderTitle = "", "", ""
	renderSortKeys, renderHrefColumn, renderHrefPrefix = nil, -1, ""

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&out)
	return cmd, &out
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	lang = "de"
	defer func() { configPath, lang = "pagetable.yaml", "" }()

	require.NoError(t, loadConfig())
	require.Equal(t, "de", config.Language)

	lang = "not a language tag"
	require.Error(t, loadConfig())
}

func TestSortCmd(t *testing.T) {
	cmd, out := setup(t)
	page := writeFile(t, "items.html", itemsPage)

	sortKeys = []string{"name"}
	require.NoError(t, runTransform(cmd, []string{page}))
	html := out.String()
	require.Contains(t, html, `data-order="desc"`)
	require.Less(t, strings.Index(html, "Widget"), strings.Index(html, "Bolt"))

	out.Reset()
	sortKeys = []string{"name", "name"}
	require.NoError(t, runTransform(cmd, []string{page}))
	html = out.String()
	require.Contains(t, html, `data-order="asc"`)
	require.Less(t, strings.Index(html, "Bolt"), strings.Index(html, "Widget"))

	sortKeys = []string{"price"}
	require.Error(t, runTransform(cmd, []string{page}))
}

func TestFilterCmd(t *testing.T) {
	cmd, out := setup(t)
	page := writeFile(t, "items.html", itemsPage)

	filterTerm = "GAD"
	require.NoError(t, runTransform(cmd, []string{page}))
	require.Equal(t, 3, strings.Count(out.String(), "display: none"))
}

func TestFilterCmd_EmptyTerm(t *testing.T) {
	cmd, out := setup(t)
	page := writeFile(t, "items.html", strings.Replace(itemsPage,
		`<tr class="clickable-row" data-href="/items/2">`,
		`<tr class="clickable-row" data-href="/items/2" style="display: none">`, 1))

	require.NoError(t, runTransform(cmd, []string{page}))
	require.Equal(t, 1, strings.Count(out.String(), "display: none"), "no --term keeps the page")

	out.Reset()
	cmd.Flags().StringVar(&filterTerm, "term", "", "")
	require.NoError(t, cmd.Flags().Set("term", ""))
	require.NoError(t, runTransform(cmd, []string{page}))
	require.NotContains(t, out.String(), "display: none")
}

func TestShowCmd(t *testing.T) {
	cmd, out := setup(t)
	page := writeFile(t, "items.html", itemsPage)

	sortKeys = []string{"qty"}
	filterTerm = "ten"
	require.NoError(t, runShow(cmd, []string{page}))
	text := out.String()
	require.Contains(t, text, "Name")
	require.Contains(t, text, "Widget")
	require.Contains(t, text, "Bolt")
	require.NotContains(t, text, "gadget")
	require.NotContains(t, text, "Nut")

	tableID = "missing"
	require.Error(t, runShow(cmd, []string{page}))
}

func TestShowCmd_HiddenRows(t *testing.T) {
	cmd, out := setup(t)
	page := writeFile(t, "items.html", strings.Replace(itemsPage,
		`<tr class="clickable-row" data-href="/items/2">`,
		`<tr class="clickable-row" data-href="/items/2" style="DISPLAY:none">`, 1))

	require.NoError(t, runShow(cmd, []string{page}))
	require.Contains(t, out.String(), "Widget")
	require.NotContains(t, out.String(), "gadget")
	require.NotContains(t, out.String(), "no id")
}

func TestExportCmd(t *testing.T) {
	cmd, out := setup(t)
	page := writeFile(t, "items.html", itemsPage)

	outDir = t.TempDir()
	filename = "items.csv"
	tableID = "items"
	require.NoError(t, runExport(cmd, []string{page}))
	exported := filepath.Join(outDir, "items.csv")
	require.Equal(t, exported, strings.TrimSpace(out.String()))

	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), `"Name","Qty"`), string(data))
	require.Contains(t, string(data), `"gadget","two"`)

	t.Run("visible only", func(t *testing.T) {
		filterTerm = "bolt"
		visibleOnly = true
		filename = "bolts.csv"
		require.NoError(t, runExport(cmd, []string{page}))
		data, err := os.ReadFile(filepath.Join(outDir, "bolts.csv"))
		require.NoError(t, err)
		require.Contains(t, string(data), "Bolt")
		require.NotContains(t, string(data), "Widget")
	})

	t.Run("table without id", func(t *testing.T) {
		cmd, _ := setup(t)
		outDir = t.TempDir()
		page := writeFile(t, "noid.html", `<table><tbody><tr><td>x</td></tr></tbody></table>`)
		require.Error(t, runExport(cmd, []string{page}))
	})
}

func TestClassifyCmd(t *testing.T) {
	tests := []struct {
		from, to string
		want     string
	}{
		{from: "1", to: "2", want: "Transfer\talert-primary\n"},
		{from: "", to: "2", want: "Stock In\talert-success\n"},
		{from: "1", to: "", want: "Stock Out\talert-danger\n"},
		{from: "", to: "", want: "\t\n"},
	}
	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			cmd, out := setup(t)
			fromValue, toValue = tt.from, tt.to
			require.NoError(t, runClassify(cmd, nil))
			require.Equal(t, tt.want, out.String())
		})
	}

	t.Run("german", func(t *testing.T) {
		cmd, out := setup(t)
		config.Language = "de"
		toValue = "2"
		require.NoError(t, runClassify(cmd, nil))
		require.Equal(t, "Wareneingang\talert-success\n", out.String())
	})

	t.Run("page", func(t *testing.T) {
		cmd, out := setup(t)
		page := writeFile(t, "movement.html", movementPage)
		fromValue, toValue = "1", "2"
		require.NoError(t, runClassify(cmd, []string{page}))
		require.Contains(t, out.String(), `class="alert alert-primary"`)
		require.Contains(t, out.String(), "<strong>Transfer</strong>")
	})

	t.Run("unknown option", func(t *testing.T) {
		cmd, _ := setup(t)
		page := writeFile(t, "movement.html", movementPage)
		fromValue = "9"
		require.Error(t, runClassify(cmd, []string{page}))
	})

	t.Run("page without fields", func(t *testing.T) {
		cmd, _ := setup(t)
		page := writeFile(t, "items.html", itemsPage)
		require.Error(t, runClassify(cmd, []string{page}))
	})
}

func TestActivateCmd(t *testing.T) {
	page := writeFile(t, "items.html", itemsPage)

	cmd, out := setup(t)
	require.NoError(t, runActivate(cmd, []string{page}))
	require.Equal(t, "/items/1\n", out.String())

	cmd, out = setup(t)
	rowIndex = 2
	key = "Enter"
	require.NoError(t, runActivate(cmd, []string{page}))
	require.Equal(t, "/items/3\n", out.String())

	cmd, out = setup(t)
	rowIndex = 3
	require.NoError(t, runActivate(cmd, []string{page}))
	require.Empty(t, out.String())

	cmd, _ = setup(t)
	rowIndex = 4
	require.Error(t, runActivate(cmd, []string{page}))
}

func TestRenderCmd(t *testing.T) {
	cmd, out := setup(t)
	input := writeFile(t, "items.csv", "SKU,Name\nA-1,Bolt\n,Nut\n")

	renderTableID = "items"
	renderSortKeys = []string{"sku=0", "name=1"}
	renderHrefColumn = 0
	renderHrefPrefix = "/items/"
	require.NoError(t, runRender(cmd, []string{input}))
	html := out.String()
	require.Contains(t, html, `<table id='items'>`)
	require.Contains(t, html, `<th data-sort="name">Name</th>`)
	require.Contains(t, html, `<tr class="clickable-row" tabindex="0" data-href="/items/A-1">`)
	require.Contains(t, html, `<tr><td data-sku=""></td><td data-name="Nut">Nut</td></tr>`)
	require.NotContains(t, html, "<caption>")

	t.Run("title", func(t *testing.T) {
		cmd, out := setup(t)
		renderTitle = "Stock"
		require.NoError(t, runRender(cmd, []string{input}))
		require.Contains(t, out.String(), "<caption>Stock</caption>")
	})

	t.Run("invalid sort column", func(t *testing.T) {
		for _, pair := range []string{"sku", "=0", "sku=x", "sku=2"} {
			cmd, _ := setup(t)
			renderSortKeys = []string{pair}
			require.Error(t, runRender(cmd, []string{input}), pair)
		}
	})

	t.Run("rendered page behaviors", func(t *testing.T) {
		rendered := writeFile(t, "items.html", html)
		cmd, out := setup(t)
		sortKeys = []string{"name", "name"}
		require.NoError(t, runShow(cmd, []string{rendered}))
		require.Less(t, strings.Index(out.String(), "Bolt"), strings.Index(out.String(), "Nut"))
	})
}
