package behavior

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	pagetable "github.com/domonda/go-pagetable"
	"github.com/domonda/go-pagetable/csvtable"
	"github.com/domonda/go-pagetable/dom"
	"github.com/domonda/go-pagetable/events"
	"github.com/domonda/go-pagetable/exceltable"
)

// Exporter downloads the rows of a table as CSV
// or, for filenames ending in .xlsx, as Excel workbook.
type Exporter struct {
	page *Page
}

func bindExporter(p *Page) *Exporter {
	e := &Exporter{page: p}
	p.Bus.Subscribe(events.TypeClick, e.onClick)
	return e
}

func (e *Exporter) onClick(ev events.Event) {
	cfg := e.page.Config.Export
	trigger := dom.Closest(ev.Target(), func(n *html.Node) bool {
		return dom.HasAttr(n, cfg.TableAttr)
	})
	if trigger == nil {
		return
	}
	ev.PreventDefault()
	tableID := dom.AttrOr(trigger, cfg.TableAttr, "")
	filename := dom.AttrOr(trigger, cfg.FilenameAttr, "")
	if err := e.ExportTable(tableID, filename); err != nil {
		e.page.Logger.Warn("Export failed", zap.String("table", tableID), zap.Error(err))
	}
}

// Encode returns the rows of table encoded for filename
// and the MIME type of the encoding.
func (e *Exporter) Encode(table *dom.Table, filename string, options ...pagetable.Option) (data []byte, contentType string, err error) {
	var view pagetable.View = table.View()
	if pagetable.HasOption(options, pagetable.OptionVisibleRowsOnly) {
		view = table.VisibleView()
	}

	if strings.EqualFold(path.Ext(filename), ".xlsx") {
		var buf bytes.Buffer
		if err := exceltable.WriteView(&buf, view, false); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), exceltable.MIMEType, nil
	}

	writer, err := csvtable.ExportFormat().Writer()
	if err != nil {
		return nil, "", err
	}
	if e.page.Config.Export.WriteBOM || pagetable.HasOption(options, pagetable.OptionWriteBOM) {
		writer = writer.WithUTF8BOM()
	}
	data, err = writer.Bytes(context.Background(), view)
	if err != nil {
		return nil, "", err
	}
	return data, csvtable.MIMEType, nil
}

// ExportTable serializes every row of the table with tableID,
// header rows included and regardless of filtering,
// and lets the host download it as filename.
// An empty filename uses the configured default.
// A missing table is not an error and nothing is downloaded.
//
// The object URL of the download is always revoked
// before ExportTable returns.
func (e *Exporter) ExportTable(tableID, filename string, options ...pagetable.Option) error {
	if filename == "" {
		filename = e.page.Config.Export.DefaultFilename
	}
	table := e.page.Doc.TableByID(tableID)
	if table == nil {
		e.page.Logger.Debug("No table to export", zap.String("table", tableID))
		return nil
	}
	data, contentType, err := e.Encode(table, filename, options...)
	if err != nil {
		return fmt.Errorf("failed to encode table %q: %w", tableID, err)
	}

	url, err := e.page.Host.CreateObjectURL(NewBlob(filename, contentType, data))
	if err != nil {
		return fmt.Errorf("failed to create object URL: %w", err)
	}
	defer e.page.Host.RevokeObjectURL(url)

	if err = e.page.Host.Download(url, filename); err != nil {
		return fmt.Errorf("failed to download %s: %w", filename, err)
	}
	e.page.Logger.Debug("Exported table",
		zap.String("table", tableID),
		zap.String("filename", filename),
		zap.Int("bytes", len(data)),
	)
	return nil
}
