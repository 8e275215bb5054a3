// Package htmltable renders table views as HTML markup
// that carries the hooks the page behaviors bind to:
// sortable header keys, per-cell sort values and
// activatable rows with navigation targets.
//
// Example usage:
//
//	view := pagetable.NewStringsView("Products", rows, "SKU", "Name")
//	err := htmltable.NewWriter().
//	    WithTableID("products").
//	    WithTableClass("table table-hover").
//	    WithHeaderRow(true).
//	    WithSortKey(0, "sku").
//	    WithRowTarget(func(row int) string { return "/products/" + rows[row][0] }).
//	    WriteView(ctx, os.Stdout, view)
package htmltable

import (
	"context"
	"html/template"
	"io"
	"maps"
	"strings"

	pagetable "github.com/domonda/go-pagetable"
)

// Writer writes table views as HTML table elements.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
//
// All cell values are HTML-escaped unless
// a CellFormatter is registered for the column.
type Writer struct {
	tableID          string
	tableClass       string
	headerRow        bool
	sortKeys         map[int]string
	rowTarget        func(row int) string
	columnFormatters map[int]CellFormatter
	sortKeyAttr      string
	activatableClass string
	targetAttr       string
	headerTemplate   *template.Template
	rowTemplate      *template.Template
	bodyTemplate     *template.Template
	footerTemplate   *template.Template
}

// NewWriter creates a new HTML table writer
// using the attribute names of pagetable.DefaultPageConfig.
func NewWriter() *Writer {
	return NewWriterForConfig(pagetable.DefaultPageConfig())
}

// NewWriterForConfig creates a new HTML table writer
// using the attribute and class names of config.
func NewWriterForConfig(config *pagetable.PageConfig) *Writer {
	return &Writer{
		sortKeys:         make(map[int]string),
		columnFormatters: make(map[int]CellFormatter),
		sortKeyAttr:      config.Sort.KeyAttr,
		activatableClass: config.Rows.ActivatableClass,
		targetAttr:       config.Rows.TargetAttr,
		headerTemplate:   HeaderTemplate,
		rowTemplate:      RowTemplate,
		bodyTemplate:     BodyTemplate,
		footerTemplate:   FooterTemplate,
	}
}

// WriteView writes a table view as HTML to dest.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view pagetable.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var (
		columns   = view.Columns()
		numCols   = len(columns)
		templData = &RowTemplateContext{
			TemplateContext: TemplateContext{
				TableID:    w.tableID,
				TableClass: w.tableClass,
				Caption:    view.Title(),
			},
			Cells: make([]CellTemplateContext, numCols),
		}
	)

	err := w.headerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	if w.headerRow {
		templData.IsHeaderRow = true
		for col, title := range columns {
			templData.Cells[col].Raw = template.HTML(template.HTMLEscapeString(title)) //#nosec G203
			templData.Cells[col].Attrs = ""
			if key, ok := w.sortKeys[col]; ok {
				templData.Cells[col].Attrs = attrs(w.sortKeyAttr, key)
			}
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.IsHeaderRow = false
	}

	err = w.bodyTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		templData.RowIndex = row
		templData.RowAttrs = ""
		if w.rowTarget != nil {
			if target := w.rowTarget(row); target != "" {
				templData.RowAttrs = attrs("class", w.activatableClass, "tabindex", "0", w.targetAttr, target)
			}
		}
		for col := 0; col < numCols; col++ {
			value := pagetable.CellString(view, row, col)
			cell := &templData.Cells[col]
			cell.Attrs = ""
			if key, ok := w.sortKeys[col]; ok {
				cell.Attrs = attrs("data-"+strings.ToLower(key), value)
			}
			if formatter, ok := w.columnFormatters[col]; ok {
				cell.Raw = formatter(row, value)
			} else {
				cell.Raw = template.HTML(template.HTMLEscapeString(value)) //#nosec G203
			}
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

// String renders the view and returns the HTML or the error message.
func (w *Writer) String(view pagetable.View) string {
	var b strings.Builder
	if err := w.WriteView(context.Background(), &b, view); err != nil {
		return err.Error()
	}
	return b.String()
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	c.sortKeys = maps.Clone(w.sortKeys)
	c.columnFormatters = maps.Clone(w.columnFormatters)
	return c
}

// WithHeaderRow returns a new writer that renders the view columns
// as th cells within a thead element.
func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithTableID returns a new writer with the id attribute of the table element.
func (w *Writer) WithTableID(tableID string) *Writer {
	mod := w.clone()
	mod.tableID = tableID
	return mod
}

// WithTableClass returns a new writer with the specified CSS class for the table element.
func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithSortKey returns a new writer that marks the header of columnIndex
// as sortable by key and puts the cell values of the column
// into data-<key> attributes as canonical sort values.
// An empty key removes the sort key of the column.
func (w *Writer) WithSortKey(columnIndex int, key string) *Writer {
	mod := w.clone()
	if key != "" {
		mod.sortKeys[columnIndex] = key
	} else {
		delete(mod.sortKeys, columnIndex)
	}
	return mod
}

// WithRowTarget returns a new writer that renders rows as activatable
// with the navigation target returned by target.
// Rows with an empty target are rendered as plain rows.
func (w *Writer) WithRowTarget(target func(row int) string) *Writer {
	mod := w.clone()
	mod.rowTarget = target
	return mod
}

// WithColumnFormatter returns a new writer with the formatter registered for the specified column.
// If nil is passed as formatter, any previously registered formatter for this column is removed.
func (w *Writer) WithColumnFormatter(columnIndex int, formatter CellFormatter) *Writer {
	mod := w.clone()
	if formatter != nil {
		mod.columnFormatters[columnIndex] = formatter
	} else {
		delete(mod.columnFormatters, columnIndex)
	}
	return mod
}

// WithTemplate returns a new writer with custom templates.
// See templates.go for the default templates and context structures.
func (w *Writer) WithTemplate(headerTemplate, rowTemplate, bodyTemplate, footerTemplate *template.Template) *Writer {
	mod := w.clone()
	mod.headerTemplate = headerTemplate
	mod.rowTemplate = rowTemplate
	mod.bodyTemplate = bodyTemplate
	mod.footerTemplate = footerTemplate
	return mod
}

// TableClass returns the CSS class configured for the table element.
func (w *Writer) TableClass() string {
	return w.tableClass
}
