package csvtable

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/domonda/go-types/charset"

	pagetable "github.com/domonda/go-pagetable"
)

// Encoder is an interface to encode byte strings.
type Encoder interface {
	Bytes([]byte) ([]byte, error)
}

// EncoderFunc implements the Encoder interface for a function.
type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Bytes(data []byte) ([]byte, error) {
	return f(data)
}

// CharsetEncoder returns an Encoder that encodes
// UTF-8 to the named charset.
func CharsetEncoder(name string) (Encoder, error) {
	enc, err := charset.GetEncoding(name)
	if err != nil {
		return nil, err
	}
	return EncoderFunc(enc.Encode), nil
}

// Writer writes views as CSV.
//
// Writer is immutable, all With* methods return
// a modified copy.
type Writer struct {
	headerRow        bool
	quoteAllFields   bool
	quoteEmptyFields bool
	trailingNewLine  bool
	escapeQuotes     string
	delimiter        rune
	newLine          string
	bom              []byte
	encoder          Encoder
}

// NewWriter returns a Writer using semicolon delimiters,
// CRLF line endings and quoting only where required.
func NewWriter() *Writer {
	return &Writer{
		headerRow:        false,
		quoteAllFields:   false,
		quoteEmptyFields: false,
		trailingNewLine:  true,
		escapeQuotes:     `""`,
		delimiter:        ';',
		newLine:          "\r\n",
		bom:              nil,
		encoder:          nil,
	}
}

// NewRFC4180Writer returns a Writer that encloses every field in
// double quotes, doubles embedded quotes, separates fields by comma
// and joins lines with newLine without a trailing line break.
func NewRFC4180Writer(newLine string) *Writer {
	return NewWriter().
		WithDelimiter(',').
		WithNewLine(newLine).
		WithQuoteAllFields(true).
		WithTrailingNewLine(false)
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WriteView writes the view to dest formatted as CSV.
// Every row is written with the RowLen cells of the view,
// so rows of ragged views keep their own number of fields.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view pagetable.View) error {
	if len(w.bom) > 0 {
		if _, err := dest.Write(w.bom); err != nil {
			return err
		}
	}
	if w.headerRow {
		lastNewLine := view.NumRows() > 0 || w.trailingNewLine
		err := w.writeView(ctx, dest, pagetable.NewHeaderViewFrom(view), lastNewLine)
		if err != nil {
			return err
		}
	}
	return w.writeView(ctx, dest, view, w.trailingNewLine)
}

func (w *Writer) writeView(ctx context.Context, dest io.Writer, view pagetable.View, lastNewLine bool) error {
	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for row, numRows := 0, view.NumRows(); row < numRows; row++ {
		newLine := row < numRows-1 || lastNewLine
		err := w.writeRow(ctx, rowBuf, view, row, newLine)
		if err != nil {
			return err
		}
		_, err = dest.Write(rowBuf.Bytes())
		if err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

// Bytes returns the view formatted as CSV.
func (w *Writer) Bytes(ctx context.Context, view pagetable.View) ([]byte, error) {
	var buf bytes.Buffer
	err := w.WriteView(ctx, &buf, view)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *Writer) writeRow(ctx context.Context, rowBuf *bytes.Buffer, view pagetable.View, row int, newLine bool) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	for col, numCols := 0, pagetable.RowLen(view, row); col < numCols; col++ {
		if col > 0 {
			rowBuf.WriteRune(w.delimiter)
		}
		rowBuf.WriteString(w.escapeString(pagetable.CellString(view, row, col)))
	}
	if newLine {
		rowBuf.WriteString(w.newLine)
	}

	if w.encoder == nil {
		return nil
	}

	// Read, encode, and write back the buffered row
	encoded, err := w.encoder.Bytes(rowBuf.Bytes())
	if err != nil {
		return fmt.Errorf("can't encode CSV row %d: %w", row, err)
	}
	rowBuf.Reset()
	_, err = rowBuf.Write(encoded)
	return err
}

func (w *Writer) escapeString(str string) string {
	switch {
	case w.quoteAllFields || strings.ContainsRune(str, w.delimiter) || strings.ContainsAny(str, "\"\r\n"):
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return str
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

// WithTrailingNewLine sets if the last row is terminated by a line break.
func (w *Writer) WithTrailingNewLine(trailingNewLine bool) *Writer {
	mod := w.clone()
	mod.trailingNewLine = trailingNewLine
	return mod
}

func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

// WithBOM returns a writer that writes bom
// before the first row, pass nil for no BOM.
func (w *Writer) WithBOM(bom []byte) *Writer {
	mod := w.clone()
	mod.bom = bom
	return mod
}

// WithUTF8BOM returns a writer that starts with a UTF-8 byte order mark.
func (w *Writer) WithUTF8BOM() *Writer {
	return w.WithBOM([]byte(charset.BOMUTF8))
}

func (w *Writer) WithEncoder(encoder Encoder) *Writer {
	mod := w.clone()
	mod.encoder = encoder
	return mod
}

func (w *Writer) HeaderRow() bool      { return w.headerRow }
func (w *Writer) QuoteAllFields() bool { return w.quoteAllFields }
func (w *Writer) Delimiter() rune      { return w.delimiter }
func (w *Writer) NewLine() string      { return w.newLine }
