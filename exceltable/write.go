// Package exceltable writes table views as Excel workbooks
// and reads them back using github.com/xuri/excelize/v2.
package exceltable

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	pagetable "github.com/domonda/go-pagetable"
)

// MIMEType of the workbooks written by this package.
const MIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const maxSheetNameLen = 31

var sheetNameReplacer = strings.NewReplacer(
	":", " ", `\`, " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")",
)

// SheetName converts a view title into a valid sheet name
// by replacing forbidden characters and truncating it to 31 runes.
// An empty string is returned for an empty title.
func SheetName(title string) string {
	name := strings.TrimSpace(sheetNameReplacer.Replace(title))
	name = strings.Trim(name, "'")
	if utf8.RuneCountInString(name) > maxSheetNameLen {
		name = strings.TrimSpace(string([]rune(name)[:maxSheetNameLen]))
	}
	return name
}

// WriteView writes the view as a workbook with a single sheet
// named after the view title.
// All cells are written as text cells.
// If headerRow is true then the column titles are written as first row.
// Rows of ragged views are written without padding.
func WriteView(dest io.Writer, view pagetable.View, headerRow bool) (err error) {
	f := excelize.NewFile()
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	sheet := f.GetSheetName(0)
	if name := SheetName(view.Title()); name != "" && name != sheet {
		if err := f.SetSheetName(sheet, name); err != nil {
			return err
		}
		sheet = name
	}

	var rows [][]string
	if headerRow {
		rows = append(rows, view.Columns())
	}
	for row := 0; row < view.NumRows(); row++ {
		rows = append(rows, pagetable.RowStrings(view, row))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for col, str := range row {
			values[col] = str
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	return f.Write(dest)
}
