package exceltable

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"

	pagetable "github.com/domonda/go-pagetable"
)

// ReadFirstSheet reads the first sheet of a workbook
// as a headerless StringsView titled with the sheet name.
// Every sheet row becomes a view row, trailing empty
// cells of a row are not returned by excelize.
func ReadFirstSheet(reader io.Reader) (sheetView *pagetable.StringsView, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrSheetNotExist{SheetName: "<FirstSheet>"}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}
	return pagetable.NewRaggedStringsView(sheet, rows), nil
}
