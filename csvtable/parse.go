package csvtable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domonda/go-types/charset"
)

// ParseWithFormat parses CSV data using an explicitly specified format.
//
// The data is decoded from format.Encoding to UTF-8,
// a UTF-8 byte order mark is removed.
// Quoted fields may contain separators, doubled quotes
// and line breaks. Line breaks outside of quotes end a row,
// any of "\n", "\r\n" and "\n\r" is accepted independent of format.Newline.
// A line break after the last row does not produce an empty row.
func ParseWithFormat(csv []byte, format *Format) (rows [][]string, err error) {
	err = format.Validate()
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(format.Encoding, "UTF-8") {
		csv = charset.TrimBOM(csv, charset.BOMUTF8)
	} else {
		enc, err := charset.GetEncoding(format.Encoding)
		if err != nil {
			return nil, err
		}
		csv, err = enc.Decode(csv)
		if err != nil {
			return nil, err
		}
	}

	return parseRecords(string(csv), format.Separator[0])
}

// Parse parses UTF-8 CSV in the ExportFormat.
func Parse(csv []byte) ([][]string, error) {
	return ParseWithFormat(csv, ExportFormat())
}

func parseRecords(csv string, sep byte) (rows [][]string, err error) {
	var (
		row      []string
		field    strings.Builder
		inQuotes bool
		quoted   bool // current field started with a quote
		line     = 1
	)
	endField := func() {
		row = append(row, field.String())
		field.Reset()
		quoted = false
	}
	endRow := func() {
		endField()
		rows = append(rows, row)
		row = nil
	}
	for i := 0; i < len(csv); i++ {
		c := csv[i]
		if inQuotes {
			switch {
			case c == '"' && i+1 < len(csv) && csv[i+1] == '"':
				field.WriteByte('"')
				i++
			case c == '"':
				inQuotes = false
				if i+1 < len(csv) {
					next := csv[i+1]
					if next != sep && next != '\n' && next != '\r' {
						return nil, fmt.Errorf("unexpected character %q after quoted field in line %d", next, line)
					}
				}
			default:
				if c == '\n' {
					line++
				}
				field.WriteByte(c)
			}
			continue
		}
		switch c {
		case sep:
			endField()
		case '\n', '\r':
			// Treat \r\n and \n\r as one line break
			if i+1 < len(csv) && (csv[i+1] == '\n' || csv[i+1] == '\r') && csv[i+1] != c {
				i++
			}
			endRow()
			line++
		case '"':
			if field.Len() == 0 && !quoted {
				inQuotes = true
				quoted = true
			} else {
				field.WriteByte(c)
			}
		default:
			field.WriteByte(c)
		}
	}
	if inQuotes {
		return nil, errors.New("unterminated quoted field at end of CSV")
	}
	if field.Len() > 0 || quoted || len(row) > 0 {
		endRow()
	}
	return rows, nil
}
