// Package csvtable writes table views as CSV and parses
// CSV data back into rows of strings.
//
// Quoting follows RFC 4180: fields containing the separator,
// quotes or line breaks are enclosed in double quotes
// and embedded quotes are doubled.
package csvtable

import (
	"errors"
	"fmt"
	"strings"
)

// Format is the charset and layout of CSV data.
// Table exports use ExportFormat, parsing accepts any valid Format.
type Format struct {
	// Encoding is a charset name known to go-types/charset like
	// "UTF-8", "UTF-16LE" or "Windows 1252".
	Encoding string `json:"encoding" yaml:"encoding"`

	// Separator is a single byte between fields.
	Separator string `json:"separator" yaml:"separator"`

	// Newline is one of "\n", "\r\n" or "\n\r".
	Newline string `json:"newline" yaml:"newline"`
}

// NewFormat returns a UTF-8 Format with CRLF line endings.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Newline:   "\r\n",
	}
}

// ExportFormat is the format of table exports:
// UTF-8, comma separated, LF line endings.
func ExportFormat() *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: ",",
		Newline:   "\n",
	}
}

// Validate checks if the Format configuration is valid.
// It can be safely called on a nil receiver.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csv.Format")
	case f.Encoding == "":
		return errors.New("missing csv.Format.Encoding")
	case f.Separator == "":
		return errors.New("missing csv.Format.Separator")
	case len(f.Separator) > 1:
		return fmt.Errorf("invalid csv.Format.Separator: %q", f.Separator)
	case f.Separator == `"` || f.Separator == "\r" || f.Separator == "\n":
		return fmt.Errorf("invalid csv.Format.Separator: %q", f.Separator)
	case f.Newline == "":
		return errors.New("missing csv.Format.Newline")
	case f.Newline != "\n" && f.Newline != "\n\r" && f.Newline != "\r\n":
		return fmt.Errorf("invalid csv.Format.Newline: %q", f.Newline)
	}
	return nil
}

// Writer returns a Writer producing CSV in this format
// with every field quoted.
func (f *Format) Writer() (*Writer, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	w := NewRFC4180Writer(f.Newline).WithDelimiter(rune(f.Separator[0]))
	if !strings.EqualFold(f.Encoding, "UTF-8") {
		enc, err := CharsetEncoder(f.Encoding)
		if err != nil {
			return nil, err
		}
		w = w.WithEncoder(enc)
	}
	return w, nil
}

// MIMEType of the CSV data written by this package.
const MIMEType = "text/csv"
