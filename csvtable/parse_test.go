package csvtable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	pagetable "github.com/domonda/go-pagetable"
)

func TestParseWithFormat(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		format   *Format
		wantRows [][]string
		wantErr  bool
	}{
		{
			name:     "empty",
			csv:      "",
			format:   ExportFormat(),
			wantRows: nil,
		},
		{
			name:     "unquoted",
			csv:      "Name,Age\nJohn,30\nJane,25\n",
			format:   ExportFormat(),
			wantRows: [][]string{{"Name", "Age"}, {"John", "30"}, {"Jane", "25"}},
		},
		{
			name:     "CRLF and semicolon",
			csv:      "Name;Age\r\nJohn;30",
			format:   NewFormat(";"),
			wantRows: [][]string{{"Name", "Age"}, {"John", "30"}},
		},
		{
			name:     "quoted separator and quotes",
			csv:      `"C,D","E""F"`,
			format:   ExportFormat(),
			wantRows: [][]string{{"C,D", `E"F`}},
		},
		{
			name:     "multi-line field",
			csv:      "\"John\",\"123 Main St\nApt 4B\"\n\"Jane\",\"\"",
			format:   ExportFormat(),
			wantRows: [][]string{{"John", "123 Main St\nApt 4B"}, {"Jane", ""}},
		},
		{
			name:     "only quote",
			csv:      `""""`,
			format:   ExportFormat(),
			wantRows: [][]string{{`"`}},
		},
		{
			name:    "unterminated quote",
			csv:     `"abc`,
			format:  ExportFormat(),
			wantErr: true,
		},
		{
			name:    "garbage after quote",
			csv:     `"abc"x,1`,
			format:  ExportFormat(),
			wantErr: true,
		},
		{
			name:    "invalid format",
			csv:     `a`,
			format:  &Format{Encoding: "UTF-8", Separator: ",,", Newline: "\n"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseWithFormat([]byte(tt.csv), tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	table := [][]string{
		{"A", "B"},
		{"C,D", `E"F`},
	}
	data, err := NewRFC4180Writer("\n").Bytes(context.Background(), pagetable.NewRaggedStringsView("", table))
	require.NoError(t, err)
	require.Equal(t, "\"A\",\"B\"\n\"C,D\",\"E\"\"F\"", string(data))

	rows, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, table, rows)
}

func TestFormat_Validate(t *testing.T) {
	require.Error(t, (*Format)(nil).Validate())
	require.Error(t, (&Format{Separator: ",", Newline: "\n"}).Validate())
	require.Error(t, (&Format{Encoding: "UTF-8", Newline: "\n"}).Validate())
	require.Error(t, (&Format{Encoding: "UTF-8", Separator: `"`, Newline: "\n"}).Validate())
	require.Error(t, (&Format{Encoding: "UTF-8", Separator: ",", Newline: "\r"}).Validate())
	require.NoError(t, ExportFormat().Validate())
	require.NoError(t, NewFormat(";").Validate())
}
