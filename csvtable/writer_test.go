package csvtable

import (
	"bytes"
	"context"
	"testing"

	"github.com/domonda/go-types/charset"
	"github.com/stretchr/testify/require"

	pagetable "github.com/domonda/go-pagetable"
)

func TestWriter_WriteView(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		writer   *Writer
		view     pagetable.View
		wantDest string
	}{
		{
			name:     "empty view",
			writer:   NewWriter(),
			view:     &pagetable.StringsView{},
			wantDest: ``,
		},
		{
			name:   "simple",
			writer: NewWriter().WithHeaderRow(true),
			view: &pagetable.StringsView{
				Cols: []string{"A", "B", "C"},
				Rows: [][]string{
					{"1", "Hello", ""},
					{"2", "world!"},
				},
			},
			wantDest: "" +
				`A;B;C` + "\r\n" +
				`1;Hello;` + "\r\n" +
				`2;world!;` + "\r\n",
		},
		{
			name: "simple no header",
			writer: NewWriter().
				WithHeaderRow(true).
				WithHeaderRow(false),
			view: &pagetable.StringsView{
				Cols: []string{"A", "B"},
				Rows: [][]string{{"1", "Hello"}},
			},
			wantDest: `1;Hello` + "\r\n",
		},
		{
			name:   "quoting where required",
			writer: NewWriter(),
			view: &pagetable.StringsView{
				Cols: []string{"A", "B", "C"},
				Rows: [][]string{{"a;b", `say "hi"`, "two\nlines"}},
			},
			wantDest: `"a;b";"say ""hi""";"two` + "\n" + `lines"` + "\r\n",
		},
		{
			name:   "quote empty fields",
			writer: NewWriter().WithQuoteEmptyFields(true),
			view: &pagetable.StringsView{
				Cols: []string{"A", "B"},
				Rows: [][]string{{"", "x"}},
			},
			wantDest: `"";x` + "\r\n",
		},
		{
			name:   "RFC 4180 export",
			writer: NewRFC4180Writer("\n"),
			view: pagetable.NewRaggedStringsView("", [][]string{
				{"A", "B"},
				{"C,D", `E"F`},
			}),
			wantDest: `"A","B"` + "\n" + `"C,D","E""F"`,
		},
		{
			name:   "ragged rows keep their cells",
			writer: NewRFC4180Writer("\r\n"),
			view: pagetable.NewRaggedStringsView("", [][]string{
				{"SKU", "Name", "Qty"},
				{"No items"},
			}),
			wantDest: `"SKU","Name","Qty"` + "\r\n" + `"No items"`,
		},
		{
			name:     "header row",
			writer:   NewRFC4180Writer("\n").WithHeaderRow(true),
			view:     pagetable.NewStringsView("", [][]string{{"W-1"}}, "SKU", "Name"),
			wantDest: `"SKU","Name"` + "\n" + `"W-1",""`,
		},
		{
			name:     "header row of empty view",
			writer:   NewRFC4180Writer("\n").WithHeaderRow(true),
			view:     pagetable.NewStringsView("", nil, "SKU"),
			wantDest: `"SKU"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := bytes.NewBuffer(nil)
			err := tt.writer.WriteView(ctx, dest, tt.view)
			require.NoError(t, err)
			require.Equal(t, tt.wantDest, dest.String())
		})
	}
}

func TestWriter_WithUTF8BOM(t *testing.T) {
	view := pagetable.NewRaggedStringsView("", [][]string{{"Ä"}})
	data, err := NewRFC4180Writer("\n").WithUTF8BOM().Bytes(context.Background(), view)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte(charset.BOMUTF8)))
	require.Equal(t, `"Ä"`, string(charset.TrimBOM(data, charset.BOMUTF8)))

	rows, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"Ä"}}, rows)
}

func TestWriter_Immutable(t *testing.T) {
	w := NewWriter()
	mod := w.WithDelimiter(',').WithHeaderRow(true)
	require.Equal(t, ';', w.Delimiter())
	require.False(t, w.HeaderRow())
	require.Equal(t, ',', mod.Delimiter())
	require.True(t, mod.HeaderRow())
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	view := pagetable.NewRaggedStringsView("", [][]string{{"A"}})
	_, err := NewWriter().Bytes(ctx, view)
	require.ErrorIs(t, err, context.Canceled)
}
