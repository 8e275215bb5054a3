package pagetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchesFilter(t *testing.T) {
	tests := []struct {
		text string
		term string
		want bool
	}{
		{text: "Widget Shelf A", term: "", want: true},
		{text: "", term: "", want: true},
		{text: "", term: "x", want: false},
		{text: "Widget Shelf A", term: "shelf", want: true},
		{text: "Widget Shelf A", term: "WIDGET", want: true},
		{text: "Widget Shelf A", term: "gadget", want: false},
		{text: "Größe", term: "größe", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.term, func(t *testing.T) {
			require.Equal(t, tt.want, MatchesFilter(tt.text, tt.term))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		from, to  string
		want      Classification
		wantClass string
		wantLabel string
	}{
		{from: "A", to: "B", want: Transfer, wantClass: "alert-primary", wantLabel: "Transfer"},
		{from: "", to: "B", want: StockIn, wantClass: "alert-success", wantLabel: "Stock In"},
		{from: "A", to: "", want: StockOut, wantClass: "alert-danger", wantLabel: "Stock Out"},
		{from: "", to: "", want: NoClassification, wantClass: "", wantLabel: ""},
		// Same location on both sides is still a transfer
		{from: "A", to: "A", want: Transfer, wantClass: "alert-primary", wantLabel: "Transfer"},
		{from: " ", to: "", want: StockOut, wantClass: "alert-danger", wantLabel: "Stock Out"},
	}
	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			got := Classify(tt.from, tt.to)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantClass, got.AlertClass())
			require.Equal(t, tt.wantLabel, got.String())
		})
	}
}

func TestClassify_Transitions(t *testing.T) {
	from, to := "", ""
	require.Equal(t, NoClassification, Classify(from, to))
	from = "A"
	require.Equal(t, StockOut, Classify(from, to))
	to = "B"
	require.Equal(t, Transfer, Classify(from, to))
	from = ""
	require.Equal(t, StockIn, Classify(from, to))
	to = ""
	require.Equal(t, NoClassification, Classify(from, to))
}

func TestOption(t *testing.T) {
	require.Equal(t, "no Option", Option(0).String())
	require.Equal(t, "VisibleRowsOnly|WriteBOM", (OptionVisibleRowsOnly | OptionWriteBOM).String())
	require.True(t, HasOption([]Option{OptionWriteBOM}, OptionWriteBOM))
	require.False(t, HasOption([]Option{OptionWriteBOM}, OptionVisibleRowsOnly))
	require.False(t, HasOption(nil, OptionWriteBOM))
}
