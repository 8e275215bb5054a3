package pagetable

// Classification is the movement type derived
// from a pair of from and to location fields.
type Classification int

const (
	NoClassification Classification = iota
	Transfer
	StockIn
	StockOut
)

// Classify derives the classification from the populated state
// of the from and to field values, not from the values themselves.
// Any non-empty value is populated.
func Classify(from, to string) Classification {
	hasFrom := from != ""
	hasTo := to != ""
	switch {
	case hasFrom && hasTo:
		return Transfer
	case hasTo:
		return StockIn
	case hasFrom:
		return StockOut
	}
	return NoClassification
}

// AlertClass returns the style class for the indicator element.
func (c Classification) AlertClass() string {
	switch c {
	case Transfer:
		return "alert-primary"
	case StockIn:
		return "alert-success"
	case StockOut:
		return "alert-danger"
	}
	return ""
}

// MessageID returns the ID of the localized label message.
func (c Classification) MessageID() string {
	switch c {
	case Transfer:
		return "Transfer"
	case StockIn:
		return "StockIn"
	case StockOut:
		return "StockOut"
	}
	return ""
}

// String returns the English label.
func (c Classification) String() string {
	switch c {
	case Transfer:
		return "Transfer"
	case StockIn:
		return "Stock In"
	case StockOut:
		return "Stock Out"
	}
	return ""
}
