package chart

import "strconv"

// Value is one cell of a dataset. Depending on what the source file
// contained, a cell is either a number or plain text.
type Value struct {
	Text   string
	Num    float64
	Number bool
}

// Coerce attempts numeric conversion of a raw cell. A valid numeric
// literal becomes a Number value; anything else is kept as text,
// unchanged. Coerce never fails.
func Coerce(raw string) Value {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Value{Num: f, Number: true}
	}
	return Value{Text: raw}
}

// CoerceNumber converts a raw cell for a numeric-only field. Cells that
// are not valid numeric literals resolve to 0, they are never kept as
// text because line values feed a numeric axis.
func CoerceNumber(raw string) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}

func (v Value) String() string {
	if v.Number {
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	}
	return v.Text
}
