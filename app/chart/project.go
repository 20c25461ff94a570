package chart

import "github.com/mahesh-hegde/plotweave/app/dataset"

// ProjectedRow is one output record per source record, carrying every
// field needed to draw all active combinations against a shared axis.
// X attribute fields keep text cells as text; LineKey fields are always
// numbers.
type ProjectedRow struct {
	Index  int
	Fields map[string]Value
}

// Project reshapes the raw rows into a single table keyed by line keys,
// one ProjectedRow per source row, in source order.
//
// Note that the value stored under a combination's LineKey is read from
// the combination's Y attribute alone; the paired X attribute does not
// gate which rows contribute. Combinations sharing a Y attribute
// therefore carry identical value sequences and differ only in what they
// are drawn against. Axis selection and rendering assume this, keep it.
func Project(rows []dataset.Row, xAttrs []string, combos []Combination) []ProjectedRow {
	out := make([]ProjectedRow, len(rows))
	for i, row := range rows {
		fields := make(map[string]Value, len(xAttrs)+len(combos))
		for _, attr := range xAttrs {
			fields[attr] = Coerce(row[attr])
		}
		for _, c := range combos {
			fields[c.LineKey] = Value{Num: CoerceNumber(row[c.YAttr]), Number: true}
		}
		out[i] = ProjectedRow{Index: i, Fields: fields}
	}
	return out
}
