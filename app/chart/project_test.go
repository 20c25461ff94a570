package chart

import (
	"testing"

	"github.com/mahesh-hegde/plotweave/app/dataset"
	"github.com/stretchr/testify/assert"
)

var growthRows = []dataset.Row{
	{"Age": "10", "Height": "50", "Weight": "5"},
	{"Age": "20", "Height": "60", "Weight": "n/a"},
	{"Age": "30", "Height": "70", "Weight": "7"},
}

func TestProject_Scenario(t *testing.T) {
	xAttrs := []string{"Age"}
	combos := Generate(xAttrs, []string{"Height", "Weight"})
	rows := Project(growthRows, xAttrs, combos)

	assert.Len(t, rows, 3)

	assert.Equal(t, 0, rows[0].Index)
	assert.Equal(t, Value{Num: 10, Number: true}, rows[0].Fields["Age"])
	assert.Equal(t, Value{Num: 50, Number: true}, rows[0].Fields["Age_vs_Height"])
	assert.Equal(t, Value{Num: 5, Number: true}, rows[0].Fields["Age_vs_Weight"])

	// "n/a" feeds a numeric axis, so it becomes 0 rather than text.
	assert.Equal(t, 1, rows[1].Index)
	assert.Equal(t, Value{Num: 60, Number: true}, rows[1].Fields["Age_vs_Height"])
	assert.Equal(t, Value{Num: 0, Number: true}, rows[1].Fields["Age_vs_Weight"])

	assert.Equal(t, 2, rows[2].Index)
	assert.Equal(t, Value{Num: 7, Number: true}, rows[2].Fields["Age_vs_Weight"])
}

func TestProject_TextXValuePreserved(t *testing.T) {
	raw := []dataset.Row{{"City": "Hubli", "Rain": "42"}}
	xAttrs := []string{"City"}
	combos := Generate(xAttrs, []string{"Rain"})
	rows := Project(raw, xAttrs, combos)

	assert.Equal(t, Value{Text: "Hubli"}, rows[0].Fields["City"])
	assert.Equal(t, Value{Num: 42, Number: true}, rows[0].Fields["City_vs_Rain"])
}

func TestProject_AllLineKeysPresent(t *testing.T) {
	xAttrs := []string{"Age", "Height"}
	combos := Generate(xAttrs, []string{"Weight", "Height"})
	rows := Project(growthRows, xAttrs, combos)

	for _, row := range rows {
		for _, c := range combos {
			v, ok := row.Fields[c.LineKey]
			assert.True(t, ok, "missing %s in row %d", c.LineKey, row.Index)
			assert.True(t, v.Number, "%s must be numeric", c.LineKey)
		}
	}
}

// Combinations sharing a Y attribute carry identical value sequences:
// the paired X attribute never gates which Y cells are copied. Rendering
// relies on this, so it is asserted here rather than "fixed".
func TestProject_YValueIgnoresPairedXAttr(t *testing.T) {
	xAttrs := []string{"Age", "Height"}
	combos := Generate(xAttrs, []string{"Weight"})
	rows := Project(growthRows, xAttrs, combos)

	for _, row := range rows {
		assert.Equal(t, row.Fields["Age_vs_Weight"], row.Fields["Height_vs_Weight"])
	}
}

func TestProject_EmptyRows(t *testing.T) {
	combos := Generate([]string{"a"}, []string{"b"})
	assert.Empty(t, Project(nil, []string{"a"}, combos))
}

func TestProject_Idempotent(t *testing.T) {
	xAttrs := []string{"Age"}
	combos := Generate(xAttrs, []string{"Weight"})
	assert.Equal(t,
		Project(growthRows, xAttrs, combos),
		Project(growthRows, xAttrs, combos))
}
