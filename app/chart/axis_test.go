package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectAxis(t *testing.T) {
	testCases := []struct {
		name     string
		xAttrs   []string
		expected string
	}{
		{"Single attribute drives the axis", []string{"Age"}, "Age"},
		{"Multiple attributes use the row index", []string{"Age", "Height"}, IndexField},
		{"None uses the row index", nil, IndexField},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SelectAxis(tc.xAttrs))
		})
	}
}

func TestAxisLabel(t *testing.T) {
	assert.Equal(t, "Age (years)", AxisLabel([]string{"Age"}, "Age (years)"))
	assert.Equal(t, "Row Index", AxisLabel([]string{"Age", "Height"}, "Age (years)"))
}

func TestFormatTooltip(t *testing.T) {
	row := ProjectedRow{Index: 4, Fields: map[string]Value{
		"Age": {Num: 30, Number: true},
	}}

	assert.Equal(t, "Age (years): 30", FormatTooltip("Age", "Age (years)", row))
	assert.Equal(t, "Row: 4", FormatTooltip(IndexField, "Age (years)", row))
}
