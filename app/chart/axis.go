package chart

import "fmt"

// IndexField is the synthetic field that drives the shared axis when the
// selected X attributes cannot (zero or several of them).
const IndexField = "index"

// SelectAxis decides which field drives the shared horizontal axis: the
// sole X attribute when exactly one is selected, the row index otherwise.
func SelectAxis(xAttrs []string) string {
	if len(xAttrs) == 1 {
		return xAttrs[0]
	}
	return IndexField
}

// AxisLabel returns the axis label text: the user-supplied label in the
// single-X case, a fixed label when the row index drives the axis.
func AxisLabel(xAttrs []string, userLabel string) string {
	if len(xAttrs) == 1 {
		return userLabel
	}
	return "Row Index"
}

// FormatTooltip formats the axis readout for one row, matching the axis
// choice made by SelectAxis.
func FormatTooltip(axisField, label string, row ProjectedRow) string {
	if axisField == IndexField {
		return fmt.Sprintf("Row: %d", row.Index)
	}
	return fmt.Sprintf("%s: %s", label, row.Fields[axisField])
}
