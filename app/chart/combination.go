package chart

// Combination is one (X attribute, Y attribute) pairing, drawn as a
// single line series on the shared chart.
type Combination struct {
	XAttr    string
	YAttr    string
	LineKey  string
	LineName string
	Color    string
}

// Generate expands the ordered X and Y selections into their full
// cross-product, X-major: for each X attribute in selection order, every
// Y attribute in selection order. Colors cycle through the palette by
// position in generation order. Duplicate selections are not deduplicated;
// a column selected twice yields two combinations (which then share a
// LineKey, since keys use the attribute names verbatim).
//
// Generate is pure: the same selections always produce the same
// combinations, keys and colors included. An empty selection on either
// side yields an empty result, not an error.
func Generate(xAttrs, yAttrs []string) []Combination {
	combos := make([]Combination, 0, len(xAttrs)*len(yAttrs))
	for _, x := range xAttrs {
		for _, y := range yAttrs {
			combos = append(combos, Combination{
				XAttr:    x,
				YAttr:    y,
				LineKey:  x + "_vs_" + y,
				LineName: y + " vs " + x,
				Color:    PaletteColor(len(combos)),
			})
		}
	}
	return combos
}
