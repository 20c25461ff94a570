package chart

// palette holds the line colors handed out cyclically in combination
// generation order. Never mutated after init.
var palette []string

func init() {
	palette = splitColorString(
		"1f77b4aec7e8ff7f0effbb782ca02c98df8ad62728ff98969467bdc5b0d5" +
			"8c564bc49c94e377c2f7b6d27f7f7fc7c7c7bcbd22dbdb8d17becf9edae5" +
			"393b796379398c6d31843c39")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// PaletteColor returns the color assigned to the combination at the
// given position in generation order.
func PaletteColor(position int) string {
	return palette[position%len(palette)]
}
