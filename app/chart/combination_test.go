package chart

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_CrossProduct(t *testing.T) {
	combos := Generate([]string{"Age", "Height"}, []string{"Weight", "BMI", "Pulse"})
	assert.Len(t, combos, 6)

	// X-major, Y-minor, both in selection order.
	expectedKeys := []string{
		"Age_vs_Weight", "Age_vs_BMI", "Age_vs_Pulse",
		"Height_vs_Weight", "Height_vs_BMI", "Height_vs_Pulse",
	}
	for i, c := range combos {
		assert.Equal(t, expectedKeys[i], c.LineKey)
	}

	assert.Equal(t, "Weight vs Age", combos[0].LineName)
	assert.Equal(t, "Age", combos[0].XAttr)
	assert.Equal(t, "Weight", combos[0].YAttr)
}

func TestGenerate_EmptySelections(t *testing.T) {
	assert.Empty(t, Generate(nil, []string{"Y"}))
	assert.Empty(t, Generate([]string{"X"}, nil))
	assert.Empty(t, Generate(nil, nil))
}

func TestGenerate_ColorCycling(t *testing.T) {
	// 5x5 = 25 combinations, one past the palette size, so the 25th
	// wraps around to the first color.
	xs := make([]string, 5)
	ys := make([]string, 5)
	for i := range xs {
		xs[i] = fmt.Sprintf("x%d", i)
		ys[i] = fmt.Sprintf("y%d", i)
	}
	combos := Generate(xs, ys)
	assert.Len(t, combos, 25)

	for k, c := range combos {
		assert.Equal(t, PaletteColor(k), c.Color, "position %d", k)
	}
	assert.Equal(t, combos[0].Color, combos[24].Color)
	assert.NotEqual(t, combos[0].Color, combos[1].Color)
}

func TestGenerate_DuplicatesKept(t *testing.T) {
	// A column selected twice yields two combinations that share a key
	// but get consecutive colors.
	combos := Generate([]string{"Age", "Age"}, []string{"Weight"})
	assert.Len(t, combos, 2)
	assert.Equal(t, combos[0].LineKey, combos[1].LineKey)
	assert.NotEqual(t, combos[0].Color, combos[1].Color)
}

func TestGenerate_Idempotent(t *testing.T) {
	xs := []string{"a", "b"}
	ys := []string{"c", "d", "e"}
	assert.Equal(t, Generate(xs, ys), Generate(xs, ys))
}
