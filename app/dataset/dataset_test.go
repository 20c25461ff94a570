package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_CSVWithHeader(t *testing.T) {
	input := "Age,Height,Weight\n10,50,5\n\n20,60,n/a\n30,70,7\n"
	ds, err := Parse(strings.NewReader(input), "growth.csv", true)
	assert.NoError(t, err)

	assert.Equal(t, []string{"Age", "Height", "Weight"}, ds.Columns)
	assert.Len(t, ds.Rows, 3)
	assert.Equal(t, "n/a", ds.Rows[1]["Weight"])
	assert.Equal(t, "30", ds.Rows[2]["Age"])
}

func TestParse_TSV(t *testing.T) {
	input := "a\tb\n1\t2\n"
	ds, err := Parse(strings.NewReader(input), "data.tsv", true)
	assert.NoError(t, err)
	assert.Equal(t, "2", ds.Rows[0]["b"])
}

func TestParse_NoHeader(t *testing.T) {
	input := "1,2,3\n4,5,6\n"
	ds, err := Parse(strings.NewReader(input), "bare.csv", false)
	assert.NoError(t, err)

	assert.Equal(t, []string{"col1", "col2", "col3"}, ds.Columns)
	assert.Len(t, ds.Rows, 2)
	assert.Equal(t, "6", ds.Rows[1]["col3"])
}

func TestParse_Failures(t *testing.T) {
	testCases := []struct {
		name  string
		file  string
		input string
	}{
		{"Ragged row aborts the load", "bad.csv", "a,b\n1,2\n3\n"},
		{"Unsupported extension", "data.xlsx", "a,b\n1,2\n"},
		{"Empty file", "empty.csv", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := Parse(strings.NewReader(tc.input), tc.file, true)
			assert.Error(t, err)
			assert.Nil(t, ds)
		})
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	ds, err := Parse(strings.NewReader("a,b\n"), "hdr.csv", true)
	assert.NoError(t, err)
	assert.Empty(t, ds.Rows)
}
