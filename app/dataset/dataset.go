package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/mahesh-hegde/plotweave/app/common"
)

// Row maps a column name to the raw cell text as read from the file.
// Cells stay raw here; numeric coercion happens later, per plotted field.
type Row map[string]string

// Dataset is one uploaded file, parsed. It is immutable after Parse and
// replaced wholesale when the user uploads a new file.
type Dataset struct {
	Name    string
	Columns []string
	Rows    []Row
}

var delimiters = map[string]rune{
	".csv": ',',
	".tsv": '\t',
	".txt": ',',
}

func delimiterFor(name string) (rune, error) {
	ext := strings.ToLower(filepath.Ext(name))
	delim, ok := delimiters[ext]
	if !ok {
		return 0, common.NewUserVisibleError(http.StatusBadRequest,
			fmt.Sprintf("Unsupported file type %q, expected .csv, .tsv or .txt", ext))
	}
	return delim, nil
}

// Parse reads a delimited text file into a Dataset. The first row defines
// the column set when hasHeader is true; otherwise columns are named
// col1..colN from the width of the first record. Empty lines are skipped.
// Any structural error (ragged row, bad quoting) fails the whole load; no
// partial dataset is ever returned.
func Parse(r io.Reader, name string, hasHeader bool) (*Dataset, error) {
	delim, err := delimiterFor(name)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = delim
	records, err := cr.ReadAll()
	if err != nil {
		return nil, common.NewUserVisibleError(http.StatusBadRequest,
			fmt.Sprintf("Could not parse %q: %v", name, err))
	}
	if len(records) == 0 {
		return nil, common.NewUserVisibleError(http.StatusBadRequest,
			fmt.Sprintf("File %q has no rows", name))
	}

	var columns []string
	var data [][]string
	if hasHeader {
		columns = records[0]
		data = records[1:]
	} else {
		columns = make([]string, len(records[0]))
		for i := range columns {
			columns[i] = fmt.Sprintf("col%d", i+1)
		}
		data = records
	}

	rows := make([]Row, len(data))
	for i, rec := range data {
		row := make(Row, len(columns))
		for j, col := range columns {
			row[col] = rec[j]
		}
		rows[i] = row
	}

	return &Dataset{Name: name, Columns: columns, Rows: rows}, nil
}
