package chart

import (
	"net/http"
	"strings"

	"github.com/mahesh-hegde/plotweave/app/common"
	"github.com/mahesh-hegde/plotweave/app/dataset"
)

// Config is one submitted plot configuration. A new submission replaces
// the previous one wholesale; there is no partial update.
type Config struct {
	Title       string
	XAxisLabel  string
	YAxisLabel  string
	XAttributes []string
	YAttributes []string
}

// Validate is the gate in front of the pipeline: both attribute
// selections must be non-empty. On violation the caller keeps whatever
// plot it already had.
func (c *Config) Validate() error {
	if len(c.XAttributes) == 0 {
		return common.NewUserVisibleError(http.StatusBadRequest,
			"Select at least one X axis attribute")
	}
	if len(c.YAttributes) == 0 {
		return common.NewUserVisibleError(http.StatusBadRequest,
			"Select at least one Y axis attribute")
	}
	return nil
}

// ExportFilename names the exported image after the plot title, falling
// back to chart.png when there is no title.
func (c *Config) ExportFilename() string {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return "chart.png"
	}
	return title + ".png"
}

// Plot is the fully computed chart model handed to the renderer.
type Plot struct {
	Config       Config
	Combinations []Combination
	Rows         []ProjectedRow
	AxisField    string
}

// Build runs the whole pipeline for one submission: validation gate,
// combination generation, row projection, axis selection. It is a pure
// function of the dataset and the configuration.
func Build(ds *dataset.Dataset, conf Config) (*Plot, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	combos := Generate(conf.XAttributes, conf.YAttributes)
	return &Plot{
		Config:       conf,
		Combinations: combos,
		Rows:         Project(ds.Rows, conf.XAttributes, combos),
		AxisField:    SelectAxis(conf.XAttributes),
	}, nil
}
