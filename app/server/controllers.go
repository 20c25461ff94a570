package server

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/mahesh-hegde/plotweave/app/chart"
	"github.com/mahesh-hegde/plotweave/app/common"
	"github.com/mahesh-hegde/plotweave/app/config"
	"github.com/mahesh-hegde/plotweave/app/dataset"
	"github.com/mahesh-hegde/plotweave/app/render"
	"github.com/mahesh-hegde/plotweave/app/samples"
	"gonum.org/v1/plot/vg"
)

type PlotweaveController struct {
	conf     *config.PlotweaveConfig
	datasets *dataset.Store
	samples  *samples.SampleStore
}

func NewPlotweaveController(conf *config.PlotweaveConfig, datasets *dataset.Store, smpl *samples.SampleStore) *PlotweaveController {
	return &PlotweaveController{
		conf:     conf,
		datasets: datasets,
		samples:  smpl,
	}
}

type homeView struct {
	Samples []samples.Sample
}

func (ct *PlotweaveController) GetHome(c echo.Context) error {
	list, err := ct.samples.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "home", homeView{Samples: list})
}

func (ct *PlotweaveController) UploadDataset(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return common.NewUserVisibleError(http.StatusBadRequest, "No file selected")
	}
	if fh.Size > ct.conf.MaxUploadBytes {
		return common.NewUserVisibleError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File exceeds the %d byte upload limit", ct.conf.MaxUploadBytes))
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	hasHeader := c.FormValue("no_header") == ""
	ds, err := dataset.Parse(f, fh.Filename, hasHeader)
	if err != nil {
		return common.WrapErrorForResponse(err, "Could not load file")
	}

	id := ct.datasets.Put(ds)
	return c.Redirect(http.StatusSeeOther, "/datasets/"+id)
}

func (ct *PlotweaveController) GetSample(c echo.Context) error {
	name := c.Param("name")
	content, err := ct.samples.Get(c.Request().Context(), name)
	if err != nil {
		return err
	}

	ds, err := dataset.Parse(bytes.NewReader(content), name, true)
	if err != nil {
		return err
	}
	id := ct.datasets.Put(ds)
	return c.Redirect(http.StatusSeeOther, "/datasets/"+id)
}

func (ct *PlotweaveController) getDataset(c echo.Context) (string, *dataset.Dataset, error) {
	id := c.Param("id")
	ds, ok := ct.datasets.Get(id)
	if !ok {
		return "", nil, common.NewUserVisibleError(http.StatusNotFound,
			"Dataset not found or expired, upload it again")
	}
	return id, ds, nil
}

type configureView struct {
	ID      string
	Dataset *dataset.Dataset
}

func (ct *PlotweaveController) GetDataset(c echo.Context) error {
	id, ds, err := ct.getDataset(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "configure", configureView{ID: id, Dataset: ds})
}

// plotConfigFromRequest reads one plot configuration from the submitted
// form (or, for exports, the query string; echo folds both into form
// params on GET).
func plotConfigFromRequest(c echo.Context) (chart.Config, error) {
	params, err := c.FormParams()
	if err != nil {
		return chart.Config{}, err
	}
	return chart.Config{
		Title:       c.FormValue("title"),
		XAxisLabel:  c.FormValue("x_label"),
		YAxisLabel:  c.FormValue("y_label"),
		XAttributes: params["x_attrs"],
		YAttributes: params["y_attrs"],
	}, nil
}

func exportURL(id string, conf chart.Config) string {
	q := url.Values{
		"title":   {conf.Title},
		"x_label": {conf.XAxisLabel},
		"y_label": {conf.YAxisLabel},
		"x_attrs": conf.XAttributes,
		"y_attrs": conf.YAttributes,
	}
	return "/datasets/" + id + "/plot.png?" + q.Encode()
}

type plotView struct {
	ID        string
	Plot      *chart.Plot
	SVG       template.HTML
	ExportURL string
}

func (ct *PlotweaveController) CreatePlot(c echo.Context) error {
	id, ds, err := ct.getDataset(c)
	if err != nil {
		return err
	}

	conf, err := plotConfigFromRequest(c)
	if err != nil {
		return err
	}
	plot, err := chart.Build(ds, conf)
	if err != nil {
		return err
	}

	svg, err := render.SVG(plot,
		vg.Points(float64(ct.conf.ChartWidth)), vg.Points(float64(ct.conf.ChartHeight)))
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "plot", plotView{
		ID:        id,
		Plot:      plot,
		SVG:       template.HTML(svg),
		ExportURL: exportURL(id, conf),
	})
}

func (ct *PlotweaveController) ExportPlot(c echo.Context) error {
	_, ds, err := ct.getDataset(c)
	if err != nil {
		return err
	}

	conf, err := plotConfigFromRequest(c)
	if err != nil {
		return err
	}
	plot, err := chart.Build(ds, conf)
	if err != nil {
		return err
	}

	png, err := render.PNG(plot,
		vg.Points(float64(ct.conf.ChartWidth)), vg.Points(float64(ct.conf.ChartHeight)))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", conf.ExportFilename()))
	return c.Blob(http.StatusOK, "image/png", png)
}
