package server

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/mahesh-hegde/plotweave/app/config"
)

type TemplateRenderer struct {
	tmpl *template.Template
	conf *config.PlotweaveConfig
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	wrappedData := map[string]any{
		"Page":     name,
		"Data":     data,
		"Instance": t.conf.InstanceName,
	}
	err := t.tmpl.ExecuteTemplate(w, "layout.html", wrappedData)
	if err != nil {
		c.Logger().Error(err)
		return err
	}
	return nil
}

func NewTemplateRenderer(conf *config.PlotweaveConfig, static *HashFS) *TemplateRenderer {
	return &TemplateRenderer{
		tmpl: MustParseTemplates(static),
		conf: conf,
	}
}
