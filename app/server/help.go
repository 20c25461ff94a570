package server

import (
	"bytes"
	"html/template"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/yuin/goldmark"
)

var (
	helpOnce sync.Once
	helpHTML template.HTML
	helpErr  error
)

// GetHelp renders the embedded help document. The markdown is converted
// once and cached for the life of the process.
func (ct *PlotweaveController) GetHelp(c echo.Context) error {
	helpOnce.Do(func() {
		var buf bytes.Buffer
		if err := goldmark.New().Convert(helpMarkdown, &buf); err != nil {
			helpErr = err
			return
		}
		helpHTML = template.HTML(buf.String())
	})
	if helpErr != nil {
		return helpErr
	}
	return c.Render(http.StatusOK, "help", helpHTML)
}
