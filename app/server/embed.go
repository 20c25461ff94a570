package server

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed template/*.html
var templateFs embed.FS

//go:embed static
var staticFs embed.FS

//go:embed help.md
var helpMarkdown []byte

func MustParseTemplates(static *HashFS) *template.Template {
	funcMap := template.FuncMap{
		"join":   strings.Join,
		"static": static.FormatWithHash,
	}

	return template.Must(template.New("").Funcs(funcMap).ParseFS(templateFs, "template/*.html"))
}
