package web

import (
	_ "embed"
	"html/template"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type indexData struct {
	DefaultSize string
	Processed   bool
	Rejoinable  []string
	Independent []string
	Notices     []string
}
