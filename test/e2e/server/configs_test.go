//go:build e2e

package server

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed testdata/*.tmpl
var Templates embed.FS

// TemplateData contains values to substitute in server config templates
type TemplateData struct {
	Port   int
	Source string
}

// ProcessTemplate applies values to a template file and returns the result
func ProcessTemplate(templatePath string, data TemplateData) ([]byte, error) {
	templateContent, err := Templates.ReadFile(templatePath)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("config").Parse(string(templateContent))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
