package odp

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.xml
var templates embed.FS

const metaDateLayout = "2006-01-02T15:04:05"

var metaTemplate = template.Must(
	template.New("meta.xml").
		Funcs(template.FuncMap{"xml": EscapeText}).
		ParseFS(templates, "templates/meta.xml"),
)

// BuildMeta renders meta.xml. Only title, author, generator and date vary.
func BuildMeta(m Metadata) ([]byte, error) {
	data := struct {
		Title     string
		Author    string
		Generator string
		Date      string
	}{
		Title:     m.Title,
		Author:    m.Author,
		Generator: m.Generator,
		Date:      m.Created.Format(metaDateLayout),
	}

	var buf bytes.Buffer
	if err := metaTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render meta.xml: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildSettings returns the fixed settings.xml.
func BuildSettings() ([]byte, error) {
	return staticMember("settings.xml")
}

// BuildStyles returns the fixed styles.xml.
func BuildStyles() ([]byte, error) {
	return staticMember("styles.xml")
}

func staticMember(name string) ([]byte, error) {
	data, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	return data, nil
}
