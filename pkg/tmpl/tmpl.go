// Package tmpl provides template rendering utilities for Markdown documents.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

var cellReplacer = strings.NewReplacer(
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	"|", `\|`,
)

// mdCell makes s safe for use inside a Markdown table cell: pipes are escaped
// and line breaks are flattened to spaces.
func mdCell(s string) string {
	return cellReplacer.Replace(s)
}

// mdQuote escapes s for use inside a double-quoted mermaid label.
func mdQuote(s string) string {
	return strings.ReplaceAll(s, `"`, `#quot;`)
}

func stringOrDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}

var funcs = template.FuncMap{
	"cell":    mdCell,
	"quote":   mdQuote,
	"join":    strings.Join,
	"default": func(def, s string) string { return stringOrDefault(s, def) },
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - cell: escape a value for a Markdown table cell
//   - quote: escape a value for a double-quoted mermaid label
//   - join: join string slice with separator (e.g., join .Args " ")
//   - default: fall back to a value when the piped string is empty
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}

// MustParse parses a template with the package functions, panicking on error.
// Intended for package-level templates that are fixed at compile time.
func MustParse(name, tmpl string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Option("missingkey=error").Parse(tmpl))
}
