// Package renderer turns curve data into markdown reports for the terminal.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"czkcurve"
)

//go:embed *.md
var templates embed.FS

// Benchmark is the data rendered by the benchmark table report.
type Benchmark struct {
	CurveName string
	Table     czkcurve.Table
}

// BenchmarkMarkdown renders the benchmark table to a markdown string.
func BenchmarkMarkdown(b *Benchmark) string {
	return renderTemplate("benchmark", "benchmark.md", nil, b)
}

// EvalPoint is one evaluated maturity in an evaluation report.
type EvalPoint struct {
	Years        float64
	Rate         float64
	Extrapolated bool
}

// Flag marks extrapolated points in reports.
func (p EvalPoint) Flag() string {
	if p.Extrapolated {
		return " (extrapolated)"
	}
	return ""
}

// Evaluation is the data rendered by the curve evaluation report.
type Evaluation struct {
	CurveName string
	Boundary  string // documented boundary condition of the fit
	MinYears  float64
	MaxYears  float64
	Points    []EvalPoint
}

// EvaluationMarkdown renders evaluated curve points to a markdown string.
func EvaluationMarkdown(e *Evaluation) string {
	return renderTemplate("evaluation", "evaluation.md", nil, e)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
