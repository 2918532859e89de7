// Package render formats API results as text for the CLI subcommands.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/f3rmion/wordle-demo/internal/demo"
	"github.com/f3rmion/wordle-demo/internal/wordle"
	"github.com/samber/lo"
)

// Renderer turns results into text using named templates.
type Renderer struct {
	tmpl *template.Template
}

var funcs = template.FuncMap{
	"yesno": func(b bool) string { return lo.Ternary(b, "Yes", "No") },
	"legend": func() string { return wordle.ScoreLegend },
}

// New creates a renderer with the default templates.
func New() *Renderer {
	t := template.Must(template.New("wordle").Funcs(funcs).Parse(defaultTemplates))
	return &Renderer{tmpl: t}
}

// WordOfDay renders a single word entry.
func (r *Renderer) WordOfDay(w wordle.WordOfDay) (string, error) {
	return r.execute("word", w)
}

// FutureWords renders a list of word entries.
func (r *Renderer) FutureWords(words []wordle.WordOfDay) (string, error) {
	return r.execute("future", words)
}

// Validity renders a validity flag.
func (r *Renderer) Validity(valid bool) (string, error) {
	return r.execute("valid", valid)
}

// Outcome renders a validate-then-check result.
func (r *Renderer) Outcome(o demo.Outcome) (string, error) {
	return r.execute("check", o)
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n") + "\n", nil
}

// JSON renders v as indented JSON, the way the API returned it.
func JSON(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling result: %w", err)
	}
	return string(out) + "\n", nil
}

const defaultTemplates = `
{{- define "word" -}}
Date:     {{ .Date }}
Solution: {{ .Solution }}
Day #:    {{ .Day }}
{{ end -}}

{{- define "future" -}}
{{- if not . -}}
No future words available.
{{ else -}}
Future Words ({{ len . }})
{{ range . }}
{{ template "word" . }}{{ end -}}
{{ end -}}
{{ end -}}

{{- define "valid" -}}
Word is Valid: {{ yesno . }}
{{ end -}}

{{- define "check" -}}
Word is Valid: {{ yesno .Valid }}
{{- if .Result }}
Guess:   {{ .Result.Guess }}
Correct: {{ yesno .Result.Correct }}
Result:  {{ .Result.Codes }}
         {{ .Result.Share }}
{{ legend }}
{{- end }}
{{ end -}}
`
