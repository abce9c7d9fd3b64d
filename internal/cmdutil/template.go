package cmdutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/mdickopp/styled-output/internal/text"
)

// DefaultFuncMap returns the template function map for --format templates.
func DefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"json": func(v any) (string, error) {
			b, err := json.Marshal(v)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"join":     strings.Join,
		"truncate": func(s string, n int) string { return text.Truncate(s, n) },
		"pad":      func(s string, n int) string { return text.PadRight(s, n) },
	}
}

// ExecuteTemplate parses and executes the Go template of f for each item,
// writing one line of output per item.
func ExecuteTemplate(w io.Writer, f Format, items []any) error {
	tmpl, err := template.New("").Funcs(DefaultFuncMap()).Parse(f.Template())
	if err != nil {
		return FlagErrorf("invalid template: %w", err)
	}

	for _, item := range items {
		if err := tmpl.Execute(w, item); err != nil {
			return fmt.Errorf("template execution failed: %w", err)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

// ToAny converts a typed slice to []any for use with ExecuteTemplate.
func ToAny[T any](items []T) []any {
	result := make([]any, len(items))
	for i, v := range items {
		result[i] = v
	}
	return result
}
