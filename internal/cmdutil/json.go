package cmdutil

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteJSON encodes data as pretty-printed JSON to the given writer.
func WriteJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteYAML encodes data as YAML to the given writer.
func WriteYAML(w io.Writer, data any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}
