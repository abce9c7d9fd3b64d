package cmdutil

import (
	"strings"

	"github.com/spf13/cobra"
)

// Format mode constants for --format flag parsing.
const (
	ModeDefault  = ""
	ModeTable    = "table"
	ModeJSON     = "json"
	ModeYAML     = "yaml"
	ModeTemplate = "template"
)

// Format is a parsed format specification from the --format flag.
type Format struct {
	mode     string
	template string
}

// ParseFormat parses a raw --format flag value into a Format.
//
// Recognized inputs:
//   - ""                    → ModeDefault
//   - "table"               → ModeTable
//   - "json"                → ModeJSON
//   - "yaml"                → ModeYAML
//   - "{{.Name}} {{.Width}}" → ModeTemplate (contains "{{")
//   - anything else         → FlagError
func ParseFormat(raw string) (Format, error) {
	switch {
	case raw == "":
		return Format{mode: ModeDefault}, nil
	case raw == ModeTable, raw == ModeJSON, raw == ModeYAML:
		return Format{mode: raw}, nil
	case strings.Contains(raw, "{{"):
		return Format{mode: ModeTemplate, template: raw}, nil
	default:
		return Format{}, FlagErrorf("invalid format %q (want table, json, yaml or a Go template)", raw)
	}
}

// IsDefault reports whether the format is the default table output.
func (f Format) IsDefault() bool {
	return f.mode == ModeDefault || f.mode == ModeTable
}

// IsJSON reports whether the format is JSON output.
func (f Format) IsJSON() bool {
	return f.mode == ModeJSON
}

// IsYAML reports whether the format is YAML output.
func (f Format) IsYAML() bool {
	return f.mode == ModeYAML
}

// IsTemplate reports whether the format uses a Go template.
func (f Format) IsTemplate() bool {
	return f.mode == ModeTemplate
}

// Template returns the Go template string, or "" if not a template format.
func (f Format) Template() string {
	return f.template
}

// FormatFlags holds parsed state for the --format and --json flags.
type FormatFlags struct {
	Format Format
}

// AddFormatFlags registers --format and --json on the command and chains
// PreRunE validation.
//
// The returned FormatFlags is populated during PreRunE; commands read it
// in RunE after flag parsing is complete.
func AddFormatFlags(cmd *cobra.Command) *FormatFlags {
	ff := &FormatFlags{}

	cmd.Flags().String("format", "", `Output format: "table", "json", "yaml", or a Go template`)
	cmd.Flags().Bool("json", false, "Output as JSON (shorthand for --format json)")

	existingPreRunE := cmd.PreRunE
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if existingPreRunE != nil {
			if err := existingPreRunE(cmd, args); err != nil {
				return err
			}
		}

		if cmd.Flags().Changed("json") && cmd.Flags().Changed("format") {
			return FlagErrorf("--format and --json are mutually exclusive")
		}

		if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
			ff.Format = Format{mode: ModeJSON}
			return nil
		}

		raw, _ := cmd.Flags().GetString("format")
		parsed, err := ParseFormat(raw)
		if err != nil {
			return err
		}
		ff.Format = parsed
		return nil
	}

	return ff
}
