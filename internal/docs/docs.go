// Package docs generates reference documentation for the styled command
// tree as Markdown pages and man pages.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// EnvVar documents an environment variable that affects every command.
type EnvVar struct {
	Name        string
	Description string
}

// Environment lists the variables documented on the root page.
var Environment = []EnvVar{
	{"NO_COLOR", "When set to a non-empty value, automatic color detection never enables color. Explicit --color or config settings still apply."},
	{"STYLED_COLOR_STDOUT", "Color mode for standard output: auto, never or always. Overrides the config file."},
	{"STYLED_COLOR_STDERR", "Color mode for standard error: auto, never or always. Overrides the config file."},
	{"STYLED_CONFIG_DIR", "Directory holding config.yaml. Defaults to $XDG_CONFIG_HOME/styled-output."},
	{"STYLED_STATE_DIR", "Directory holding logs. Defaults to $XDG_STATE_HOME/styled-output."},
}

// walk calls fn for cmd and every visible descendant, children first.
func walk(cmd *cobra.Command, fn func(*cobra.Command) error) error {
	for _, c := range visibleCommands(cmd) {
		if err := walk(c, fn); err != nil {
			return err
		}
	}
	return fn(cmd)
}

func visibleCommands(cmd *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() || c.IsAdditionalHelpTopicCommand() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// writeFile creates path and fills it with render's output.
func writeFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func baseName(cmd *cobra.Command, sep string) string {
	return strings.ReplaceAll(cmd.CommandPath(), " ", sep)
}

func pagePath(dir string, cmd *cobra.Command, sep, ext string) string {
	return filepath.Join(dir, baseName(cmd, sep)+ext)
}
