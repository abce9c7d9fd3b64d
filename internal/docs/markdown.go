package docs

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// GenMarkdownTree writes one Markdown page per command into dir, named
// after the command path (styled_print.md).
func GenMarkdownTree(cmd *cobra.Command, dir string) error {
	return walk(cmd, func(c *cobra.Command) error {
		return writeFile(pagePath(dir, c, "_", ".md"), func(f *os.File) error {
			return GenMarkdown(c, f)
		})
	})
}

// GenMarkdown writes the Markdown page of a single command.
func GenMarkdown(cmd *cobra.Command, w io.Writer) error {
	cmd.InitDefaultHelpCmd()
	cmd.InitDefaultHelpFlag()

	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "## %s\n\n", cmd.CommandPath())
	if cmd.Short != "" {
		buf.WriteString(cmd.Short + "\n\n")
	}

	if cmd.Runnable() || cmd.HasAvailableSubCommands() {
		buf.WriteString("### Synopsis\n\n")
		if cmd.Long != "" {
			buf.WriteString(cmd.Long + "\n\n")
		}
		if cmd.Runnable() {
			buf.WriteString("```\n" + cmd.UseLine() + "\n```\n\n")
		}
	}

	if cmd.Example != "" {
		buf.WriteString("### Examples\n\n```\n" + cmd.Example + "\n```\n\n")
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("### Commands\n\n")
		for _, c := range subs {
			fmt.Fprintf(buf, "* [%s](%s.md) - %s\n", c.CommandPath(), baseName(c, "_"), c.Short)
		}
		buf.WriteString("\n")
	}

	if flags := cmd.NonInheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("### Options\n\n```\n" + flags.FlagUsages() + "```\n\n")
	}
	if flags := cmd.InheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("### Options inherited from parent commands\n\n```\n" + flags.FlagUsages() + "```\n\n")
	}

	if !cmd.HasParent() {
		buf.WriteString("### Environment\n\n")
		for _, e := range Environment {
			fmt.Fprintf(buf, "* `%s` - %s\n", e.Name, e.Description)
		}
		buf.WriteString("\n")
	}

	if cmd.HasParent() {
		parent := cmd.Parent()
		fmt.Fprintf(buf, "### See also\n\n* [%s](%s.md) - %s\n", parent.CommandPath(), baseName(parent, "_"), parent.Short)
	}

	_, err := buf.WriteTo(w)
	return err
}
