package docs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GenManHeader contains man page metadata
type GenManHeader struct {
	Section string
	Date    *time.Time
	Source  string
	Manual  string
}

// DefaultManHeader is the header used by GenManTree.
func DefaultManHeader() *GenManHeader {
	return &GenManHeader{
		Section: "1",
		Source:  "styled",
		Manual:  "Styled Manual",
	}
}

// GenManTree writes one man page per command into dir, named after the
// command path (styled-print.1).
func GenManTree(cmd *cobra.Command, dir string, header *GenManHeader) error {
	if header == nil {
		header = DefaultManHeader()
	}
	return walk(cmd, func(c *cobra.Command) error {
		return writeFile(pagePath(dir, c, "-", "."+header.Section), func(f *os.File) error {
			return GenMan(c, header, f)
		})
	})
}

// GenMan renders the man page of a single command in roff.
func GenMan(cmd *cobra.Command, header *GenManHeader, w io.Writer) error {
	if header == nil {
		header = DefaultManHeader()
	}
	_, err := w.Write(md2man.Render(manMarkdown(cmd, header)))
	return err
}

// manMarkdown builds the md2man flavored Markdown source of a man page.
func manMarkdown(cmd *cobra.Command, header *GenManHeader) []byte {
	cmd.InitDefaultHelpCmd()
	cmd.InitDefaultHelpFlag()

	buf := new(bytes.Buffer)
	name := cmd.CommandPath()

	var date string
	if header.Date != nil {
		date = header.Date.Format("Jan 2006")
	}
	fmt.Fprintf(buf, "%% %s(%s) %s | %s\n\n",
		strings.ToUpper(baseName(cmd, "-")), header.Section, date, header.Manual)

	buf.WriteString("# NAME\n")
	fmt.Fprintf(buf, "%s \\- %s\n\n", name, cmd.Short)

	buf.WriteString("# SYNOPSIS\n")
	fmt.Fprintf(buf, "**%s**", name)
	if cmd.NonInheritedFlags().HasAvailableFlags() {
		buf.WriteString(" [OPTIONS]")
	}
	if cmd.HasAvailableSubCommands() {
		buf.WriteString(" COMMAND")
	}
	buf.WriteString("\n\n")

	if cmd.Long != "" {
		buf.WriteString("# DESCRIPTION\n" + cmd.Long + "\n\n")
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("# COMMANDS\n")
		for _, c := range subs {
			fmt.Fprintf(buf, "**%s**\n: %s\n\n", c.Name(), c.Short)
		}
	}

	if flags := cmd.NonInheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("# OPTIONS\n")
		manFlags(buf, flags)
	}
	if flags := cmd.InheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("# OPTIONS INHERITED FROM PARENT COMMANDS\n")
		manFlags(buf, flags)
	}

	if cmd.Example != "" {
		buf.WriteString("# EXAMPLES\n```\n" + cmd.Example + "\n```\n\n")
	}

	if !cmd.HasParent() {
		buf.WriteString("# ENVIRONMENT\n")
		for _, e := range Environment {
			fmt.Fprintf(buf, "**%s**\n: %s\n\n", e.Name, e.Description)
		}
	}

	var seeAlso []string
	if cmd.HasParent() {
		seeAlso = append(seeAlso, baseName(cmd.Parent(), "-"))
	}
	for _, c := range visibleCommands(cmd) {
		seeAlso = append(seeAlso, baseName(c, "-"))
	}
	if len(seeAlso) > 0 {
		buf.WriteString("# SEE ALSO\n")
		for i, s := range seeAlso {
			seeAlso[i] = fmt.Sprintf("**%s(%s)**", s, header.Section)
		}
		buf.WriteString(strings.Join(seeAlso, ", ") + "\n")
	}

	return buf.Bytes()
}

func manFlags(buf *bytes.Buffer, flags *pflag.FlagSet) {
	var list []*pflag.Flag
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			list = append(list, f)
		}
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	for _, f := range list {
		if f.Shorthand != "" {
			fmt.Fprintf(buf, "**-%s**, **--%s**", f.Shorthand, f.Name)
		} else {
			fmt.Fprintf(buf, "**--%s**", f.Name)
		}
		if t := f.Value.Type(); t != "bool" {
			fmt.Fprintf(buf, " *%s*", t)
		}
		buf.WriteString("\n: " + f.Usage)
		if f.DefValue != "" && f.DefValue != "false" {
			fmt.Fprintf(buf, " (default: %s)", f.DefValue)
		}
		buf.WriteString("\n\n")
	}
}
