package docs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree() *cobra.Command {
	root := &cobra.Command{
		Use:   "styled",
		Short: "Write styled text",
		Long:  "Styled writes colored text.",
	}
	root.PersistentFlags().String("color", "auto", "When to use color")

	printCmd := &cobra.Command{
		Use:     "print TEXT...",
		Short:   "Print styled text",
		Example: "  styled print hi",
		Run:     func(*cobra.Command, []string) {},
	}
	printCmd.Flags().Bool("bold", false, "Bold text")
	printCmd.Flags().StringP("fg", "f", "", "Foreground color")

	hidden := &cobra.Command{Use: "secret", Hidden: true, Run: func(*cobra.Command, []string) {}}

	root.AddCommand(printCmd, hidden)
	return root
}

func TestGenMarkdown_Root(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenMarkdown(newTestTree(), &buf))
	out := buf.String()

	assert.Contains(t, out, "## styled\n")
	assert.Contains(t, out, "* [styled print](styled_print.md) - Print styled text")
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "### Environment")
	assert.Contains(t, out, "`NO_COLOR`")
}

func TestGenMarkdown_Subcommand(t *testing.T) {
	root := newTestTree()
	printCmd, _, err := root.Find([]string{"print"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, GenMarkdown(printCmd, &buf))
	out := buf.String()

	assert.Contains(t, out, "```\nstyled print TEXT... [flags]\n```")
	assert.Contains(t, out, "### Examples")
	assert.Contains(t, out, "--bold")
	assert.Contains(t, out, "### Options inherited from parent commands")
	assert.Contains(t, out, "--color")
	assert.Contains(t, out, "* [styled](styled.md)")
	assert.NotContains(t, out, "### Environment")
}

func TestGenMarkdownTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, GenMarkdownTree(newTestTree(), dir))

	assert.FileExists(t, filepath.Join(dir, "styled.md"))
	assert.FileExists(t, filepath.Join(dir, "styled_print.md"))
	assert.NoFileExists(t, filepath.Join(dir, "styled_secret.md"))
}

func TestManMarkdown(t *testing.T) {
	root := newTestTree()
	printCmd, _, err := root.Find([]string{"print"})
	require.NoError(t, err)

	date := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	header := &GenManHeader{Section: "1", Date: &date, Manual: "Styled Manual"}
	out := string(manMarkdown(printCmd, header))

	assert.Contains(t, out, "% STYLED-PRINT(1) Mar 2026 | Styled Manual")
	assert.Contains(t, out, "styled print \\- Print styled text")
	assert.Contains(t, out, "**-f**, **--fg** *string*\n: Foreground color")
	assert.Contains(t, out, "**--bold**\n: Bold text\n")
	assert.Contains(t, out, "(default: auto)")
	assert.Contains(t, out, "# SEE ALSO\n**styled(1)**")
}

func TestGenMan_Roff(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenMan(newTestTree(), nil, &buf))
	out := buf.String()

	assert.Contains(t, out, ".TH")
	assert.Contains(t, out, "ENVIRONMENT")
	assert.Contains(t, out, "NO_COLOR")
}

func TestGenManTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, GenManTree(newTestTree(), dir, nil))

	data, err := os.ReadFile(filepath.Join(dir, "styled-print.1"))
	require.NoError(t, err)
	assert.Contains(t, string(data), ".SH NAME")
	assert.FileExists(t, filepath.Join(dir, "styled.1"))
}

func TestGenManTree_MissingDir(t *testing.T) {
	err := GenManTree(newTestTree(), filepath.Join(t.TempDir(), "absent"), nil)
	assert.ErrorContains(t, err, "failed to create file")
}
