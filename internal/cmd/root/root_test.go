package root

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdickopp/styled-output/internal/cmdutil"
	"github.com/mdickopp/styled-output/internal/config"
	"github.com/mdickopp/styled-output/internal/iostreams/iostreamstest"
	"github.com/mdickopp/styled-output/internal/logger"
	"github.com/mdickopp/styled-output/internal/streaminfo"
)

func newTestFactory(t *testing.T, cfgYAML string, opts ...iostreamstest.Option) (*cmdutil.Factory, *iostreamstest.TestIOStreams) {
	t.Helper()
	t.Setenv("STYLED_STATE_DIR", t.TempDir())
	t.Cleanup(func() {
		_ = logger.CloseFileWriter()
		logger.Init()
		logger.ClearContext()
	})

	cfg, err := config.ReadFromString(cfgYAML)
	require.NoError(t, err)

	tio := iostreamstest.New(opts...)
	f := &cmdutil.Factory{
		Version:   "1.0.0",
		Commit:    "abc",
		IOStreams: tio.IOStreams,
		Config:    func() (*config.Config, error) { return cfg, nil },
	}
	return f, tio
}

func TestNewCmdRoot_Subcommands(t *testing.T) {
	f, _ := newTestFactory(t, "")
	cmd := NewCmdRoot(f)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"info", "print", "palette", "config", "version"}, names)
}

func TestColorPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		cfg        string
		args       []string
		terminal   bool
		wantStdout bool
		wantStderr bool
	}{
		{
			name: "auto off terminal",
		},
		{
			name:       "auto on terminal",
			terminal:   true,
			wantStdout: true,
			wantStderr: true,
		},
		{
			name:       "config forces stdout only",
			cfg:        "color:\n  stdout: always\n",
			wantStdout: true,
		},
		{
			name:       "config never on terminal",
			cfg:        "color:\n  stderr: never\n",
			terminal:   true,
			wantStdout: true,
		},
		{
			name:       "flag beats config",
			cfg:        "color:\n  stdout: never\n  stderr: never\n",
			args:       []string{"--color", "always"},
			wantStdout: true,
			wantStderr: true,
		},
		{
			name:     "explicit auto flag beats config",
			cfg:      "color:\n  stdout: always\n",
			args:     []string{"--color=auto"},
			terminal: false,
		},
		{
			name:     "flag never on terminal",
			args:     []string{"--color", "never"},
			terminal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []iostreamstest.Option
			if tt.terminal {
				opts = append(opts, iostreamstest.WithTerminal(100))
			}
			f, tio := newTestFactory(t, tt.cfg, opts...)

			cmd := NewCmdRoot(f)
			cmd.SetArgs(append(tt.args, "version"))
			require.NoError(t, cmd.Execute())

			assert.Equal(t, tt.wantStdout, tio.ColorEnabled(), "stdout")
			assert.Equal(t, tt.wantStderr, tio.StderrColorEnabled(), "stderr")
		})
	}
}

func TestInvalidColorFlag(t *testing.T) {
	f, _ := newTestFactory(t, "")

	cmd := NewCmdRoot(f)
	cmd.SetArgs([]string{"--color", "sometimes", "version"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, cmdutil.ExitUsage, cmdutil.ExitCode(err))
	assert.Contains(t, err.Error(), "sometimes")
}

func TestConfigError(t *testing.T) {
	f, _ := newTestFactory(t, "")
	errBroken := errors.New("broken")
	f.Config = func() (*config.Config, error) { return nil, errBroken }

	cmd := NewCmdRoot(f)
	cmd.SetArgs([]string{"version"})
	err := cmd.Execute()

	assert.ErrorIs(t, err, errBroken)
	assert.Equal(t, cmdutil.ExitError, cmdutil.ExitCode(err))
}

func TestDebugLogsToStderrAndFile(t *testing.T) {
	f, tio := newTestFactory(t, "")

	cmd := NewCmdRoot(f)
	cmd.SetArgs([]string{"--debug", "version"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, tio.ErrBuf.String(), "styled starting")
	assert.NotContains(t, tio.ErrBuf.String(), "\x1b[", "stderr is not a terminal")
	assert.Equal(t, filepath.Join(config.LogsDir(), logger.LogFileName), logger.GetLogFilePath())
}

func TestFileLoggingDisabled(t *testing.T) {
	f, tio := newTestFactory(t, "logging:\n  file_enabled: false\n")

	cmd := NewCmdRoot(f)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())

	assert.Empty(t, logger.GetLogFilePath())
	assert.Empty(t, tio.ErrBuf.String())
}

func TestVersionFlag(t *testing.T) {
	f, tio := newTestFactory(t, "")

	cmd := NewCmdRoot(f)
	cmd.SetOut(tio.Out)
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "styled version 1.0.0 (abc)\n", tio.OutBuf.String())
}

func TestColorModeFlagDefault(t *testing.T) {
	f, _ := newTestFactory(t, "")
	cmd := NewCmdRoot(f)

	flag := cmd.PersistentFlags().Lookup("color")
	require.NotNil(t, flag)
	assert.Equal(t, streaminfo.Auto.String(), flag.DefValue)
	assert.Equal(t, "mode", flag.Value.Type())
}
