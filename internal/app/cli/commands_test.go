package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"console/internal/app/errors"
	"console/internal/config"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Options
	}{
		{name: "No arguments", args: []string{}, expected: Options{Type: CommandRun}},
		{name: "Run subcommand", args: []string{"run"}, expected: Options{Type: CommandRun}},
		{name: "Run alias with panes", args: []string{"r", "--panes=3"}, expected: Options{Type: CommandRun, Panes: 3}},
		{name: "Root panes flag", args: []string{"-p", "2"}, expected: Options{Type: CommandRun, Panes: 2}},
		{name: "No UI", args: []string{"--no-ui"}, expected: Options{Type: CommandRun, NoUI: true}},
		{name: "Socket override", args: []string{"--socket", "/tmp/a.sock"}, expected: Options{Type: CommandRun, Socket: "/tmp/a.sock"}},
		{name: "Send with text", args: []string{"send", "build", "done"}, expected: Options{Type: CommandSend, Args: []string{"build", "done"}}},
		{name: "Send from stdin", args: []string{"send"}, expected: Options{Type: CommandSend, Args: []string{}}},
		{name: "Send with socket", args: []string{"s", "--socket=/tmp/b.sock", "hi"}, expected: Options{Type: CommandSend, Socket: "/tmp/b.sock", Args: []string{"hi"}}},
		{name: "Clear", args: []string{"clear"}, expected: Options{Type: CommandClear}},
		{name: "Tail", args: []string{"tail"}, expected: Options{Type: CommandTail}},
		{name: "Tail alias", args: []string{"t"}, expected: Options{Type: CommandTail}},
		{name: "Version subcommand", args: []string{"version"}, expected: Options{Type: CommandVersion}},
		{name: "Version flag", args: []string{"--version"}, expected: Options{Type: CommandVersion}},
		{name: "Version short flag", args: []string{"-v"}, expected: Options{Type: CommandVersion}},
		{name: "Help flag", args: []string{"--help"}, expected: Options{Type: CommandHelp}},
		{name: "Help subcommand", args: []string{"help"}, expected: Options{Type: CommandHelp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.args)
			require.NoError(t, err)

			assert.Equal(t, tt.expected.Type, result.Type)
			assert.Equal(t, tt.expected.Panes, result.Panes)
			assert.Equal(t, tt.expected.NoUI, result.NoUI)
			assert.Equal(t, tt.expected.Socket, result.Socket)

			if tt.expected.Args != nil {
				assert.ElementsMatch(t, tt.expected.Args, result.Args)
			}
		})
	}
}

func Test_Parse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{name: "Unknown command", args: []string{"explode"}, expected: errors.ErrInvalidArguments},
		{name: "Unknown flag", args: []string{"--loud"}, expected: errors.ErrInvalidArguments},
		{name: "Clear takes no args", args: []string{"clear", "now"}, expected: errors.ErrInvalidArguments},
		{name: "Too many panes", args: []string{"--panes", "7"}, expected: errors.ErrInvalidPanes},
		{name: "Negative panes", args: []string{"--panes=-1"}, expected: errors.ErrInvalidPanes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.args)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func Test_Options_Apply(t *testing.T) {
	t.Run("Overrides", func(t *testing.T) {
		cfg := config.DefaultConfig()
		opts := &Options{Socket: "/tmp/other.sock", Panes: 4}

		opts.Apply(cfg)

		assert.Equal(t, "/tmp/other.sock", cfg.Socket.Path)
		assert.Equal(t, 4, cfg.Console.Panes)
	})

	t.Run("Defaults are kept", func(t *testing.T) {
		cfg := config.DefaultConfig()
		defaults := config.DefaultConfig()

		(&Options{}).Apply(cfg)

		assert.Equal(t, defaults.Socket.Path, cfg.Socket.Path)
		assert.Equal(t, defaults.Console.Panes, cfg.Console.Panes)
	})
}
