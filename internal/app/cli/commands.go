package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"console/internal/app/errors"
	"console/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandSend
	CommandClear
	CommandTail
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type   CommandType
	Panes  int
	Socket string
	NoUI   bool
	Args   []string
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type: CommandRun,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRunCommand(result),
		buildSendCommand(result),
		buildClearCommand(result),
		buildTailCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidArguments, err)
	}

	if flags.version {
		result.Type = CommandVersion
	}

	if result.Panes < 0 || result.Panes > config.MaxPanes {
		return nil, fmt.Errorf("%w: --panes must be between 1 and %d", errors.ErrInvalidPanes, config.MaxPanes)
	}

	return result, nil
}

// Apply copies command-line overrides into cfg
func (o *Options) Apply(cfg *config.Config) {
	if o.Socket != "" {
		cfg.Socket.Path = o.Socket
	}

	if o.Panes > 0 {
		cfg.Console.Panes = o.Panes
	}
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A rolling diagnostics console with throttled viewers",
		Long: `Console keeps the most recent diagnostic messages in memory and shows them
in one or more panes that redraw at most four times a second.
Other processes publish messages to it over a Unix socket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.PersistentFlags().StringVar(&result.Socket, "socket", "", "Unix socket path of the console")
	cmd.Flags().BoolVar(&result.NoUI, "no-ui", false, "Print messages to stdout instead of opening panes")
	cmd.Flags().IntVarP(&result.Panes, "panes", "p", 0, "Number of panes to open")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRunCommand creates the run subcommand
func buildRunCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Aliases: []string{"r"},
		Short:   "Open the console and accept messages",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.Flags().BoolVar(&result.NoUI, "no-ui", false, "Print messages to stdout instead of opening panes")
	cmd.Flags().IntVarP(&result.Panes, "panes", "p", 0, "Number of panes to open")

	return cmd
}

// buildSendCommand creates the send subcommand
func buildSendCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "send [text...]",
		Aliases: []string{"s"},
		Short:   "Publish a message to a running console, read from stdin when no text is given",
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandSend
			result.Args = args
		},
	}

	return cmd
}

// buildClearCommand creates the clear subcommand
func buildClearCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every message from a running console",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandClear
		},
	}

	return cmd
}

// buildTailCommand creates the tail subcommand
func buildTailCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tail",
		Aliases: []string{"t"},
		Short:   "Stream the contents of a running console",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandTail
		},
	}

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
