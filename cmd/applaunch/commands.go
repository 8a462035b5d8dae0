package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/applaunch/internal/version"
	"github.com/arthur-debert/applaunch/pkg/commands/genconfig"
	"github.com/arthur-debert/applaunch/pkg/commands/launch"
	"github.com/arthur-debert/applaunch/pkg/commands/status"
	"github.com/arthur-debert/applaunch/pkg/errors"
	"github.com/arthur-debert/applaunch/pkg/logging"
	"github.com/arthur-debert/applaunch/pkg/style"
	"github.com/arthur-debert/applaunch/pkg/types"
)

// NewRootCmd creates and returns the root command.
//
// The root command does not parse flags: everything it receives is forwarded
// verbatim to the wrapped application, except --help/-h and --version/-v
// which it answers itself. Subcommands parse normally.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "applaunch [args...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(logging.VerbosityFromEnv())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				switch args[0] {
				case "--help", "-h":
					return cmd.Help()
				case "--version", "-v":
					printVersion(cmd)
					return nil
				}
			}
			return runLaunch(cmd, args)
		},
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	rootCmd.AddCommand(newLaunchCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "launch [args...]",
		Short:              MsgLaunchShort,
		Long:               MsgLaunchLong,
		DisableFlagParsing: true,
		RunE:               runLaunch,
	}
}

// runLaunch executes the launch sequence and reports the outcome to the
// terminal. An already-running instance is a successful no-op.
func runLaunch(cmd *cobra.Command, args []string) error {
	result, err := launch.Launch(launch.LaunchOptions{Args: args})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if result.Resolve.Updated {
		fmt.Fprintf(out, MsgAliasUpdated, style.Path(result.Resolve.AliasPath), style.Path(result.Resolve.Image))
	}

	if result.AlreadyRunning {
		fmt.Fprintf(out, MsgAlreadyRunning, appLabel(result), result.Instance.PID)
		return nil
	}

	fmt.Fprintf(out, MsgStarted, appLabel(result), result.PID)
	fmt.Fprintf(out, MsgLogLocation, style.Path(result.StdoutLog))
	fmt.Fprintf(out, MsgLogLocation, style.Path(result.StderrLog))

	if !result.Alive {
		return errors.New(errors.ErrLaunchFailed, "application exited during startup; check the logs")
	}
	return nil
}

// appLabel names the wrapped application in terminal output, using the
// image the alias resolves to.
func appLabel(result *types.LaunchResult) string {
	if result.Resolve.Image != "" {
		return result.Resolve.Image
	}
	return "application"
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Long:  MsgStatusLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := status.Status(status.StatusOptions{})
			if err != nil {
				return err
			}
			printStatus(cmd, result)
			return nil
		},
	}
}

func printStatus(cmd *cobra.Command, result *types.StatusResult) {
	out := cmd.OutOrStdout()

	if result.Instance.Running {
		fmt.Fprintf(out, "Instance:     %s (pid %d)\n", style.RenderStatus(style.StatusRunning), result.Instance.PID)
	} else {
		fmt.Fprintf(out, "Instance:     %s\n", style.RenderStatus(style.StatusStopped))
	}

	if result.AliasTarget != "" {
		fmt.Fprintf(out, "Alias:        %s -> %s\n", style.Path(result.AliasPath), style.Path(result.AliasTarget))
	} else {
		fmt.Fprintf(out, "Alias:        %s (%s)\n", style.Path(result.AliasPath), style.RenderStatus(style.StatusMissing))
	}

	if result.LatestImage != "" {
		fmt.Fprintf(out, "Newest image: %s\n", style.Path(result.LatestImage))
	} else {
		fmt.Fprintf(out, "Newest image: %s\n", style.RenderStatus(style.StatusMissing))
	}

	for _, logFile := range result.Logs {
		if logFile.Exists {
			fmt.Fprintf(out, "Log:          %s (%d bytes)\n", style.Path(logFile.Path), logFile.Size)
		} else {
			fmt.Fprintf(out, "Log:          %s (absent)\n", style.Path(logFile.Path))
		}
	}
}

func newGenConfigCmd() *cobra.Command {
	var (
		write     bool
		effective bool
	)

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				Write:     write,
				Effective: effective,
			})
			if err != nil {
				return err
			}
			if result.FileWritten != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Written %s\n", style.Path(result.FileWritten))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Install the config at the user config path")
	cmd.Flags().BoolVar(&effective, "effective", false, "Render the fully resolved configuration")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd)
		},
	}
}

func printVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "applaunch version %s\n", version.Version)
	fmt.Fprintf(out, "  commit: %s\n", version.Commit)
	fmt.Fprintf(out, "  built:  %s\n", version.Date)
}
