package cmd

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/wake-gate/internal/logger"
	"github.com/oshokin/wake-gate/internal/service/client"
	"github.com/oshokin/wake-gate/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides the server address from settings.
	serverAddress string
	// verbose enables info and debug logs.
	verbose bool
	// historyLimit caps the number of journal sessions shown.
	historyLimit int

	// rootCmd shows the alarm state when run without a subcommand.
	rootCmd = &cobra.Command{
		Use:   "wake-gate",
		Short: "Control the wake-gate alarm.",
		Long: `Talks to a running wake-gate-server.

Schedule a wake time, watch the alarm, and solve the memory puzzle to stop it:
when the alarm rings a 5x5 grid briefly highlights seven tiles; tap them all
(wake-gate tap <n>) without a mistake to dismiss the alarm for 15 minutes.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(*cobra.Command, []string) {
			if !verbose {
				logger.Quiet()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(&client.Options{Action: client.ActionState})
		},
	}

	scheduleCmd = &cobra.Command{
		Use:   "schedule HH:MM",
		Short: "Arm the alarm for the next occurrence of HH:MM.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(&client.Options{Action: client.ActionSchedule, Time: args[0]})
		},
	}

	cancelCmd = &cobra.Command{
		Use:   "cancel",
		Short: "Clear the alarm, silencing it if it rings.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(&client.Options{Action: client.ActionCancel})
		},
	}

	snoozeCmd = &cobra.Command{
		Use:   "snooze",
		Short: "Silence a ringing alarm for 15 minutes without solving the puzzle.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(&client.Options{Action: client.ActionSnooze})
		},
	}

	tapCmd = &cobra.Command{
		Use:   "tap <n>",
		Short: "Tap tile n (1-25, reading order) of the current puzzle round.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return client.ErrTileOutOfRange
			}

			return run(&client.Options{Action: client.ActionTap, TileNumber: number})
		},
	}

	stateCmd = &cobra.Command{
		Use:   "state",
		Short: "Print the alarm state and the current puzzle round.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(&client.Options{Action: client.ActionState})
		},
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Follow alarm events until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(&client.Options{Action: client.ActionWatch})
		},
	}

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "List recorded ringing sessions, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(&client.Options{Action: client.ActionHistory, Limit: historyLimit})
		},
	}
)

// run executes a client action with signal handling.
func run(opts *client.Options) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	opts.ConfigPath = cfgPath
	opts.ServerAddress = serverAddress

	return client.Run(ctx, opts)
}

// Execute runs the wake-gate CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	err := rootCmd.Execute()

	logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&cfgPath, "config", "c", "", "path to configuration file (default wake-gate-settings.yaml when present)")
	rootCmd.PersistentFlags().StringVarP(&serverAddress, "server", "s", "", "server address (overrides settings)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show informational logs")

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "number of sessions to show (default 20)")

	rootCmd.AddCommand(scheduleCmd, cancelCmd, snoozeCmd, tapCmd, stateCmd, watchCmd, historyCmd)
}
