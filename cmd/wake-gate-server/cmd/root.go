package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/wake-gate/internal/logger"
	"github.com/oshokin/wake-gate/internal/service/server"
	"github.com/oshokin/wake-gate/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// journalFile overrides the journal path from settings.
	journalFile string

	// rootCmd represents the base command for running the wake-gate server.
	rootCmd = &cobra.Command{
		Use:   "wake-gate-server [listen-address]",
		Short: "Run the wake-gate alarm engine and its gRPC API.",
		Long: `Starts the alarm engine and the gRPC server that the wake-gate CLI talks to.

When the alarm rings, two sound cues alternate, the output volume is ramped up
and held, and the alarm only goes quiet once the memory puzzle is solved or a
client snoozes or cancels it.

Settings come from the YAML file, overridden by WAKE_GATE_* environment variables.
The listen address can be provided as argument to override config (e.g., :9090, 127.0.0.1:6000).
Finished ringing sessions are recorded to the journal file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				JournalFile:   journalFile,
			}

			return server.Run(ctx, options)
		},
	}

	// forceInit allows init-config to overwrite an existing file.
	forceInit bool

	initConfigCmd = &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write a settings file with the default values.",
		Long: `Writes the default settings to path (default wake-gate-settings.yaml) so they
can be edited. An existing file is kept unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := &server.InitOptions{Force: forceInit}
			if len(args) > 0 {
				options.Path = args[0]
			}

			path, err := server.InitConfig(cmd.Context(), options)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Settings written to", path)

			return nil
		},
	}
)

// Execute runs the wake-gate-server CLI and exits with non-zero status on error.
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
	rootCmd.Flags().
		StringVarP(&configPath, "config", "c", "", "path to configuration file (default wake-gate-settings.yaml when present)")
	rootCmd.Flags().StringVarP(&journalFile, "journal-file", "j", "", "path to the wake journal (overrides settings)")

	initConfigCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite an existing settings file")
	rootCmd.AddCommand(initConfigCmd)
}
