// Package cmd provides the root command and CLI setup for infoclust.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/infoclust/internal/adapter"
	"github.com/mouse-blink/infoclust/internal/config"
	"github.com/mouse-blink/infoclust/internal/controller"
	"github.com/mouse-blink/infoclust/internal/domain"
)

var datasetStore adapter.DatasetStore
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

var logLevel = new(slog.LevelVar)
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// settings is the configuration in effect for the current invocation: the
// defaults, or the --config file when one is given.
var settings = config.Default()

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	datasetStore = adapter.NewLocalDatasetStore()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(datasetStore, reportStore, ui, logger)
}

var configFlag string
var logLevelFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infoclust",
		Short: "Motif discovery in labelled sequences",
		Long: `Infoclust finds locally dense islands of information content along
labelled biological sequences, turns every island into a motif candidate,
merges candidates with near-identical emission profiles, and ranks the
survivors by log-likelihood.

The dataset is a YAML file holding the state model (alphabet, background,
emission table) and the labelled sequences.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML file with segmentation, registry and worker settings")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn or error")

	return cmd
}

func setup(cmd *cobra.Command) error {
	settings = config.Default()

	if configFlag != "" {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}

		settings = cfg
	}

	level := settings.Logging.Level
	if cmd.Flags().Changed("log-level") {
		level = logLevelFlag
	}

	return setLogLevel(level)
}

func setLogLevel(name string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}

	logLevel.Set(level)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
