package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"inz-data-scraper/lib/configutil"
	"inz-data-scraper/lib/serviceutil"
	"inz-data-scraper/lib/telemetry"
	"inz-data-scraper/lib/timezone"
	"inz-data-scraper/services/updater"

	"github.com/spf13/cobra"
)

var (
	oneOff     *bool
	configPath *string
	verbose    *bool
)

func init() {
	oneOff = rootCmd.Flags().BoolP("one-off", "1", false, "Run a single update and exit instead of running on schedule.")
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "The configuration file to read.")
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output and dump http messages.")
}

var rootCmd = &cobra.Command{
	Use:   "inzscraper [--one-off] [--config <path/to/config.json5>]",
	Short: "inzscraper keeps a JSON time series of 2021 Resident Visa processing figures up to date.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg := readConfig()
		err := timezone.Load(cfg.Timezone)
		if err != nil {
			serviceutil.Fatal("failed to load timezone", err)
		}

		tel, err := telemetry.SetupFromEnv(ctx, "inzscraper")
		if err != nil {
			serviceutil.Fatal("failed to setup telemetry", err)
		}

		service, err := updater.NewService(updater.ServiceOptions{
			Config:  cfg,
			Verbose: *verbose,
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize updater", err)
		}
		daemon, err := updater.NewDaemon(updater.DaemonOptions{
			Cycle:    service.Cycle,
			Schedule: cfg.Schedule,
			Location: timezone.Location(),
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize schedule", err)
		}

		slog.InfoContext(
			ctx, "starting",
			"mode", cfg.Mode,
			"source", cfg.SourceURL,
			"output", cfg.OutputPath,
			"one_off", *oneOff,
		)
		err = daemon.Run(ctx, *oneOff)
		shutdownTelemetry(tel)
		if err != nil {
			serviceutil.Fatal("update failed", err)
		}
	},
}

func readConfig() updater.Config {
	cfg, err := configutil.ReadConfigWithDefaults(*configPath, updater.DefaultConfig())
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func shutdownTelemetry(tel telemetry.Telemetry) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := tel.Shutdown(ctx)
	if err != nil {
		slog.Warn("failed to flush telemetry", "err", err)
	}
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
