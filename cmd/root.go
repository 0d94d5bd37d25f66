package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/zspotify-grabber/internal/app"
	"github.com/oshokin/zspotify-grabber/internal/config"
	"github.com/oshokin/zspotify-grabber/internal/logger"
	"github.com/oshokin/zspotify-grabber/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "zspotify-grabber [flags] {items}",
		Short: "Download tracks, albums, playlists, or every album of an artist.",
		Long: `ZSpotify Grabber is a CLI tool that downloads catalog items one after another.
Items are web links, spotify: URIs or kind:id pairs, for example:
- https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC
- spotify:album:1DFixLWuPkv3KT3TnV35m3
- artist:0OdUWJ0sBjDrqHygGUXeCF
- playlist:37i9dQZF1DXcBWIGoYBM5M

A .txt argument is read as a list with one item per line.
Items are queued in the given order and downloaded sequentially.`,
		Args:             cobra.MinimumNArgs(1),
		Version:          version.Short(),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, items []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			logger.SetLevel(appConfig.ParsedLogLevel)

			app.ExecuteRootCommand(cmd.Context(), appConfig, items)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.StringP(
		"format",
		"f",
		"",
		"audio format: "+strings.Join(config.Formats, ", ")+".")

	rootCmdFlags.StringP(
		"output",
		"o",
		"",
		"directory to save downloaded files (the path will be created if it doesn’t exist).")

	rootCmdFlags.BoolP(
		"real-time",
		"r",
		false,
		"download at the playback bitrate of the selected format.")

	rootCmdFlags.StringP(
		"speed-limit",
		"s",
		"",
		"set download speed limit, for example: 500 kbps, 1 mbps, 1.5 mbps.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = config.ValidateDownloadFormat(appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	// An explicit flag value must be valid; only the file value falls back.
	if flag := flags.Lookup("format"); flag != nil && flag.Changed {
		format, _ := flags.GetString("format")

		parsedFormat, err := config.ParseDownloadFormat(format)
		if err != nil {
			return err
		}

		cfg.DownloadFormat = parsedFormat
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.RootPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("real-time"); flag != nil && flag.Changed {
		cfg.DownloadRealTime, _ = flags.GetBool("real-time")
	}

	if flag := flags.Lookup("speed-limit"); flag != nil && flag.Changed {
		cfg.DownloadSpeedLimit, _ = flags.GetString("speed-limit")
	}

	return config.ValidateConfig(cfg)
}
