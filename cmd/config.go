package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/oshokin/zspotify-grabber/internal/app"
	"github.com/oshokin/zspotify-grabber/internal/config"
	"github.com/oshokin/zspotify-grabber/internal/logger"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Read or change persisted settings",
		Long: `Read or change the settings kept in the configuration file.

Supported keys: ` + strings.Join(config.StoreKeys, ", ") + `.
Other entries of the file, including comments, are left as they are.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configGetCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Print a setting, or all of them when no key is given",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var key string
			if len(args) > 0 {
				key = args[0]
			}

			if err := app.ExecuteConfigGet(cmd.Context(), appConfig, cmd.OutOrStdout(), key); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to read setting: %v", err)
			}
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configSetCmd = &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Validate and save a setting",
		Example: `  zspotify-grabber config set download_format flac
  zspotify-grabber config set download_real_time true
  zspotify-grabber config set root_path ~/Music`,
		Args: cobra.ExactArgs(2), //nolint:mnd // Key and value.
		Run: func(cmd *cobra.Command, args []string) {
			if err := app.ExecuteConfigSet(cmd.Context(), appConfig, args[0], args[1]); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to save setting: %v", err)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd)

	rootCmd.AddCommand(configCmd)
}
