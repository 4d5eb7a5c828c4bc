// Package cmd implements the docknet command surface.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/config"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/docker"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "docknet",
	Short: "Attach Unraid containers to additional Docker networks",
	Long: `docknet supplements Unraid's one-network-per-container setting: it watches
container start events and connects each started container to the additional
networks assigned to it in the persisted document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.ConsoleOnly(config.DefaultLogLevel)

		paths := resolvePaths()
		settings := config.NewStore(paths.DocumentPath()).Load().Settings

		switch cmd.Name() {
		case "version", "help":
			// No file sink for commands that never touch daemon state.
			logging.ApplyLevel(settings.LogLevel)
		default:
			if err := logging.Setup(settings.LogLevel, paths.LogFile); err != nil {
				log.Warn().Err(err).Msg("File logging unavailable - console only")
				logging.ApplyLevel(settings.LogLevel)
			}
		}
	},
}

// Execute dispatches the command line. Operational failures exit 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config-dir", config.DefaultConfigDir, "directory holding the assignment document")
	rootCmd.PersistentFlags().String("log-file", config.DefaultLogFile, "log file path")
	rootCmd.PersistentFlags().String("pid-file", "", "PID file path (default: standard runtime locations)")

	_ = viper.BindPFlag("config_dir", rootCmd.PersistentFlags().Lookup("config-dir"))
	_ = viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("pid_file", rootCmd.PersistentFlags().Lookup("pid-file"))
}

// resolvePaths returns the effective file locations from flags, DOCKNET_
// environment variables and the Unraid defaults.
func resolvePaths() config.Paths {
	return config.ResolvePaths(viper.GetViper())
}

func openStore() *config.Store {
	return config.NewStore(resolvePaths().DocumentPath())
}

func connectRuntime() (*docker.Runtime, error) {
	rt, err := docker.NewRuntime()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Docker client: %w", err)
	}
	return rt, nil
}
