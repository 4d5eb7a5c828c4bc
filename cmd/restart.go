package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/daemon"
)

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the reconcile daemon",
	Long:  `Stop the running daemon if there is one, then start it again.`,
	RunE:  runRestart,
}

func init() {
	rootCmd.AddCommand(restartCmd)
}

func runRestart(cmd *cobra.Command, args []string) error {
	if err := daemon.Stop(resolvePaths().PidFile); err != nil && !errors.Is(err, daemon.ErrNotRunning) {
		return err
	}

	return runStart(cmd, args)
}
