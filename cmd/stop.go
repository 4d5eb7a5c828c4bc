package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/daemon"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the reconcile daemon",
	Long:  `Signal the running daemon to terminate, escalating to a forced kill past the grace period.`,
	RunE:  runStop,
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	if err := daemon.Stop(resolvePaths().PidFile); err != nil {
		if errors.Is(err, daemon.ErrNotRunning) {
			fmt.Println("docknet is not running")
			return nil
		}
		return err
	}

	fmt.Println("docknet stopped")
	return nil
}
