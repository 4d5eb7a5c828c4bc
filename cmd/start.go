package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"code.cloudfoundry.org/clock"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/config"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/daemon"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/reconciler"
)

var startForeground bool

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconcile daemon",
	Long: `Start the daemon that watches container start events and connects each
started container to its assigned additional networks.`,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVar(&startForeground, "foreground", false, "run in the foreground instead of daemonizing")
}

func runStart(cmd *cobra.Command, args []string) error {
	paths := resolvePaths()

	if pid, running := daemon.RunningPid(paths.PidFile); running {
		return fmt.Errorf("docknet is already running (pid %d)", pid)
	}

	rt, err := connectRuntime()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := rt.Ping(ctx); err != nil {
		return fmt.Errorf("container runtime unavailable: %w", err)
	}

	if !startForeground {
		pid, err := daemon.Daemonize(paths.PidFile, daemonArgs(paths))
		if err != nil {
			return err
		}
		fmt.Printf("docknet started (pid %d)\n", pid)
		return nil
	}

	store := openStore()
	rec := reconciler.New(store, rt, clock.NewClock())
	d := daemon.New(store, rt, rec, paths.PidFile)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	return d.Run(ctx)
}

// daemonArgs freezes the effective path resolution into explicit flags for
// the re-executed child, so it cannot drift from the parent's view.
func daemonArgs(paths config.Paths) []string {
	args := []string{
		"--config-dir", paths.ConfigDir,
		"--log-file", paths.LogFile,
	}
	if paths.PidFile != "" {
		args = append(args, "--pid-file", paths.PidFile)
	}
	return args
}
