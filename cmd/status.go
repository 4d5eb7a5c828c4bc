package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/cli/ui"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/daemon"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/pkg/bytesize"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/pkg/runtime"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon, engine and configuration state",
	Long:  `Report whether the daemon is running, whether the Docker engine is reachable, and what the persisted document currently holds. Read-only.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	paths := resolvePaths()

	var rt runtime.Runtime
	if engine, err := connectRuntime(); err == nil {
		rt = engine
	}

	report := daemon.Collect(context.Background(), paths, openStore(), rt)

	daemonCell := ui.Failure(string(report.State))
	switch report.State {
	case daemon.StateRunning:
		daemonCell = ui.Success(fmt.Sprintf("running (pid %d)", report.Pid))
	case daemon.StateCrashed:
		daemonCell = ui.Warning("crashed (stale PID file)")
	}

	engineCell := ui.Failure("unavailable")
	if report.EngineAvailable {
		label := "available"
		if report.EngineVersion != "" {
			label = fmt.Sprintf("available (v%s)", report.EngineVersion)
		}
		engineCell = ui.Success(label)
	}

	configCell := ui.Muted("absent (defaults in effect)")
	if report.ConfigPresent {
		configCell = fmt.Sprintf("%d container(s) at %s", report.ContainerCount, paths.DocumentPath())
	}

	logCell := ui.Muted("absent")
	if report.LogPresent {
		logCell = fmt.Sprintf("%s at %s", bytesize.Format(report.LogSizeBytes), paths.LogFile)
	}

	settingsCell := fmt.Sprintf("level=%s attempts=%d delay=%ds",
		report.Settings.LogLevel, report.Settings.RetryAttempts, report.Settings.RetryDelaySeconds)

	fmt.Println(ui.Table(
		[]string{"Component", "State"},
		[][]string{
			{"Daemon", daemonCell},
			{"Engine", engineCell},
			{"Config", configCell},
			{"Log", logCell},
			{"Settings", settingsCell},
		},
	))

	return nil
}
