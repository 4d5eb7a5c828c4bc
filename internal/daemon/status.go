package daemon

import (
	"context"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/config"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/logging"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/pkg/runtime"
)

// Report is a point-in-time view of the daemon and its collaborators,
// assembled without side effects.
type Report struct {
	State           State
	Pid             int
	EngineAvailable bool
	EngineVersion   string
	ConfigPresent   bool
	ContainerCount  int
	LogPresent      bool
	LogSizeBytes    int64
	Settings        config.Settings
}

// Collect gathers a Report: lifecycle state from the PID record, engine
// availability via a ping, document presence and container count from the
// store, and size of the active log file.
func Collect(ctx context.Context, paths config.Paths, store *config.Store, rt runtime.Runtime) Report {
	report := Report{State: CurrentState(paths.PidFile)}

	if report.State == StateRunning {
		if pidFile := FindPidFile(paths.PidFile); pidFile != "" {
			if pid, err := ReadPid(pidFile); err == nil {
				report.Pid = pid
			}
		}
	}

	// rt is nil when even the client handshake failed; that is just
	// another flavor of unavailable.
	if rt != nil {
		if err := rt.Ping(ctx); err == nil {
			report.EngineAvailable = true
			if version, err := rt.Version(ctx); err == nil {
				report.EngineVersion = version
			}
		}
	}

	report.ConfigPresent = store.Exists()
	cfg := store.Load()
	report.ContainerCount = len(cfg.Containers)
	report.Settings = cfg.Settings

	report.LogSizeBytes, report.LogPresent = logging.SizeBytes(paths.LogFile)

	return report
}
