package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/config"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/logging"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/reconciler"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/pkg/runtime"
)

var (
	// ErrAlreadyRunning is returned when a live daemon PID is already recorded.
	ErrAlreadyRunning = errors.New("docknet is already running")
	// ErrNotRunning is returned by Stop when no live daemon is recorded.
	ErrNotRunning = errors.New("docknet is not running")
)

// Daemon consumes the container-start event stream and reconciles each
// started container against the persisted assignment document.
type Daemon struct {
	store       *config.Store
	rt          runtime.Runtime
	rec         *reconciler.Reconciler
	pidOverride string
}

// New assembles a daemon from its collaborators. pidOverride selects a
// fixed PID file path; empty picks the standard locations.
func New(store *config.Store, rt runtime.Runtime, rec *reconciler.Reconciler, pidOverride string) *Daemon {
	return &Daemon{
		store:       store,
		rt:          rt,
		rec:         rec,
		pidOverride: pidOverride,
	}
}

// Run serves the event loop in the calling process until ctx is canceled
// or the event stream ends. Stream end is fatal: the daemon logs the cause,
// clears its PID record and returns the error. It never restarts itself.
//
// Events are processed one at a time; a reconciliation in progress,
// including its retry sleeps, finishes before the next event is read.
func (d *Daemon) Run(ctx context.Context) error {
	if pid, running := RunningPid(d.pidOverride); running {
		return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, pid)
	}

	if err := d.rt.Ping(ctx); err != nil {
		return fmt.Errorf("container runtime unavailable: %w", err)
	}

	pidFile, err := WritePidFile(d.pidOverride)
	if err != nil {
		return err
	}
	defer RemovePidFile(pidFile)

	names, errs := d.rt.SubscribeContainerStarts(ctx)
	log.Info().Int("pid", os.Getpid()).Str("pid_file", pidFile).Msg("Daemon started - watching container starts")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Shutdown requested - stopping daemon")
			return nil

		case name, ok := <-names:
			if !ok {
				// Terminal cause follows on the error channel.
				names = nil
				continue
			}
			// Settings are re-read per event so document edits apply
			// without a restart.
			settings := d.store.Load().Settings
			logging.ApplyLevel(settings.LogLevel)
			d.rec.Reconcile(ctx, name)

		case err := <-errs:
			if err == nil {
				continue
			}
			if ctx.Err() != nil {
				log.Info().Msg("Shutdown requested - stopping daemon")
				return nil
			}
			log.Error().Err(err).Msg("Event stream ended - daemon exiting")
			return err
		}
	}
}
