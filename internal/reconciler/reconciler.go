// Package reconciler compares a container's desired network membership with
// what the runtime reports and issues the missing connects.
package reconciler

import (
	"context"
	"fmt"

	"code.cloudfoundry.org/clock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/config"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/pkg/runtime"
)

// Reconciler drives one container (or all running containers) toward its
// configured network membership. It holds no state between passes: the
// configuration is re-read and the runtime re-queried on every invocation,
// so config edits and external changes take effect immediately.
type Reconciler struct {
	store *config.Store
	rt    runtime.Runtime
	clock clock.Clock
}

// New creates a reconciler. The clock is injectable so tests control the
// retry delays.
func New(store *config.Store, rt runtime.Runtime, clk clock.Clock) *Reconciler {
	return &Reconciler{
		store: store,
		rt:    rt,
		clock: clk,
	}
}

// Reconcile runs one pass for one container. It never returns an error:
// every failure is logged, recorded in the result and contained to the
// network it happened on.
func (r *Reconciler) Reconcile(ctx context.Context, containerName string) Result {
	logger := log.With().
		Str("pass_id", uuid.NewString()).
		Str("container", containerName).
		Logger()

	// Fresh read per pass so live edits apply without a restart
	cfg := r.store.Load()

	result := Result{Container: containerName}

	assignment, ok := cfg.Assignment(containerName)
	if !ok {
		logger.Debug().Msg("Container has no network assignment - skipping")
		result.Skipped = true
		return result
	}
	if !assignment.Enabled {
		logger.Debug().Msg("Container assignment is disabled - skipping")
		result.Skipped = true
		return result
	}

	// Networks are processed independently: one failure never blocks the
	// remaining desired networks.
	for _, networkName := range assignment.Networks {
		result.Networks = append(result.Networks, r.ensureConnected(ctx, logger, cfg.Settings, containerName, networkName))
	}

	return result
}

// ReconcileAll runs Reconcile over every currently running container,
// sequentially and best-effort. Only the initial listing can fail.
func (r *Reconciler) ReconcileAll(ctx context.Context) (Summary, error) {
	names, err := r.rt.ListRunningContainers(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to list running containers: %w", err)
	}

	summary := Summary{}
	for _, name := range names {
		summary.Containers = append(summary.Containers, r.Reconcile(ctx, name))
	}

	log.Info().
		Int("containers", len(summary.Containers)).
		Int("connected", summary.Connected()).
		Int("failed", summary.Failed()).
		Msg("Reconciliation pass complete")

	return summary, nil
}

// ensureConnected walks one (container, network) pair through its terminal
// states: skipped-missing, no-op, connected or failed.
func (r *Reconciler) ensureConnected(ctx context.Context, logger zerolog.Logger, settings config.Settings, containerName, networkName string) NetworkResult {
	nr := NetworkResult{Network: networkName}

	exists, err := r.rt.NetworkExists(ctx, networkName)
	if err != nil {
		logger.Warn().Err(err).Str("network", networkName).Msg("Network existence check failed - skipping")
		nr.Outcome = OutcomeFailed
		nr.Err = err
		return nr
	}
	if !exists {
		logger.Warn().Str("network", networkName).Msgf("Network '%s' does not exist - skipping", networkName)
		nr.Outcome = OutcomeMissing
		return nr
	}

	connected, err := r.rt.IsConnected(ctx, containerName, networkName)
	if err != nil {
		logger.Warn().Err(err).Str("network", networkName).Msg("Membership check failed - skipping")
		nr.Outcome = OutcomeFailed
		nr.Err = err
		return nr
	}
	if connected {
		logger.Info().Str("network", networkName).Msgf("'%s' already connected to '%s' - skipping", containerName, networkName)
		nr.Outcome = OutcomeNoop
		return nr
	}

	// Bounded retries with a fixed delay. A failure caused by an
	// already-connected race is retried like any other failure; the engine
	// error text in the log tells the two apart.
	attempts := settings.RetryAttempts
	for attempt := 1; attempt <= attempts; attempt++ {
		nr.Attempts = attempt

		err := r.rt.Connect(ctx, containerName, networkName)
		if err == nil {
			logger.Info().
				Str("network", networkName).
				Str("status", "success").
				Int("attempt", attempt).
				Msgf("Connected '%s' to '%s'", containerName, networkName)
			nr.Outcome = OutcomeConnected
			nr.Err = nil
			return nr
		}

		nr.Err = err
		if attempt < attempts {
			logger.Warn().
				Err(err).
				Str("network", networkName).
				Int("attempt", attempt).
				Int("max_attempts", attempts).
				Msg("Connect failed - retrying")
			r.clock.Sleep(settings.RetryDelay())
		}
	}

	logger.Error().
		Err(nr.Err).
		Str("network", networkName).
		Int("attempts", attempts).
		Msgf("Failed to connect '%s' to '%s'", containerName, networkName)
	nr.Outcome = OutcomeFailed
	return nr
}
