package daemon

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

// StopTimeout bounds the graceful-shutdown wait before escalating to a
// forced kill.
const StopTimeout = 10 * time.Second

// Daemonize re-executes the current binary detached as `start --foreground`
// and waits for the child's PID file to appear as startup confirmation.
// extraArgs carries path overrides through to the child.
func Daemonize(pidOverride string, extraArgs []string) (int, error) {
	exe, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("failed to resolve executable path: %w", err)
	}

	args := append([]string{"start", "--foreground"}, extraArgs...)
	cmd := exec.Command(exe, args...)
	cmd.Env = os.Environ()
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", os.DevNull, err)
	}
	defer devNull.Close()

	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start daemon process: %w", err)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		log.Warn().Err(err).Msg("Failed to release daemon process handle")
	}

	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		if recorded, running := RunningPid(pidOverride); running && recorded == pid {
			return pid, nil
		}
	}

	return 0, fmt.Errorf("daemon did not confirm startup, check the log file")
}

// Stop signals the recorded daemon to terminate and waits, bounded by
// StopTimeout, for it to exit. Past the timeout it escalates to SIGKILL.
// Returns ErrNotRunning when no live daemon is recorded; a stale PID file
// discovered on the way is cleaned up.
func Stop(pidOverride string) error {
	pidFile := FindPidFile(pidOverride)
	if pidFile == "" {
		return ErrNotRunning
	}

	pid, err := ReadPid(pidFile)
	if err != nil {
		RemovePidFile(pidFile)
		return ErrNotRunning
	}

	if !ProcessAlive(pid) {
		log.Warn().Int("pid", pid).Msg("Stale PID file - daemon is not running")
		RemovePidFile(pidFile)
		return ErrNotRunning
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process %d: %w", pid, err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal daemon: %w", err)
	}

	// The daemon's own shutdown path removes the PID file.
	deadline := time.Now().Add(StopTimeout)
	for time.Now().Before(deadline) {
		if !ProcessAlive(pid) {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}

	log.Warn().Int("pid", pid).Msg("Daemon did not stop in time - sending SIGKILL")
	if err := process.Kill(); err != nil && ProcessAlive(pid) {
		return fmt.Errorf("failed to kill daemon: %w", err)
	}
	RemovePidFile(pidFile)

	return nil
}
