package daemon

// State is the lifecycle phase of the daemon process as far as it can be
// observed from outside: only the PID record survives across invocations.
type State string

const (
	StateStopped  State = "stopped"
	StateStarting State = "starting"
	StateRunning  State = "running"
	StateStopping State = "stopping"
	// StateCrashed marks a PID file left behind by a dead process. Start
	// treats it as stopped after cleaning the stale file up.
	StateCrashed State = "crashed"
)

// CurrentState derives the lifecycle state from the PID record. It is a
// pure read: stale files are reported as crashed, not cleaned up here.
func CurrentState(pidOverride string) State {
	pidFile := FindPidFile(pidOverride)
	if pidFile == "" {
		return StateStopped
	}

	pid, err := ReadPid(pidFile)
	if err != nil || !ProcessAlive(pid) {
		return StateCrashed
	}

	return StateRunning
}
