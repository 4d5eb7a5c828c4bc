package reconciler

// Outcome is the terminal state of one (container, network) pair.
type Outcome string

const (
	// OutcomeConnected means a connect was issued and succeeded.
	OutcomeConnected Outcome = "connected"
	// OutcomeNoop means the container was already a member.
	OutcomeNoop Outcome = "already-connected"
	// OutcomeMissing means the desired network does not exist.
	OutcomeMissing Outcome = "skipped-missing"
	// OutcomeFailed means every connect attempt failed.
	OutcomeFailed Outcome = "failed"
)

// NetworkResult records how one desired network ended up.
type NetworkResult struct {
	Network  string
	Outcome  Outcome
	Attempts int
	Err      error
}

// Result is one reconciliation pass over one container.
type Result struct {
	Container string
	Skipped   bool // unlisted or disabled
	Networks  []NetworkResult
}

// Connected counts networks newly connected this pass.
func (r Result) Connected() int {
	return r.count(OutcomeConnected)
}

// Failed counts networks that exhausted their attempts.
func (r Result) Failed() int {
	return r.count(OutcomeFailed)
}

func (r Result) count(o Outcome) int {
	n := 0
	for _, nr := range r.Networks {
		if nr.Outcome == o {
			n++
		}
	}
	return n
}

// Summary aggregates a whole-host pass.
type Summary struct {
	Containers []Result
}

// Connected counts networks newly connected across the pass.
func (s Summary) Connected() int {
	n := 0
	for _, r := range s.Containers {
		n += r.Connected()
	}
	return n
}

// Failed counts exhausted (container, network) pairs across the pass.
func (s Summary) Failed() int {
	n := 0
	for _, r := range s.Containers {
		n += r.Failed()
	}
	return n
}
