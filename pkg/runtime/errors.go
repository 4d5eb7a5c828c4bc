package runtime

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the named container does not exist.
	ErrNotFound = errors.New("container not found")

	// ErrUnavailable indicates the runtime engine cannot be reached.
	ErrUnavailable = errors.New("container runtime unavailable")
)

// ConnectError is a failed connect attempt. It keeps the engine's raw
// failure text so retry logs show what the engine actually said.
type ConnectError struct {
	Container string
	Network   string
	Reason    string
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect %q to %q: %s", e.Container, e.Network, e.Reason)
}

// IsNotFound reports whether err indicates a missing container.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailable reports whether err indicates an unreachable engine.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
