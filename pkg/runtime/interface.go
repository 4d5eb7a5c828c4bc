package runtime

import (
	"context"
)

// Runtime interface defines the contract for container runtime implementations.
// Everything it returns is a transient view: nothing is cached by this system,
// callers re-query per reconciliation pass.
type Runtime interface {
	// Container inspection
	ListRunningContainers(ctx context.Context) ([]string, error)
	ContainerNetworks(ctx context.Context, containerName string) ([]string, error)

	// Network inspection
	ListNetworks(ctx context.Context) ([]string, error)
	NetworkExists(ctx context.Context, networkName string) (bool, error)
	IsConnected(ctx context.Context, containerName, networkName string) (bool, error)

	// Network mutation. A single attempt; idempotence is the caller's
	// responsibility (check IsConnected first).
	Connect(ctx context.Context, containerName, networkName string) error

	// Event stream. Lazy, infinite and non-restartable: the name channel
	// closes only when the underlying transport ends, and the error channel
	// then carries the terminal cause.
	SubscribeContainerStarts(ctx context.Context) (<-chan string, <-chan error)

	// Runtime information
	Ping(ctx context.Context) error
	Version(ctx context.Context) (string, error)
}
