// Package docker implements the container runtime adapter using the Docker API.
package docker

import (
	"context"
	"fmt"
	"sort"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/rs/zerolog/log"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/pkg/runtime"
)

// Runtime implements the runtime.Runtime interface using the Docker API.
type Runtime struct {
	client *client.Client
}

// NewRuntime creates a new Docker runtime instance.
func NewRuntime() (*Runtime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return &Runtime{
		client: cli,
	}, nil
}

// NewRuntimeWithClient creates a new Docker runtime instance with a custom client (for testing).
func NewRuntimeWithClient(cli *client.Client) *Runtime {
	return &Runtime{
		client: cli,
	}
}

// ListRunningContainers returns the names of all currently running containers.
// An empty host is an empty slice, not an error.
func (r *Runtime) ListRunningContainers(ctx context.Context) ([]string, error) {
	containers, err := r.client.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return nil, classify(err, "failed to list containers")
	}

	names := make([]string, 0, len(containers))
	for _, c := range containers {
		if len(c.Names) == 0 {
			continue
		}
		// Docker reports names with a leading slash
		names = append(names, strings.TrimPrefix(c.Names[0], "/"))
	}
	sort.Strings(names)

	return names, nil
}

// ContainerNetworks returns the names of the networks the container is
// currently connected to. Fails with runtime.ErrNotFound when the container
// does not exist.
func (r *Runtime) ContainerNetworks(ctx context.Context, containerName string) ([]string, error) {
	resp, err := r.client.ContainerInspect(ctx, containerName)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return nil, fmt.Errorf("container %q: %w", containerName, runtime.ErrNotFound)
		}
		return nil, classify(err, fmt.Sprintf("failed to inspect container %s", containerName))
	}

	var networks []string
	if resp.NetworkSettings != nil {
		for name := range resp.NetworkSettings.Networks {
			networks = append(networks, name)
		}
	}
	sort.Strings(networks)

	return networks, nil
}

// ListNetworks returns the names of all networks known to the engine.
func (r *Runtime) ListNetworks(ctx context.Context) ([]string, error) {
	networks, err := r.client.NetworkList(ctx, network.ListOptions{})
	if err != nil {
		return nil, classify(err, "failed to list networks")
	}

	names := make([]string, 0, len(networks))
	for _, net := range networks {
		names = append(names, net.Name)
	}
	sort.Strings(names)

	return names, nil
}

// NetworkExists checks if a Docker network exists. Absence is false, not an error.
func (r *Runtime) NetworkExists(ctx context.Context, networkName string) (bool, error) {
	_, err := r.client.NetworkInspect(ctx, networkName, network.InspectOptions{})
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			return false, nil
		}
		return false, classify(err, fmt.Sprintf("failed to inspect network %s", networkName))
	}
	return true, nil
}

// IsConnected reports whether the container is currently a member of the network.
func (r *Runtime) IsConnected(ctx context.Context, containerName, networkName string) (bool, error) {
	networks, err := r.ContainerNetworks(ctx, containerName)
	if err != nil {
		return false, err
	}
	for _, name := range networks {
		if name == networkName {
			return true, nil
		}
	}
	return false, nil
}

// Connect attaches the container to the network. A single attempt; callers
// own retries and the IsConnected pre-check.
func (r *Runtime) Connect(ctx context.Context, containerName, networkName string) error {
	err := r.client.NetworkConnect(ctx, networkName, containerName, &network.EndpointSettings{})
	if err != nil {
		return &runtime.ConnectError{
			Container: containerName,
			Network:   networkName,
			Reason:    err.Error(),
		}
	}

	log.Debug().Str("container", containerName).Str("network", networkName).Msg("Network connect issued")
	return nil
}

// Ping checks that the Docker engine is reachable.
func (r *Runtime) Ping(ctx context.Context) error {
	_, err := r.client.Ping(ctx)
	if err != nil {
		return classify(err, "Docker ping failed")
	}
	return nil
}

// Version returns the Docker engine version.
func (r *Runtime) Version(ctx context.Context) (string, error) {
	version, err := r.client.ServerVersion(ctx)
	if err != nil {
		return "", classify(err, "failed to get Docker version")
	}
	return version.Version, nil
}

// classify maps SDK transport failures onto runtime.ErrUnavailable so
// callers can distinguish an unreachable engine from an engine that said no.
func classify(err error, msg string) error {
	if client.IsErrConnectionFailed(err) {
		return fmt.Errorf("%s: %w: %v", msg, runtime.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
