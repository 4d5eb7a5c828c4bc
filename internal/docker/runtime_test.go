package docker

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/docker/docker/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/pkg/runtime"
)

// newTestRuntime points a real SDK client at a fake engine API.
func newTestRuntime(t *testing.T, handler http.Handler) (*Runtime, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	host := strings.TrimPrefix(server.URL, "http://")
	cli, err := client.NewClientWithOpts(client.WithHost("tcp://"+host), client.WithVersion("1.41"), client.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	return NewRuntimeWithClient(cli), server
}

func TestRuntime_ListRunningContainers(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1.41/containers/json", r.URL.Path)
		// Without all=1 the engine reports running containers only
		assert.Empty(t, r.URL.Query().Get("all"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"Id": "abc123", "Names": ["/web"]},
			{"Id": "def456", "Names": ["/db", "/db-alias"]}
		]`))
	}))

	names, err := rt.ListRunningContainers(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"db", "web"}, names)
}

func TestRuntime_ListRunningContainers_Empty(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	names, err := rt.ListRunningContainers(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestRuntime_ContainerNetworks(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1.41/containers/web/json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"NetworkSettings": {
				"Networks": {
					"bridge": {"IPAddress": "172.17.0.2"},
					"lan2": {"IPAddress": "172.18.0.2"}
				}
			}
		}`))
	}))

	networks, err := rt.ContainerNetworks(context.Background(), "web")

	assert.NoError(t, err)
	assert.Equal(t, []string{"bridge", "lan2"}, networks)
}

func TestRuntime_ContainerNetworks_NotFound(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "No such container: ghost"}`))
	}))

	_, err := rt.ContainerNetworks(context.Background(), "ghost")

	assert.Error(t, err)
	assert.True(t, runtime.IsNotFound(err))
}

func TestRuntime_ContainerNetworks_NilNetworkSettings(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	networks, err := rt.ContainerNetworks(context.Background(), "web")

	assert.NoError(t, err)
	assert.Empty(t, networks)
}

func TestRuntime_ListNetworks(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1.41/networks", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"Id": "n1", "Name": "bridge"},
			{"Id": "n2", "Name": "lan2"}
		]`))
	}))

	names, err := rt.ListNetworks(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"bridge", "lan2"}, names)
}

func TestRuntime_NetworkExists(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.41/networks/lan2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Id": "n2", "Name": "lan2"}`))
	}))

	exists, err := rt.NetworkExists(context.Background(), "lan2")

	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestRuntime_NetworkExists_Absent(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "network lan9 not found"}`))
	}))

	exists, err := rt.NetworkExists(context.Background(), "lan9")

	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestRuntime_IsConnected(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"NetworkSettings": {
				"Networks": {
					"bridge": {"IPAddress": "172.17.0.2"}
				}
			}
		}`))
	}))

	connected, err := rt.IsConnected(context.Background(), "web", "bridge")
	assert.NoError(t, err)
	assert.True(t, connected)

	connected, err = rt.IsConnected(context.Background(), "web", "lan2")
	assert.NoError(t, err)
	assert.False(t, connected)
}

func TestRuntime_Connect(t *testing.T) {
	var gotBody string
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.41/networks/lan2/connect", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))

	err := rt.Connect(context.Background(), "web", "lan2")

	assert.NoError(t, err)
	assert.Contains(t, gotBody, `"Container":"web"`)
}

func TestRuntime_Connect_EngineFailure(t *testing.T) {
	rt, _ := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "endpoint with name web already exists in network lan2"}`))
	}))

	err := rt.Connect(context.Background(), "web", "lan2")

	assert.Error(t, err)
	var connErr *runtime.ConnectError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "web", connErr.Container)
	assert.Equal(t, "lan2", connErr.Network)
	assert.Contains(t, connErr.Reason, "already exists in network")
}

func TestRuntime_Ping_Unavailable(t *testing.T) {
	rt, server := newTestRuntime(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close()

	err := rt.Ping(context.Background())

	assert.Error(t, err)
	assert.True(t, runtime.IsUnavailable(err))
}
