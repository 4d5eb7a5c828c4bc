package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/config"
)

func TestStartCommand(t *testing.T) {
	assert.Equal(t, "start", startCmd.Use)
	assert.Contains(t, startCmd.Short, "daemon")

	flag := startCmd.Flags().Lookup("foreground")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestDaemonArgs_FreezesResolvedPaths(t *testing.T) {
	paths := config.Paths{
		ConfigDir: "/boot/config/plugins/docknet",
		LogFile:   "/var/log/docknet.log",
	}

	args := daemonArgs(paths)
	assert.Equal(t, []string{
		"--config-dir", "/boot/config/plugins/docknet",
		"--log-file", "/var/log/docknet.log",
	}, args)
}

func TestDaemonArgs_IncludesPidFileOverride(t *testing.T) {
	paths := config.Paths{
		ConfigDir: "/etc/docknet",
		LogFile:   "/var/log/docknet.log",
		PidFile:   "/run/docknet.pid",
	}

	args := daemonArgs(paths)
	require.Len(t, args, 6)
	assert.Equal(t, "--pid-file", args[4])
	assert.Equal(t, "/run/docknet.pid", args[5])
}
