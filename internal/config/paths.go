package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Default locations target the Unraid plugin layout: the document lives on
// the flash share so it survives reboots, logs go under /var/log.
const (
	DefaultConfigDir = "/boot/config/plugins/docker.multiple.networks"
	DefaultLogFile   = "/var/log/docknet/docknet.log"

	// DocumentName is the assignment document's file name inside ConfigDir.
	DocumentName = "networks.json"
)

// Paths is where this process keeps its document, log and PID files.
type Paths struct {
	ConfigDir string
	LogFile   string
	PidFile   string // empty selects the standard runtime locations
}

// ResolvePaths resolves path overrides from values bound into v by CLI
// flags and from DOCKNET_-prefixed environment variables.
func ResolvePaths(v *viper.Viper) Paths {
	v.SetDefault("config_dir", DefaultConfigDir)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("pid_file", "")

	v.SetEnvPrefix("DOCKNET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return Paths{
		ConfigDir: v.GetString("config_dir"),
		LogFile:   v.GetString("log_file"),
		PidFile:   v.GetString("pid_file"),
	}
}

// DocumentPath returns the full path of the assignment document.
func (p Paths) DocumentPath() string {
	return filepath.Join(p.ConfigDir, DocumentName)
}
