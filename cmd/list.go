package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/cli/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured container assignments",
	Long:  `Show every container in the document with its assigned networks, enabled flag, and whether the engine reports it running.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := openStore().Load()

	if len(cfg.Containers) == 0 {
		fmt.Println("no container assignments configured")
		return nil
	}

	running := map[string]bool{}
	engineReachable := false
	if rt, err := connectRuntime(); err == nil {
		if names, err := rt.ListRunningContainers(context.Background()); err == nil {
			engineReachable = true
			for _, name := range names {
				running[name] = true
			}
		}
	}

	names := make([]string, 0, len(cfg.Containers))
	for name := range cfg.Containers {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		a := cfg.Containers[name]

		enabled := ui.Muted("no")
		if a.Enabled {
			enabled = ui.Success("yes")
		}

		state := ui.Muted("unknown")
		if engineReachable {
			state = ui.Failure("stopped")
			if running[name] {
				state = ui.Success("running")
			}
		}

		rows = append(rows, []string{name, strings.Join(a.Networks, ", "), enabled, state})
	}

	fmt.Println(ui.Table([]string{"Container", "Networks", "Enabled", "State"}, rows))

	if !engineReachable {
		fmt.Println(ui.Muted("engine unreachable - running state unknown"))
	}
	return nil
}
