package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/cli/ui"
	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the persisted document for problems",
	Long: `Parse the assignment document and report fatal findings (broken JSON,
missing containers key) and warnings (missing metadata, references to
containers or networks the engine does not know about).`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := resolvePaths().DocumentPath()

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fmt.Printf("no document at %s - defaults are in effect\n", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	// Dangling-reference checks are best effort: without the engine the
	// structural findings still stand.
	var runningContainers, networks []string
	if rt, err := connectRuntime(); err == nil {
		ctx := context.Background()
		if names, err := rt.ListRunningContainers(ctx); err == nil {
			runningContainers = names
		} else {
			fmt.Println(ui.Muted("engine unreachable - skipping container reference checks"))
		}
		if names, err := rt.ListNetworks(ctx); err == nil {
			networks = names
		} else {
			fmt.Println(ui.Muted("engine unreachable - skipping network reference checks"))
		}
	}

	report := config.Validate(raw, runningContainers, networks)

	for _, finding := range report.Fatal {
		fmt.Println(ui.Failure("FATAL: " + finding))
	}
	for _, finding := range report.Warnings {
		fmt.Println(ui.Warning("WARN:  " + finding))
	}

	if !report.Valid() {
		return fmt.Errorf("document at %s has fatal problems", path)
	}

	if len(report.Warnings) == 0 {
		fmt.Println(ui.Success("document is valid"))
	} else {
		fmt.Printf("document is valid with %d warning(s)\n", len(report.Warnings))
	}
	return nil
}
