package cmd

import (
	"context"
	"fmt"

	"code.cloudfoundry.org/clock"
	"github.com/spf13/cobra"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/reconciler"
)

var applyCmd = &cobra.Command{
	Use:   "apply [container]",
	Short: "Reconcile one or all running containers now",
	Long: `Run a reconciliation pass outside the event loop: with a container name,
only that container; without one, every currently running container.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	rt, err := connectRuntime()
	if err != nil {
		return err
	}

	ctx := context.Background()
	rec := reconciler.New(openStore(), rt, clock.NewClock())

	if len(args) == 1 {
		name := args[0]
		result := rec.Reconcile(ctx, name)
		if result.Skipped {
			fmt.Printf("%s: no enabled assignment - nothing to do\n", name)
			return nil
		}
		for _, n := range result.Networks {
			fmt.Printf("%s / %s: %s\n", name, n.Network, n.Outcome)
		}
		if failed := result.Failed(); failed > 0 {
			return fmt.Errorf("%d connect(s) failed, see the log", failed)
		}
		return nil
	}

	summary, err := rec.ReconcileAll(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("reconciled %d container(s): %d connected\n", len(summary.Containers), summary.Connected())
	if failed := summary.Failed(); failed > 0 {
		return fmt.Errorf("%d connect(s) failed, see the log", failed)
	}
	return nil
}
