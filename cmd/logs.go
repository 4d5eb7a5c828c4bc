package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yourzero/unraid-plugin-docker-multiple-networks/internal/logging"
)

const defaultLogLines = 25

var logsCmd = &cobra.Command{
	Use:   "logs [n]",
	Short: "Print the last n log lines",
	Long:  `Print the last n lines of the active log file (default 25). Rotated files are not included.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	n := defaultLogLines
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			return fmt.Errorf("invalid line count %q", args[0])
		}
		n = parsed
	}

	paths := resolvePaths()
	lines, err := logging.Tail(paths.LogFile, n)
	if err != nil {
		return fmt.Errorf("failed to read log file: %w", err)
	}

	if len(lines) == 0 {
		fmt.Printf("no log entries at %s\n", paths.LogFile)
		return nil
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
