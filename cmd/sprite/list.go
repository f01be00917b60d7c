package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-demo/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available demos",
	Long:  `Shows the registered demos with their default tick rate and speed.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	demos := registry.List()

	out := cmd.OutOrStdout()
	if len(demos) == 0 {
		fmt.Fprintln(out, "No demos available.")
		return
	}

	fmt.Fprintln(out, "Available demos:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range demos {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-16s  %4s  %5s\n", maxIDLen, "ID", "Title", "TPS", "Speed")
	fmt.Fprintf(out, "  %-*s  %-16s  %4s  %5s\n", maxIDLen, "--", "-----", "---", "-----")

	for _, d := range demos {
		fmt.Fprintf(out, "  %-*s  %-16s  %4d  %5d\n", maxIDLen, d.ID, d.Title, d.Defaults.TickRate, d.Defaults.Speed)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'sprite play <id>' to start a demo.")
}
