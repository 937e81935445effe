package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded run history",
	Long: `Browse the recorded simulation runs.

By default an interactive browser opens; press Tab to switch between
the most recent and the longest runs. Use --plain for plain text
output, or --clear to wipe the history.

Examples:
  life history
  life history --plain
  life history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print history as plain text instead of the browser")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagPlain {
		printHistory(store)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running history browser: %v\n", err)
		os.Exit(1)
	}
}

// printHistory writes recent runs and aggregate stats to stdout.
func printHistory(store *storage.Store) {
	runs, err := store.RecentRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'life play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-9s  %-12s  %-7s  %-7s  %-6s  %s\n", "Grid", "Generations", "Peak", "Final", "Time", "Date")
	fmt.Printf("  %-9s  %-12s  %-7s  %-7s  %-6s  %s\n", "----", "-----------", "----", "-----", "----", "----")

	// Print runs
	for _, r := range runs {
		fmt.Printf("  %-9s  %-12d  %-7d  %-7d  %d:%02d   %s\n",
			fmt.Sprintf("%dx%d", r.GridWidth, r.GridHeight),
			r.Generations,
			r.PeakPopulation,
			r.FinalPopulation,
			r.DurationSecs/60, r.DurationSecs%60,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	// Aggregate stats
	fmt.Println()
	if stats, err := store.History(); err == nil && stats.RunCount > 0 {
		fmt.Printf("Total: %d runs, %d generations, peak population %d\n",
			stats.RunCount, stats.TotalGenerations, stats.MaxPeakPopulation)
	}
}
