package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OWNER/tm/internal/history"
)

var (
	historyCount int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs",
	Long: `List completed runs recorded in the history file, most recent first.

Examples:
  tm history
  tm history -n 5
  tm history --json`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyCount, "count", "n", 20, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := history.DefaultPath()
	if err != nil {
		return err
	}
	records, err := history.NewStore(path).Recent(historyCount)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No recorded runs.")
		return nil
	}
	for _, rec := range records {
		id := rec.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Fprintf(out, "%s  %s  %s  %q -> %q (%s)  %d steps, %d moves\n",
			rec.When.Local().Format("2006-01-02 15:04:05"), id, rec.RuleFile,
			rec.Input, rec.Output, rec.FinalState, rec.Steps, rec.HeadMoves)
	}
	return nil
}
