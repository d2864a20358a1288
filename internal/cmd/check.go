package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/OWNER/tm/internal/machine"
	"github.com/OWNER/tm/internal/rules"
)

var checkShowRules bool

var checkCmd = &cobra.Command{
	Use:   "check <rulefile>",
	Short: "Validate a rule file",
	Long: `Parse a rule file and report what it defines without running it.

Shows the rule count, the effective initial and halting state labels, and
any configuration entries. Exits non-zero if the file fails to parse.

Examples:
  tm check increment.tm
  tm check increment.tm --rules`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkShowRules, "rules", false, "List every parsed rule")
}

func runCheck(cmd *cobra.Command, args []string) error {
	table, entries, err := rules.ParseFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	cfg := machine.ConfigFromEntries(entries)

	fmt.Fprintf(out, "%s: %d rules\n", args[0], table.Len())
	fmt.Fprintf(out, "Initial state: %s\n", cfg.InitState)
	fmt.Fprintf(out, "Halting state: %s\n", cfg.HaltState)

	if len(entries) > 0 {
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(out, "Configuration:")
		for _, k := range keys {
			fmt.Fprintf(out, "  %s: %s\n", k, entries[k])
		}
	}

	if checkShowRules {
		fmt.Fprintln(out, "Rules:")
		for _, r := range table.Rules() {
			fmt.Fprintf(out, "  %s\n", r)
		}
	}
	return nil
}
