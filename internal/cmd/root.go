// Package cmd provides CLI commands for the tm tool.
package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:     "tm",
	Short:   "tm - Turing machine simulator",
	Version: Version,
	Long: `tm simulates the action of a single-tape Turing machine.

A machine is a rule file of quintuples in the order

  from-state  match  to-state  write  direction

where match and write may be the wildcard "*" (match anything; leave the
cell unchanged), direction is negative for left, zero for stay, positive
for right, and "_" is the blank symbol. Rules match first-wins in file
order. "key: value" lines set configuration (init and halt override the
default initial "1" and halting "0" state labels) and "#" starts a line
comment.`,
	SilenceUsage: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		// Error already printed by cobra.
		return 1
	}
	return 0
}
