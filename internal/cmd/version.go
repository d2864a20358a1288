package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the tm version, overridden at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tm version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
