/*
tm simulates the action of a single-tape Turing machine.

Machines are defined in rule files: whitespace-delimited symbol tokens
grouped five at a time into quintuple rules (from-state, match, to-state,
write, direction), with "key: value" lines for configuration and "#" line
comments.

Usage:

	tm <command> [arguments]

Common commands:

	tm run <rulefile> <input>   Execute a machine over an input tape
	tm check <rulefile>         Validate a rule file
	tm history                  List recorded runs
	tm version                  Print version information

See 'tm help <command>' for more information on a specific command.
*/
package main

import (
	"os"

	"github.com/OWNER/tm/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
