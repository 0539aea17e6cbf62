package main

import (
	"fmt"
	"os"

	checkignorecmd "github.com/pst966/git/cmd/git-check-ignore"
)

// Exit status contract: 0 when at least one path matched an ignore
// rule, 1 when none did, 128 on any fatal error.
func main() {
	rootCmd := checkignorecmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(128)
	}

	if calledSubcommand(os.Args) {
		return
	}

	if checkignorecmd.NumIgnored() > 0 {
		os.Exit(0)
	}
	os.Exit(1)
}

// calledSubcommand reports whether a subcommand such as "version" ran
// instead of the ignore check; those keep the conventional zero exit.
func calledSubcommand(args []string) bool {
	for _, a := range args[1:] {
		switch a {
		case "version", "help", "completion":
			return true
		case "--":
			return false
		}
		if a == "" || a[0] != '-' {
			return false
		}
	}
	return false
}
