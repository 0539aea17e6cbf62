// Package checkignorecmd wires the check-ignore core into a cobra
// command. The binary works standalone and as a git subcommand plugin.
package checkignorecmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pst966/git/internal/version"
	"github.com/pst966/git/pkg/checkignore"
	"github.com/pst966/git/pkg/config"
	"github.com/pst966/git/pkg/exclude"
	"github.com/pst966/git/pkg/index"
	"github.com/pst966/git/pkg/logging"
	"github.com/pst966/git/pkg/pathspec"
	"github.com/pst966/git/pkg/repo"
)

var (
	quiet       bool
	verbose     bool
	stdinPaths  bool
	nullTerm    bool
	nonMatching bool
	debug       int

	// numIgnored carries the match count out to the exit-status mapping.
	numIgnored int
)

// NumIgnored reports how many evaluated paths a rule matched.
func NumIgnored() int {
	return numIgnored
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-check-ignore [options] pathname...",
		Short: "Debug gitignore / exclude files",
		Long: `For each pathname given via the command-line or from a file via
--stdin, check whether the file is excluded by the layered ignore rules
and, when it is, which pattern decided it. Paths already tracked by the
repository are never reported as ignored.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(debug)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := runCheckIgnore(cmd, args)
			if err != nil {
				return err
			}
			numIgnored = count
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress reporting")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "be verbose")
	rootCmd.Flags().BoolVar(&stdinPaths, "stdin", false, "read file names from stdin")
	rootCmd.Flags().BoolVarP(&nullTerm, "z", "z", false, "input paths are terminated by a null character")
	rootCmd.Flags().BoolVarP(&nonMatching, "non-matching", "n", false, "show non-matching input paths")
	rootCmd.PersistentFlags().CountVar(&debug, "debug", "Increase log verbosity (--debug INFO, --debug --debug DEBUG)")

	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("git-check-ignore version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

// runCheckIgnore validates the configuration, loads the collaborators
// and evaluates the paths. All returned errors are fatal.
func runCheckIgnore(cmd *cobra.Command, args []string) (int, error) {
	opts := checkignore.Options{
		Quiet:       quiet,
		Verbose:     verbose,
		NonMatching: nonMatching,
		Stdin:       stdinPaths,
		NullTerm:    nullTerm,
	}
	if err := opts.Validate(len(args)); err != nil {
		return 0, err
	}

	cfg, err := config.Load()
	if err != nil {
		return 0, err
	}

	r, err := repo.Discover("")
	if err != nil {
		return 0, err
	}

	idx, err := index.Open(r.Root)
	if err != nil {
		return 0, err
	}

	resolver, err := exclude.NewLayered(exclude.Options{
		Root:        r.Root,
		GlobalFile:  cfg.ExcludesFile,
		InfoExclude: r.InfoExcludePath(),
		IgnoreCase:  cfg.IgnoreCase,
	})
	if err != nil {
		return 0, err
	}

	dirTypes := exclude.NewDirTypeCache(r.Root)
	runner := checkignore.NewRunner(
		opts,
		pathspec.NewResolver(r.Root),
		idx,
		resolver,
		cmd.OutOrStdout(),
		dirTypes.IsDir,
	)

	if opts.Stdin {
		return runner.RunStdin(cmd.InOrStdin(), r.Prefix)
	}
	return runner.Run(args, r.Prefix)
}
