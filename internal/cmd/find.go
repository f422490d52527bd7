package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/pathfind/finder"
	"github.com/harrison/pathfind/internal/config"
	"github.com/harrison/pathfind/internal/logger"
)

// findOptions carries the flag values of the find subcommand.
type findOptions struct {
	dirs       []string
	names      []string
	globs      []string
	regexps    []string
	extensions []string
	entryType  string
	one        bool
	profile    string
	configPath string
	logLevel   string
}

// NewFindCommand creates and returns the find subcommand
func NewFindCommand() *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Print entries under the given roots that pass every filter",
		Long: `Search the immediate entries of one or more root directories and print
the absolute paths that pass every filter, one per line, sorted ascending.

Only immediate entries are examined; pathfind never recurses. Supplying no
filter matches nothing. Any missing or non-directory root fails the whole
search.

Examples:
  pathfind find --name file.html            # search the current directory
  pathfind find -d docs -d archive --ext md # several roots, by extension
  pathfind find -d docs --glob 'plan-*' --type f
  pathfind find --one -d cmd --type d       # insist on a single match
  pathfind find --profile plans             # filters from .pathfind.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFind(cmd, opts)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.dirs, "dir", "d", nil, "root directory to search (repeatable; default: current directory)")
	flags.StringArrayVarP(&opts.names, "name", "n", nil, "match basename exactly (repeatable; any listed name matches)")
	flags.StringArrayVarP(&opts.globs, "glob", "g", nil, "match basename against a glob (repeatable)")
	flags.StringArrayVarP(&opts.regexps, "regexp", "r", nil, "match basename against a regular expression (repeatable)")
	flags.StringArrayVarP(&opts.extensions, "ext", "e", nil, "match file extension, leading dot optional (repeatable)")
	flags.StringVarP(&opts.entryType, "type", "t", "", "restrict entry kind: f (files) or d (directories)")
	flags.BoolVar(&opts.one, "one", false, "require at most one match; fail on none or several")
	flags.StringVar(&opts.profile, "profile", "", "named search profile from the config file")
	flags.StringVar(&opts.configPath, "config", config.DefaultConfigFile, "config file path")
	flags.StringVar(&opts.logLevel, "log-level", "", "log verbosity: debug, info, warn, error")

	return cmd
}

func runFind(cmd *cobra.Command, opts *findOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.profile != "" {
		profile, err := cfg.Profile(opts.profile)
		if err != nil {
			return err
		}
		applyProfile(opts, profile)
	}

	logLevel := cfg.LogLevel
	if opts.logLevel != "" {
		logLevel = opts.logLevel
	}
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), logLevel)

	f := finder.New(finder.WithConcurrency(cfg.MaxConcurrency))
	predicates, err := buildPredicates(f, opts)
	if err != nil {
		return err
	}
	if len(predicates) == 0 {
		log.LogWarn("no filters supplied; nothing can match")
	}

	queryID := uuid.New().String()
	log.LogDebug(fmt.Sprintf("query %s: roots=%v filters=%d one=%v", queryID, opts.dirs, len(predicates), opts.one))

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if opts.one {
		path, found, err := f.FindOnlyOne(ctx, opts.dirs, predicates...)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no match")
		}
		fmt.Fprintln(out, colorizePath(out, path))
		return nil
	}

	paths, err := f.FindAll(ctx, opts.dirs, predicates...)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintln(out, colorizePath(out, path))
	}
	log.LogDebug(fmt.Sprintf("query %s: %d match(es)", queryID, len(paths)))
	return nil
}

// applyProfile fills in options the user left empty; explicit flags win over
// the profile.
func applyProfile(opts *findOptions, profile config.Profile) {
	if len(opts.dirs) == 0 {
		opts.dirs = profile.Dirs
	}
	if len(opts.names) == 0 {
		opts.names = profile.Names
	}
	if len(opts.globs) == 0 {
		opts.globs = profile.Globs
	}
	if len(opts.regexps) == 0 {
		opts.regexps = profile.Regexps
	}
	if len(opts.extensions) == 0 {
		opts.extensions = profile.Extensions
	}
	if opts.entryType == "" {
		opts.entryType = profile.Type
	}
}

// buildPredicates translates the filter options into the finder's predicate
// chain, in a fixed order so repeated runs behave identically.
func buildPredicates(f *finder.Finder, opts *findOptions) ([]finder.Predicate, error) {
	var predicates []finder.Predicate

	if len(opts.names) > 0 {
		predicates = append(predicates, finder.Name(opts.names...))
	}
	if len(opts.globs) > 0 {
		predicates = append(predicates, finder.NameGlob(opts.globs...))
	}
	if len(opts.regexps) > 0 {
		compiled := make([]*regexp.Regexp, 0, len(opts.regexps))
		for _, pattern := range opts.regexps {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid regexp %q: %w", pattern, err)
			}
			compiled = append(compiled, re)
		}
		predicates = append(predicates, finder.NameRegexp(compiled...))
	}
	if len(opts.extensions) > 0 {
		predicates = append(predicates, finder.Extension(opts.extensions...))
	}
	switch opts.entryType {
	case "":
	case "f":
		predicates = append(predicates, f.IsFile())
	case "d":
		predicates = append(predicates, f.IsDir())
	default:
		return nil, fmt.Errorf("invalid --type %q: want f or d", opts.entryType)
	}

	return predicates, nil
}

// colorizePath highlights the basename when writing to a terminal, so
// scanning long result lists by eye is easier. Piped or redirected output
// stays plain.
func colorizePath(out io.Writer, path string) string {
	if out != os.Stdout || !isatty.IsTerminal(os.Stdout.Fd()) {
		return path
	}
	dir, base := filepath.Split(path)
	return dir + color.New(color.Bold, color.FgGreen).Sprint(base)
}
