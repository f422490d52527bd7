package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for pathfind
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pathfind",
		Short: "Locate filesystem entries matching a chain of filters",
		Long: `Pathfind locates files and directories immediately beneath one or
more root directories whose paths satisfy every supplied filter.

Filters match on basename, glob, regular expression, extension, or entry
kind, and are ANDed together. Results are absolute paths, deduplicated and
sorted. With --one, pathfind insists on at most one match and fails when a
second one exists.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewFindCommand())

	return cmd
}
