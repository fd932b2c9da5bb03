// Package cli wires up the astrosort commands.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// NewRootCommand builds the astrosort command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "astrosort",
		Short: "Normalize and deduplicate astronomy collection folders",
		Long: `Astrosort scans a flat directory of astronomical-object collection
folders, classifies each one by its catalog designation (Messier, NGC, IC,
Sharpless, Caldwell, Van den Bergh), merges duplicate folders into a single
canonical folder per object, and marks merged-away originals with a
removable suffix instead of deleting them.

Nothing is ever deleted or overwritten; re-running after an interruption
is always safe.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "astrosort.yaml", "config file path")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print per-folder decisions")

	root.AddCommand(newRunCommand())
	root.AddCommand(newPreviewCommand())
	root.AddCommand(newWatchCommand())
	root.AddCommand(newVersionCommand())
	return root
}
