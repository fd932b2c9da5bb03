package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"astrosort/internal/config"
	"astrosort/internal/orchestrator"
	"astrosort/internal/output"
)

func newRunCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Scan the collection root and apply normalization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRun(cmd, dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report planned changes without applying them")
	return cmd
}

func newPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Report planned changes without touching the filesystem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRun(cmd, true)
		},
	}
}

// executeRun loads configuration, performs one pass, and renders the report.
func executeRun(cmd *cobra.Command, dryRun bool) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	report, err := orchestrator.Run(cfg, orchestrator.RunOptions{DryRun: dryRun})
	if err != nil {
		return err
	}

	out := output.New(output.Config{
		Verbose:   verbose,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	})
	printReport(out, report, dryRun)

	if report.HasErrors() {
		return fmt.Errorf("%d folder operations failed", len(report.Errors))
	}
	return nil
}

// printReport writes the rendered report plus warnings for any recoverable
// failures. The rendered body is identical for preview and live runs.
func printReport(out *output.Output, report *orchestrator.RunReport, dryRun bool) {
	if dryRun {
		out.Info("Preview: no changes will be applied.")
	}
	out.Verbose("Root: %s", report.Root)
	out.Info("%s", output.Render(report))
	for _, err := range report.Errors {
		out.Warn("%v", err)
	}
}
