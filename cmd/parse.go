package cmd

import (
	"github.com/brogergvhs/wikiep/internal/providers/local"

	"github.com/spf13/cobra"
)

func init() {
	parseCmd := &cobra.Command{
		Use:   "parse FILE...",
		Short: "Extract episode lists from saved Wikipedia HTML files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runParse,
	}

	addPipelineFlags(parseCmd)
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, logSvc, err := loadPipelineConfig(cmd, pipelineOptions())
	if err != nil {
		return err
	}

	return runPipeline(cmd, cfg, local.NewSource(), args, logSvc)
}
