package cmd

import (
	"fmt"
	"os"

	"github.com/brogergvhs/wikiep/internal/output"
	"github.com/brogergvhs/wikiep/internal/series"

	"github.com/spf13/cobra"
)

var (
	flagConvertFormat string
	flagConvertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Re-render a jsonl episode listing in another format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(flagConvertFormat)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		eps, err := output.ReadEpisodes(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		results := output.GroupEpisodes(eps)
		for _, r := range results {
			series.SortEpisodes(r.Episodes)
		}

		if flagConvertOutput != "" {
			return output.WriteFile(flagConvertOutput, format, results)
		}
		return output.Write(cmd.OutOrStdout(), format, results)
	},
}

func init() {
	convertCmd.Flags().StringVar(&flagConvertFormat, "format", "table", "output format: json, jsonl, yaml or table")
	convertCmd.Flags().StringVarP(&flagConvertOutput, "output", "o", "", "write output to this file instead of stdout")
	rootCmd.AddCommand(convertCmd)
}
