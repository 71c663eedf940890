package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brogergvhs/wikiep/internal/batch"
	"github.com/brogergvhs/wikiep/internal/config"
	"github.com/brogergvhs/wikiep/internal/output"
	"github.com/brogergvhs/wikiep/internal/providers"
	"github.com/brogergvhs/wikiep/internal/series"
	"github.com/brogergvhs/wikiep/internal/ui"
	"github.com/brogergvhs/wikiep/internal/util"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	// extraction
	flagTables   string
	flagSynopsis string
	flagEpisodes string

	// output
	flagFormat     string
	flagOutput     string
	flagSplit      string
	flagWorkers    int
	flagNoProgress bool
)

func addPipelineFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagTables, "tables", "", "episode tables per page: single or all")
	c.Flags().StringVar(&flagSynopsis, "synopsis", "", "synopsis pairing: sibling or positional")
	c.Flags().StringVar(&flagEpisodes, "episodes", "", "keep only these episode numbers (e.g. 1-5,8)")

	c.Flags().StringVar(&flagFormat, "format", "", "output format: json, jsonl, yaml or table")
	c.Flags().StringVarP(&flagOutput, "output", "o", "", "write output to this file instead of stdout")
	c.Flags().StringVar(&flagSplit, "split", "", "write one file per series into this folder")
	c.Flags().IntVar(&flagWorkers, "workers", 0, "pages processed in parallel")
	c.Flags().BoolVar(&flagNoProgress, "no-progress", false, "disable the progress bar")
}

func pipelineOptions() config.Options {
	return config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Output:       flagOutput,
		SplitDir:     flagSplit,
		Format:       flagFormat,
		Workers:      flagWorkers,
		Tables:       flagTables,
		Synopsis:     flagSynopsis,
		Episodes:     flagEpisodes,
		NoProgress:   flagNoProgress,
	}
}

// runPipeline fetches and extracts refs, reports failures and writes the
// successful results. It fails only when no page succeeded.
func runPipeline(cmd *cobra.Command, cfg *config.Config, src providers.Source, refs []string, logSvc *ui.Logger) error {
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	sel, err := series.ParseSelection(cfg.Episodes)
	if err != nil {
		return err
	}

	refs = lo.Uniq(lo.Filter(refs, func(r string, _ int) bool { return strings.TrimSpace(r) != "" }))
	if len(refs) == 0 {
		return fmt.Errorf("no pages given: pass pages as arguments, with --file, or in the config")
	}

	stderr := cmd.ErrOrStderr()
	outDir := cfg.SplitDir
	if outDir == "" && cfg.Output != "" {
		outDir = filepath.Dir(cfg.Output)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := util.SetupInterruptHandler(parent, outDir, stderr)
	defer cancel()

	pr := ui.NewProgress(len(refs), cfg.Progress)
	start := time.Now()

	outcomes := batch.Run(ctx, src, refs, batch.Options{
		Workers:  cfg.Workers,
		Extract:  cfg.ExtractOptions(),
		Progress: pr,
		Log:      logSvc,
	})
	pr.Close()

	stats := &ui.Stats{}
	for _, o := range outcomes {
		stats.Bytes.Add(int64(o.Bytes))
		if o.Err != nil {
			stats.PagesFailed.Add(1)
			logSvc.Errorf("%s: %v\n", o.Ref, o.Err)
			continue
		}

		stats.PagesOK.Add(1)
		stats.Episodes.Add(int64(len(o.Result.Episodes)))
		for _, w := range o.Result.Warnings {
			stats.Warnings.Add(1)
			logSvc.Warnf("%s\n", w)
		}
	}

	results := batch.Results(outcomes)
	if len(results) == 0 {
		return fmt.Errorf("all %d pages failed", len(refs))
	}
	sel.Filter(results)

	switch {
	case cfg.SplitDir != "":
		files, err := output.WriteSplit(cfg.SplitDir, format, results)
		if err != nil {
			return err
		}
		for _, f := range files {
			logSvc.Debugf("wrote %s\n", f)
		}
	case cfg.Output != "":
		if err := output.WriteFile(cfg.Output, format, results); err != nil {
			return err
		}
		logSvc.Debugf("wrote %s\n", cfg.Output)
	default:
		if err := output.Write(cmd.OutOrStdout(), format, results); err != nil {
			return err
		}
	}

	printSummary(stderr, stats, time.Since(start))
	return nil
}

func printSummary(w io.Writer, stats *ui.Stats, elapsed time.Duration) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Summary")
	t.AppendRows([]table.Row{
		{"Pages", stats.PagesOK.Load()},
		{"Failed", stats.PagesFailed.Load()},
		{"Episodes", stats.Episodes.Load()},
		{"Warnings", stats.Warnings.Load()},
		{"Data", ui.Human(stats.Bytes.Load())},
		{"Time", elapsed.Round(time.Millisecond)},
	})
	t.Render()
}

// readRefFile reads one page reference per line. Blank lines and lines
// starting with # are skipped.
func readRefFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readRefs(f)
}

func readRefs(r io.Reader) ([]string, error) {
	var refs []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		refs = append(refs, line)
	}

	return refs, sc.Err()
}

func loadPipelineConfig(cmd *cobra.Command, opts config.Options) (*config.Config, *ui.Logger, error) {
	cfg, usedPath, err := profiles.LoadMerged(opts)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logSvc := ui.NewLoggerTo(cmd.ErrOrStderr(), cfg.Debug)
	logSvc.Debugf("Config file: %s\n", usedPath)
	if cfg.Debug {
		cfg.Print(cmd.ErrOrStderr())
	}

	return cfg, logSvc, nil
}
