package cmd

import (
	"fmt"
	"time"

	"github.com/brogergvhs/wikiep/internal/providers/web"

	"github.com/spf13/cobra"
)

var (
	// selection
	flagFile     string
	flagWikiBase string

	// http
	flagTimeout    time.Duration
	flagRetries    int
	flagUserAgent  string
	flagCloudflare bool
)

func init() {
	scrapeCmd := &cobra.Command{
		Use:   "scrape [page...]",
		Short: "Fetch Wikipedia pages and extract their episode lists. Uses the defaults from the selected config, overwritten by CLI flags",
		Long: `Fetch Wikipedia pages and extract their episode lists.

A page is a title such as "The_Big_Bang_Theory_(season_1)" or a full URL.
Pages come from the arguments, from --file and from the config's pages list.
A page that fails is reported and skipped; the command fails only when
every page failed.`,
		RunE: runScrape,
	}

	// selection
	scrapeCmd.Flags().StringVarP(&flagFile, "file", "f", "", "read page titles or URLs from this file, one per line")
	scrapeCmd.Flags().StringVar(&flagWikiBase, "wiki-base", "", "base URL that page titles are resolved against")

	// http
	scrapeCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "per-request timeout (e.g. 30s)")
	scrapeCmd.Flags().IntVar(&flagRetries, "retries", 0, "attempts per page on network errors and 5xx responses")
	scrapeCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	scrapeCmd.Flags().BoolVar(&flagCloudflare, "cloudflare", false, "route requests through the Cloudflare bypass transport")

	addPipelineFlags(scrapeCmd)
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	opts := pipelineOptions()
	opts.Pages = args
	opts.WikiBase = flagWikiBase
	opts.Timeout = flagTimeout
	opts.Retries = flagRetries
	opts.UserAgent = flagUserAgent
	opts.Cloudflare = flagCloudflare

	cfg, logSvc, err := loadPipelineConfig(cmd, opts)
	if err != nil {
		return err
	}

	refs := cfg.Pages
	if flagFile != "" {
		fromFile, err := readRefFile(flagFile)
		if err != nil {
			return fmt.Errorf("cannot read page list: %w", err)
		}
		refs = append(refs, fromFile...)
	}

	client := web.NewClient(web.ClientOptions{
		Timeout:     cfg.Timeout,
		UserAgent:   cfg.UserAgent,
		Cloudflare:  cfg.Cloudflare,
		DebugLogger: logSvc,
	})
	src := web.NewSource(client, cfg.WikiBase, cfg.Retries)

	return runPipeline(cmd, cfg, src, refs, logSvc)
}
