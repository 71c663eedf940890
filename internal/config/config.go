package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/brogergvhs/wikiep/internal/output"
	"github.com/brogergvhs/wikiep/internal/providers"
	"github.com/brogergvhs/wikiep/internal/series"
	"github.com/brogergvhs/wikiep/internal/wikipedia"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Pages    []string `yaml:"pages"`
	WikiBase string   `yaml:"wiki_base"`

	Output   string `yaml:"output"`
	SplitDir string `yaml:"split_dir"`
	Format   string `yaml:"format"`

	Workers    int           `yaml:"workers"`
	Timeout    time.Duration `yaml:"timeout"`
	Retries    int           `yaml:"retries"`
	UserAgent  string        `yaml:"user_agent"`
	Cloudflare bool          `yaml:"cloudflare"`

	Tables   string `yaml:"tables"`
	Synopsis string `yaml:"synopsis"`
	Episodes string `yaml:"episodes"`

	Progress bool `yaml:"progress"`
	Debug    bool `yaml:"debug"`
}

// Options are command-line overrides. Zero values leave the profile alone.
type Options struct {
	IgnoreConfig bool
	Debug        bool
	Pages        []string
	WikiBase     string
	Output       string
	SplitDir     string
	Format       string
	Workers      int
	Timeout      time.Duration
	Retries      int
	UserAgent    string
	Cloudflare   bool
	Tables       string
	Synopsis     string
	Episodes     string
	NoProgress   bool
}

func DefaultConfig() *Config {
	return &Config{
		Pages:    []string{},
		WikiBase: providers.DefaultWikiBase,
		Format:   string(output.FormatJSON),
		Workers:  4,
		Timeout:  30 * time.Second,
		Retries:  3,
		Tables:   string(wikipedia.TablesSingle),
		Synopsis: string(wikipedia.SynopsisSibling),
		Progress: true,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

func mergeConfig(c *Config, o Options) {
	if len(o.Pages) > 0 {
		c.Pages = append(append([]string{}, c.Pages...), o.Pages...)
	}
	if o.WikiBase != "" {
		c.WikiBase = o.WikiBase
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.SplitDir != "" {
		c.SplitDir = o.SplitDir
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.Retries != 0 {
		c.Retries = o.Retries
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Cloudflare {
		c.Cloudflare = true
	}
	if o.Tables != "" {
		c.Tables = o.Tables
	}
	if o.Synopsis != "" {
		c.Synopsis = o.Synopsis
	}
	if o.Episodes != "" {
		c.Episodes = o.Episodes
	}
	if o.NoProgress {
		c.Progress = false
	}
	if o.Debug {
		c.Debug = true
	}
}

func normalizeDefaults(c *Config) {
	def := DefaultConfig()

	if c.WikiBase == "" {
		c.WikiBase = def.WikiBase
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	if c.Retries <= 0 {
		c.Retries = def.Retries
	}
	if c.Tables == "" {
		c.Tables = def.Tables
	}
	if c.Synopsis == "" {
		c.Synopsis = def.Synopsis
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := wikipedia.ParseTableMode(c.Tables); err != nil {
		return err
	}
	if _, err := wikipedia.ParseSynopsisMode(c.Synopsis); err != nil {
		return err
	}
	if _, err := series.ParseSelection(c.Episodes); err != nil {
		return err
	}
	return nil
}

// ExtractOptions returns the extraction settings. Call Validate first; an
// invalid value falls back to the default mode.
func (c *Config) ExtractOptions() wikipedia.Options {
	opts := wikipedia.DefaultOptions()
	if m, err := wikipedia.ParseTableMode(c.Tables); err == nil {
		opts.Tables = m
	}
	if m, err := wikipedia.ParseSynopsisMode(c.Synopsis); err == nil {
		opts.Synopsis = m
	}
	return opts
}

func (c *Config) Print(w io.Writer) {
	if len(c.Pages) > 0 {
		fmt.Fprintf(w, " -pages: %s\n", strings.Join(c.Pages, ", "))
	}
	fmt.Fprintf(w, " -wiki_base: %s\n", c.WikiBase)
	if c.Output != "" {
		fmt.Fprintf(w, " -output: %s\n", c.Output)
	}
	if c.SplitDir != "" {
		fmt.Fprintf(w, " -split_dir: %s\n", c.SplitDir)
	}
	fmt.Fprintf(w, " -format: %s\n", c.Format)
	fmt.Fprintf(w, " -workers: %d\n", c.Workers)
	fmt.Fprintf(w, " -timeout: %s\n", c.Timeout)
	fmt.Fprintf(w, " -retries: %d\n", c.Retries)
	if c.UserAgent != "" {
		fmt.Fprintf(w, " -user_agent: %s\n", c.UserAgent)
	}
	if c.Cloudflare {
		fmt.Fprintf(w, " -cloudflare: %t\n", c.Cloudflare)
	}
	fmt.Fprintf(w, " -tables: %s\n", c.Tables)
	fmt.Fprintf(w, " -synopsis: %s\n", c.Synopsis)
	if c.Episodes != "" {
		fmt.Fprintf(w, " -episodes: %s\n", c.Episodes)
	}
	if !c.Progress {
		fmt.Fprintf(w, " -progress: %t\n", c.Progress)
	}
	if c.Debug {
		fmt.Fprintf(w, " -debug: %t\n", c.Debug)
	}
}
