// Package main provides the CLI entry point for extract-forge.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/lepinkainen/extract-forge/internal/config"
	"github.com/lepinkainen/extract-forge/pkg/cache"
	"github.com/lepinkainen/extract-forge/pkg/extract"
	"github.com/lepinkainen/extract-forge/pkg/identifiers"
	"github.com/lepinkainen/extract-forge/pkg/opengraph"
	"github.com/lepinkainen/extract-forge/pkg/preview"
)

// CLI structure
var CLI struct {
	Config string `help:"Configuration file path" default:"config.yaml"`
	Debug  bool   `help:"Enable debug logging" default:"false"`

	Extract struct {
		Text      string   `arg:"" optional:"" help:"Text to extract from (reads stdin if omitted)"`
		File      string   `help:"Read input from file instead of argument or stdin" short:"f"`
		HTML      bool     `help:"Treat input as HTML"`
		Kind      []string `help:"Limit extraction to specific kinds (repeatable)" short:"k"`
		OpenGraph bool     `help:"Fetch OpenGraph metadata for extracted links"`
	} `cmd:"extract" help:"Extract links, identifiers and other patterns from text."`

	Opengraph struct {
		URLs    []string `arg:"" help:"URLs to fetch OpenGraph metadata for"`
		NoCache bool     `help:"Bypass the metadata cache"`
	} `cmd:"opengraph" help:"Fetch OpenGraph metadata for URLs."`

	Preview struct {
		Text string `arg:"" optional:"" help:"Text to extract links from (reads stdin if omitted)"`
		File string `help:"Read input from file instead of argument or stdin" short:"f"`
		HTML bool   `help:"Treat input as HTML"`
	} `cmd:"preview" help:"Browse extracted links and their metadata interactively."`

	Cache struct {
		Stats   struct{} `cmd:"stats" help:"Show cache entry counts."`
		Cleanup struct{} `cmd:"cleanup" help:"Remove expired cache entries."`
	} `cmd:"cache" help:"Inspect and maintain the metadata cache."`
}

func main() {
	// Parse CLI with Kong YAML configuration file loading
	ctx := kong.Parse(&CLI,
		kong.Configuration(kongyaml.Loader, "config.yaml", "~/.extract-forge/config.yaml"),
	)

	// Configure logging level based on debug flag
	if CLI.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelWarn)
	}

	cfg, err := config.LoadConfig(CLI.Config)
	if err != nil {
		slog.Error("Failed to load configuration", "path", CLI.Config, "error", err)
		os.Exit(1)
	}

	switch ctx.Command() {
	case "extract", "extract <text>":
		runExtract(cfg)

	case "opengraph <urls>":
		runOpengraph(cfg)

	case "preview", "preview <text>":
		runPreview(cfg)

	case "cache stats":
		runCacheStats(cfg)

	case "cache cleanup":
		runCacheCleanup(cfg)

	default:
		panic(ctx.Command())
	}
}

func runExtract(cfg *config.Config) {
	text := readInput(CLI.Extract.Text, CLI.Extract.File)
	extractor := newExtractor(cfg, text, CLI.Extract.HTML)

	if CLI.Extract.OpenGraph {
		runExtractWithOpenGraph(cfg, extractor)
		return
	}

	var results map[string][]string
	if len(CLI.Extract.Kind) > 0 {
		results = make(map[string][]string, len(CLI.Extract.Kind))
		for _, kind := range CLI.Extract.Kind {
			if values := extractor.Extract(kind); len(values) > 0 {
				results[kind] = values
			}
		}
	} else {
		results = extractor.ExtractAll()
	}

	writeJSON(results)
}

func runExtractWithOpenGraph(cfg *config.Config, extractor *extract.Extractor) {
	fetcher, store := newCachedFetcher(cfg)
	defer closeCache(store)

	objects := extractor.LinkObjects(context.Background(), extract.LinkObjectOptions{
		WithOpenGraph: true,
		Fetcher:       fetcher,
	})

	writeJSON(objects)
}

func runOpengraph(cfg *config.Config) {
	var records []*opengraph.Record

	if CLI.Opengraph.NoCache {
		fetcher := opengraph.NewFetcher(fetcherConfig(cfg))
		for _, url := range CLI.Opengraph.URLs {
			records = append(records, fetcher.Fetch(context.Background(), url))
		}
	} else {
		fetcher, store := newCachedFetcher(cfg)
		defer closeCache(store)
		byURL := fetcher.FetchAll(context.Background(), CLI.Opengraph.URLs)
		for _, url := range CLI.Opengraph.URLs {
			if record, ok := byURL[url]; ok {
				records = append(records, record)
			}
		}
	}

	writeJSON(records)
}

func runPreview(cfg *config.Config) {
	text := readInput(CLI.Preview.Text, CLI.Preview.File)
	extractor := newExtractor(cfg, text, CLI.Preview.HTML)

	fetcher, store := newCachedFetcher(cfg)
	defer closeCache(store)

	objects := extractor.LinkObjects(context.Background(), extract.LinkObjectOptions{
		WithOpenGraph: true,
		Fetcher:       fetcher,
	})

	source := "stdin"
	if CLI.Preview.File != "" {
		source = CLI.Preview.File
	} else if CLI.Preview.Text != "" {
		source = "argument"
	}

	if err := preview.Run(objects, source); err != nil {
		slog.Error("Preview failed", "error", err)
		os.Exit(1)
	}
}

func runCacheStats(cfg *config.Config) {
	store := newCache(cfg)
	defer closeCache(store)

	stats, ok := store.(cache.StatsProvider)
	if !ok {
		fmt.Println("Cache backend does not report statistics")
		return
	}

	counts, err := stats.Stats()
	if err != nil {
		slog.Error("Failed to read cache statistics", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Entries: %d total, %d valid, %d expired\n",
		counts["total_entries"], counts["valid_entries"], counts["expired_entries"])
}

func runCacheCleanup(cfg *config.Config) {
	store := newCache(cfg)
	defer closeCache(store)

	cleaner, ok := store.(cache.CleanupProvider)
	if !ok {
		fmt.Println("Cache backend does not support cleanup")
		return
	}

	if err := cleaner.CleanupExpired(); err != nil {
		slog.Error("Cache cleanup failed", "error", err)
		os.Exit(1)
	}
	fmt.Println("Expired entries removed")
}

// newExtractor builds an extractor using the configured identifier table
func newExtractor(cfg *config.Config, text string, html bool) *extract.Extractor {
	table := identifiers.Default()
	if cfg.Identifiers.SpecFile != "" {
		loaded, err := identifiers.LoadFile(cfg.Identifiers.SpecFile)
		if err != nil {
			slog.Error("Failed to load identifier specs", "path", cfg.Identifiers.SpecFile, "error", err)
			os.Exit(1)
		}
		table = loaded
	}

	registry := extract.NewDefault(table)
	if html {
		return extract.NewHTMLExtractorWithRegistry(text, registry)
	}
	return extract.NewExtractorWithRegistry(text, registry)
}

func fetcherConfig(cfg *config.Config) *opengraph.Config {
	return &opengraph.Config{
		Timeout:      cfg.Timeout(),
		UserAgent:    cfg.OpenGraph.UserAgent,
		MaxRedirects: cfg.OpenGraph.MaxRedirects,
		PerHostDelay: cfg.PerHostDelay(),
	}
}

// newCache builds the configured cache backend
func newCache(cfg *config.Config) cache.Cache {
	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewMemory()
	default:
		store, err := cache.NewSQLite(cfg.Cache.Path)
		if err != nil {
			slog.Error("Failed to open cache database", "path", cfg.Cache.Path, "error", err)
			os.Exit(1)
		}
		return store
	}
}

func newCachedFetcher(cfg *config.Config) (*opengraph.CachedFetcher, cache.Cache) {
	store := newCache(cfg)
	fetcher := opengraph.NewCachedFetcher(
		opengraph.NewFetcher(fetcherConfig(cfg)),
		store,
		opengraph.CacheOptions{
			TTL:       cfg.CacheTTL(),
			KeyPrefix: cfg.Cache.KeyPrefix,
		},
	)
	return fetcher, store
}

func closeCache(store cache.Cache) {
	if closer, ok := store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("Failed to close cache", "error", err)
		}
	}
}

// readInput resolves the input text from argument, file or stdin
func readInput(arg, file string) string {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			slog.Error("Failed to read input file", "path", file, "error", err)
			os.Exit(1)
		}
		return string(data)
	}
	if arg != "" {
		return arg
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		slog.Error("Failed to read stdin", "error", err)
		os.Exit(1)
	}
	return string(data)
}

func writeJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.Error("Failed to encode output", "error", err)
		os.Exit(1)
	}
}
