package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/shaunakkarnik/codesync"
	"github.com/shaunakkarnik/codesync/fs"
	"github.com/shaunakkarnik/codesync/gemini"
	"github.com/shaunakkarnik/codesync/goquery"
	cshttp "github.com/shaunakkarnik/codesync/http"
	"github.com/shaunakkarnik/codesync/rod"
	"github.com/shaunakkarnik/codesync/scrape"
	csslog "github.com/shaunakkarnik/codesync/slog"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for interactive prompts. Set before calling Run().
	Stdin io.Reader

	// Environment lookup, os.Getenv by default.
	Getenv func(string) string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:  os.Stdin,
		Getenv: os.Getenv,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("codesync"),
		kong.Description("Scrape deprecated SwiftUI APIs and review Swift sources against them"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"index_url":     scrape.DefaultIndexURL,
			"output_path":   fs.DefaultPath,
			"fetch_timeout": rod.DefaultFetchTimeout.String(),
			"delay":         scrape.DefaultDelay.String(),
			"jitter":        scrape.DefaultJitter.String(),
			"model":         gemini.DefaultModel,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	command, _, _ := strings.Cut(kongCtx.Command(), " ")
	switch command {
	case "scrape":
		closeFn, err := m.wireScrape(deps, &cli.Scrape)
		if err != nil {
			return err
		}
		defer closeFn()
	case "analyze":
		deps.RecordReader = fs.NewRecordStore(cli.Analyze.Records)
		if err := m.wireAnalyzer(ctx, deps, cli.Analyze.Model, cli.Analyze.Verbose); err != nil {
			return err
		}
	case "summarize":
		if err := m.wireAnalyzer(ctx, deps, cli.Summarize.Model, cli.Summarize.Verbose); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wireScrape sets up the fetcher, extractor, pacer and output store for
// the scrape command. The returned function releases the fetcher.
func (m *Main) wireScrape(deps *Dependencies, c *ScrapeCmd) (func(), error) {
	var fetcher codesync.Fetcher
	if c.Static {
		fetcher = cshttp.NewFetcher(cshttp.WithTimeout(c.Timeout))
	} else {
		rodFetcher, err := rod.NewFetcher(
			rod.WithFetchTimeout(c.Timeout),
			rod.WithManagerOptions(rod.WithStealth(c.Stealth)),
		)
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed, or use --static")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	}

	var extractor codesync.Extractor = goquery.NewExtractor()
	var records codesync.RecordWriter = fs.NewRecordStore(c.Output)

	if c.Verbose {
		fetcher = csslog.NewLoggingFetcher(fetcher, deps.Logger)
		extractor = csslog.NewLoggingExtractor(extractor, deps.Logger)
		records = csslog.NewLoggingRecordWriter(records, deps.Logger)
	}

	deps.Fetcher = fetcher
	deps.Extractor = extractor
	deps.Pacer = scrape.NewJitterPacer(c.Delay, c.Jitter)
	deps.Records = records

	return func() { _ = fetcher.Close() }, nil
}

// wireAnalyzer connects to Gemini for the analyze and summarize commands.
func (m *Main) wireAnalyzer(ctx context.Context, deps *Dependencies, model string, verbose bool) error {
	apiKey := m.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(deps.Stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	var analyzer codesync.Analyzer = gemini.NewAnalyzer(client, model)
	if verbose {
		analyzer = csslog.NewLoggingAnalyzer(analyzer, deps.Logger)
	}
	deps.Analyzer = analyzer
	return nil
}
