package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/shaunakkarnik/codesync"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   codesync.Fetcher
	Extractor codesync.Extractor
	Pacer     codesync.Pacer
	Records   codesync.RecordWriter

	RecordReader codesync.RecordReader
	Analyzer     codesync.Analyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape    ScrapeCmd    `cmd:"" default:"withargs" help:"Scrape deprecated APIs and their replacements (default)"`
	Analyze   AnalyzeCmd   `cmd:"" help:"Review a Swift file for deprecated API usage"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize a file with Gemini"`
	Read      ReadCmd      `cmd:"" help:"Print a file"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL     string        `default:"${index_url}" env:"CODESYNC_URL" help:"Index page listing deprecated APIs"`
	Output  string        `short:"o" default:"${output_path}" env:"CODESYNC_OUTPUT" help:"Output JSON file"`
	Timeout time.Duration `short:"t" default:"${fetch_timeout}" help:"Fetch timeout per page"`
	Delay   time.Duration `default:"${delay}" help:"Base delay between detail pages"`
	Jitter  time.Duration `default:"${jitter}" help:"Upper bound of random delay added to the base delay"`
	Static  bool          `help:"Fetch with plain HTTP instead of a headless browser"`
	Stealth bool          `help:"Hide headless browser fingerprints"`
	Verbose bool          `short:"v" help:"Log every fetch and extraction"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	File    string `arg:"" type:"existingfile" help:"Swift source file to review"`
	Records string `default:"${output_path}" help:"Scraped deprecations JSON file"`
	Model   string `default:"${model}" help:"Gemini model"`
	Yes     bool   `short:"y" help:"Apply the fix without asking"`
	Verbose bool   `short:"v" help:"Log model calls"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	File    string `arg:"" type:"existingfile" help:"File to summarize"`
	Model   string `default:"${model}" help:"Gemini model"`
	Verbose bool   `short:"v" help:"Log model calls"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	File string `arg:"" type:"existingfile" help:"File to print"`
}
