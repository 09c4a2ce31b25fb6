package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/shaunakkarnik/codesync"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	info, err := os.Stat(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	source, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	records, err := deps.RecordReader.ReadRecords(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codesync.ErrorMessage(err))
		if codesync.ErrorCode(err) == codesync.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Hint: Run 'codesync scrape' first")
		}
		return err
	}

	analysis, err := deps.Analyzer.Analyze(deps.Ctx, string(source), records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codesync.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, analysis)

	if !c.Yes && !confirm(deps, "Apply changes? (yes/no) ") {
		fmt.Fprintln(deps.Stdout, "Changes not applied.")
		return nil
	}

	fixed, err := deps.Analyzer.Fix(deps.Ctx, string(source), analysis, records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codesync.ErrorMessage(err))
		return err
	}

	backup := c.File + ".bak"
	if err := os.WriteFile(backup, source, info.Mode().Perm()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: writing backup: %v\n", err)
		return err
	}
	if !strings.HasSuffix(fixed, "\n") {
		fixed += "\n"
	}
	if err := os.WriteFile(c.File, []byte(fixed), info.Mode().Perm()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: writing %s: %v\n", c.File, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Applied changes to %s (backup at %s)\n", c.File, backup)
	return nil
}

// confirm prompts on stdout and reads one answer from stdin.
// Only "yes" or "y" counts as agreement.
func confirm(deps *Dependencies, prompt string) bool {
	fmt.Fprint(deps.Stdout, prompt)
	if deps.Stdin == nil {
		return false
	}
	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "yes", "y":
		return true
	default:
		return false
	}
}
