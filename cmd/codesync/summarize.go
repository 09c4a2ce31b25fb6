package main

import (
	"fmt"
	"os"

	"github.com/shaunakkarnik/codesync"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Summarizing contents of %s...\n", c.File)

	summary, err := deps.Analyzer.Summarize(deps.Ctx, string(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codesync.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Summary: %s\n", summary)
	return nil
}
