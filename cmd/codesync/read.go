package main

import (
	"fmt"
	"os"
)

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Contents of %s:\n\n", c.File)
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}
