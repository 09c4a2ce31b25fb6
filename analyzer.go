package codesync

import "context"

// Analyzer reviews Swift source code for deprecated API usage and
// summarizes arbitrary text files.
type Analyzer interface {
	// Analyze reports the lines of source that use deprecated APIs and
	// the replacement to use instead. The records provide the known
	// deprecations. Returns ENOTFOUND if no record names a replacement.
	Analyze(ctx context.Context, source string, records []*DeprecationRecord) (string, error)

	// Fix returns the complete source with deprecated usages replaced,
	// guided by an analysis previously returned by Analyze.
	Fix(ctx context.Context, source string, analysis string, records []*DeprecationRecord) (string, error)

	// Summarize returns a short summary of text.
	Summarize(ctx context.Context, text string) (string, error)
}
