package mock

import (
	"context"

	"github.com/shaunakkarnik/codesync"
)

var _ codesync.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of codesync.Analyzer.
type Analyzer struct {
	AnalyzeFn   func(ctx context.Context, source string, records []*codesync.DeprecationRecord) (string, error)
	FixFn       func(ctx context.Context, source string, analysis string, records []*codesync.DeprecationRecord) (string, error)
	SummarizeFn func(ctx context.Context, text string) (string, error)
}

func (a *Analyzer) Analyze(ctx context.Context, source string, records []*codesync.DeprecationRecord) (string, error) {
	return a.AnalyzeFn(ctx, source, records)
}

func (a *Analyzer) Fix(ctx context.Context, source string, analysis string, records []*codesync.DeprecationRecord) (string, error) {
	return a.FixFn(ctx, source, analysis, records)
}

func (a *Analyzer) Summarize(ctx context.Context, text string) (string, error) {
	return a.SummarizeFn(ctx, text)
}
