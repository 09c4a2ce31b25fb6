package mock

import "github.com/shaunakkarnik/codesync"

var _ codesync.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of codesync.Extractor.
type Extractor struct {
	ExtractLinksFn  func(html string, baseURL string) ([]codesync.FunctionLink, error)
	ExtractRecordFn func(name string, html string) (*codesync.DeprecationRecord, error)
}

func (e *Extractor) ExtractLinks(html string, baseURL string) ([]codesync.FunctionLink, error) {
	return e.ExtractLinksFn(html, baseURL)
}

func (e *Extractor) ExtractRecord(name string, html string) (*codesync.DeprecationRecord, error) {
	return e.ExtractRecordFn(name, html)
}
