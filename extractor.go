package codesync

// Extractor turns rendered documentation markup into structured data.
type Extractor interface {
	// ExtractLinks returns the deprecated API links on an index page in
	// document order. Anchors without an href or a name are skipped.
	// Relative URLs are resolved against the origin of baseURL.
	ExtractLinks(html string, baseURL string) ([]FunctionLink, error)

	// ExtractRecord locates the deprecation notice on a detail page and
	// returns a record for the named API. A page without a notice yields a
	// record with empty replacement and description, not an error.
	ExtractRecord(name string, html string) (*DeprecationRecord, error)
}
