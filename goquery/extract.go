// Package goquery extracts deprecated API links and deprecation notices
// from Apple documentation markup using CSS selectors.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shaunakkarnik/codesync"
)

// Default selectors for the deprecated APIs index page.
const (
	DefaultLinkSelector = "a.deprecated-link"
	DefaultNameSelector = ".name"
)

// Strategy locates a candidate deprecation notice on a detail page.
// Selector matches the text blocks to test, in document order.
type Strategy struct {
	Name     string
	Selector string
}

// DefaultStrategies returns the notice strategies in priority order.
// The label paragraph of an aside ("Deprecated") is excluded so that the
// paragraph carrying the replacement is the one selected.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: "notice", Selector: ".deprecated-notice p"},
		{Name: "summary", Selector: ".deprecation-summary p"},
		{Name: "aside", Selector: "aside.deprecated p:not(.label), .aside.deprecated p:not(.label)"},
		{Name: "deprecated", Selector: ".deprecated p:not(.label)"},
	}
}

// usePattern captures the token after "Use", stopping at whitespace or a period.
var usePattern = regexp.MustCompile(`\bUse\s+([^\s.]+)`)

// Ensure Extractor implements codesync.Extractor at compile time.
var _ codesync.Extractor = (*Extractor)(nil)

// Extractor implements codesync.Extractor for Apple documentation pages.
// Extractor holds no mutable state and is safe for concurrent use.
type Extractor struct {
	linkSelector string
	nameSelector string
	strategies   []Strategy
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLinkSelector sets the selector for deprecated API anchors on the index page.
func WithLinkSelector(selector string) Option {
	return func(e *Extractor) {
		e.linkSelector = selector
	}
}

// WithNameSelector sets the selector, relative to each anchor, of the element
// holding the API name.
func WithNameSelector(selector string) Option {
	return func(e *Extractor) {
		e.nameSelector = selector
	}
}

// WithStrategies replaces the notice strategies. Order is priority order.
func WithStrategies(strategies []Strategy) Option {
	return func(e *Extractor) {
		e.strategies = strategies
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		linkSelector: DefaultLinkSelector,
		nameSelector: DefaultNameSelector,
		strategies:   DefaultStrategies(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Strategies returns the notice strategies in priority order.
func (e *Extractor) Strategies() []Strategy {
	return append([]Strategy(nil), e.strategies...)
}

// ExtractLinks returns one FunctionLink per deprecated API anchor, in
// document order. Duplicates are kept.
func (e *Extractor) ExtractLinks(html string, baseURL string) ([]codesync.FunctionLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, codesync.Errorf(codesync.EINVALID, "invalid base URL: %q", baseURL)
	}
	origin := &url.URL{Scheme: base.Scheme, Host: base.Host}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, codesync.Errorf(codesync.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []codesync.FunctionLink
	doc.Find(e.linkSelector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || strings.TrimSpace(href) == "" {
			return
		}

		nameSel := sel.Find(e.nameSelector).First()
		if nameSel.Length() == 0 {
			return
		}
		name := strings.TrimSpace(nameSel.Text())
		if name == "" {
			return
		}

		resolved := resolveURL(origin, href)
		if resolved == "" {
			return
		}

		links = append(links, codesync.FunctionLink{
			Name: name,
			URL:  resolved,
		})
	})

	return links, nil
}

// ExtractRecord applies the strategies in order and builds a record from
// the first qualifying text block.
func (e *Extractor) ExtractRecord(name string, html string) (*codesync.DeprecationRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, codesync.Errorf(codesync.EINVALID, "failed to parse HTML: %v", err)
	}

	record := &codesync.DeprecationRecord{Deprecated: name}

	block, ok := e.findNotice(doc)
	if !ok {
		return record, nil
	}

	record.Description = normalizeText(block.Text())
	record.Replacement, record.Confidence = findReplacement(block, record.Description)
	return record, nil
}

// findNotice returns the first block, by strategy priority then document
// order, whose text mentions a deprecation.
func (e *Extractor) findNotice(doc *goquery.Document) (*goquery.Selection, bool) {
	for _, strategy := range e.strategies {
		var found *goquery.Selection
		doc.Find(strategy.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if isNoticeText(sel.Text()) {
				found = sel
				return false
			}
			return true
		})
		if found != nil {
			return found, true
		}
	}
	return nil, false
}

// findReplacement prefers an inline code span and falls back to the word
// following "Use" in the description.
func findReplacement(block *goquery.Selection, description string) (string, codesync.Confidence) {
	if code := strings.TrimSpace(block.Find("code").First().Text()); code != "" {
		return code, codesync.ConfidenceHigh
	}
	if m := usePattern.FindStringSubmatch(description); m != nil {
		return m[1], codesync.ConfidenceLow
	}
	return "", codesync.ConfidenceNone
}

// isNoticeText reports whether text reads like a deprecation notice.
func isNoticeText(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "deprecated") || strings.Contains(lower, "use")
}

// normalizeText trims text and collapses runs of whitespace left by
// rendered markup into single spaces.
func normalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// resolveURL resolves href against the site origin.
// Returns empty string if the href cannot be parsed or is not HTTP.
func resolveURL(origin *url.URL, href string) string {
	if isNonHTTPLink(href) {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return origin.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
