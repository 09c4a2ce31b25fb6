package goquery_test

import (
	"testing"

	"github.com/shaunakkarnik/codesync"
	"github.com/shaunakkarnik/codesync/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appleBase = "https://developer.apple.com/documentation/swiftui/view-deprecated"

func TestExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns links in document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<main>
	<a class="deprecated-link" href="/documentation/swiftui/view/foregroundcolor(_:)"><span class="name">foregroundColor(_:)</span></a>
	<a class="deprecated-link" href="/documentation/swiftui/view/edgesignoringsafearea(_:)"><span class="name">edgesIgnoringSafeArea(_:)</span></a>
	<a class="deprecated-link" href="/documentation/swiftui/view/onchange(of:perform:)"><span class="name">onChange(of:perform:)</span></a>
</main>
</body>
</html>`

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks(html, appleBase)

		require.NoError(t, err)
		require.Len(t, links, 3)
		assert.Equal(t, codesync.FunctionLink{
			Name: "foregroundColor(_:)",
			URL:  "https://developer.apple.com/documentation/swiftui/view/foregroundcolor(_:)",
		}, links[0])
		assert.Equal(t, "edgesIgnoringSafeArea(_:)", links[1].Name)
		assert.Equal(t, "onChange(of:perform:)", links[2].Name)
	})

	t.Run("skips anchor without href", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a class="deprecated-link"><span class="name">noHref()</span></a>
<a class="deprecated-link" href=""><span class="name">emptyHref()</span></a>
<a class="deprecated-link" href="/documentation/swiftui/view/kept"><span class="name">kept()</span></a>
</body></html>`

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks(html, appleBase)

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "kept()", links[0].Name)
	})

	t.Run("skips anchor without name element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a class="deprecated-link" href="/documentation/swiftui/view/a">no name element</a>
<a class="deprecated-link" href="/documentation/swiftui/view/b"><span class="name">   </span></a>
<a class="deprecated-link" href="/documentation/swiftui/view/c"><span class="name">c()</span></a>
</body></html>`

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks(html, appleBase)

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://developer.apple.com/documentation/swiftui/view/c", links[0].URL)
	})

	t.Run("ignores anchors not flagged as deprecated", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav><a href="/documentation/swiftui"><span class="name">SwiftUI</span></a></nav>
<a class="deprecated-link" href="/documentation/swiftui/view/a"><span class="name">a()</span></a>
</body></html>`

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks(html, appleBase)

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "a()", links[0].Name)
	})

	t.Run("keeps duplicate links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a class="deprecated-link" href="/documentation/swiftui/view/a"><span class="name">a()</span></a>
<a class="deprecated-link" href="/documentation/swiftui/view/a"><span class="name">a()</span></a>
</body></html>`

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks(html, appleBase)

		require.NoError(t, err)
		assert.Len(t, links, 2)
	})

	t.Run("resolves relative links against the site origin", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a class="deprecated-link" href="documentation/swiftui/view/a"><span class="name">a()</span></a>
<a class="deprecated-link" href="https://developer.apple.com/documentation/uikit/b"><span class="name">b()</span></a>
</body></html>`

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks(html, appleBase)

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "https://developer.apple.com/documentation/swiftui/view/a", links[0].URL)
		assert.Equal(t, "https://developer.apple.com/documentation/uikit/b", links[1].URL)
	})

	t.Run("skips non-HTTP links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a class="deprecated-link" href="javascript:void(0)"><span class="name">js()</span></a>
<a class="deprecated-link" href="mailto:docs@example.com"><span class="name">mail()</span></a>
</body></html>`

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks(html, appleBase)

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("uses configured selectors", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a class="link deprecated" href="/documentation/swiftui/view/a"><code class="decorated-title">a()</code></a>
</body></html>`

		e := goquery.NewExtractor(
			goquery.WithLinkSelector("a.link.deprecated"),
			goquery.WithNameSelector("code.decorated-title"),
		)
		links, err := e.ExtractLinks(html, appleBase)

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "a()", links[0].Name)
	})

	t.Run("returns error for invalid base URL", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		_, err := e.ExtractLinks("<html></html>", "not a url")

		require.Error(t, err)
		assert.Equal(t, codesync.EINVALID, codesync.ErrorCode(err))
	})

	t.Run("returns no links for empty page", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		links, err := e.ExtractLinks("", appleBase)

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

func TestExtractor_ExtractRecord(t *testing.T) {
	t.Parallel()

	t.Run("reads replacement from inline code in deprecated notice", func(t *testing.T) {
		t.Parallel()

		html := `<div class="deprecated-notice"><p>This method is deprecated. Use <code>onChange(of:perform:)</code> instead.</p></div>`

		e := goquery.NewExtractor()
		record, err := e.ExtractRecord("onChange(of:)", html)

		require.NoError(t, err)
		assert.Equal(t, &codesync.DeprecationRecord{
			Deprecated:  "onChange(of:)",
			Replacement: "onChange(of:perform:)",
			Description: "This method is deprecated. Use onChange(of:perform:) instead.",
			Confidence:  codesync.ConfidenceHigh,
		}, record)
	})

	t.Run("keeps inline code text verbatim apart from trimming", func(t *testing.T) {
		t.Parallel()

		html := `<div class="deprecated-notice"><p>Deprecated. Use <code>  ForegroundStyle(_:)  </code>.</p></div>`

		e := goquery.NewExtractor()
		record, err := e.ExtractRecord("foregroundColor(_:)", html)

		require.NoError(t, err)
		assert.Equal(t, "ForegroundStyle(_:)", record.Replacement)
	})

	t.Run("falls back to word after Use when no inline code", func(t *testing.T) {
		t.Parallel()

		html := `<div class="deprecated-notice"><p>Use foregroundStyle(_:) instead.</p></div>`

		e := goquery.NewExtractor()
		record, err := e.ExtractRecord("foregroundColor(_:)", html)

		require.NoError(t, err)
		assert.Equal(t, "foregroundStyle(_:)", record.Replacement)
		assert.Equal(t, codesync.ConfidenceLow, record.Confidence)
	})

	t.Run("pattern match stops at a period", func(t *testing.T) {
		t.Parallel()

		html := `<div class="deprecated-notice"><p>This is deprecated. Use ignoresSafeArea.</p></div>`

		e := goquery.NewExtractor()
		record, err := e.ExtractRecord("edgesIgnoringSafeArea(_:)", html)

		require.NoError(t, err)
		assert.Equal(t, "ignoresSafeArea", record.Replacement)
	})

	t.Run("qualifying notice without replacement leaves replacement empty", func(t *testing.T) {
		t.Parallel()

		html := `<div class="deprecated-notice"><p>This API is deprecated and has no replacement.</p></div>`

		e := goquery.NewExtractor()
		record, err := e.ExtractRecord("old()", html)

		require.NoError(t, err)
		assert.Equal(t, "This API is deprecated and has no replacement.", record.Description)
		assert.Empty(t, record.Replacement)
		assert.Equal(t, codesync.ConfidenceNone, record.Confidence)
	})

	t.Run("use inside another word still qualifies a block", func(t *testing.T) {
		t.Parallel()

		// "Because" contains "use", so the block is taken as the notice
		html := `<div class="deprecated-notice"><p>Because of things, see docs.</p></div>`

		e := goquery.NewExtractor()
		record, err := e.ExtractRecord("old()", html)

		require.NoError(t, err)
		assert.Equal(t, "Because of things, see docs.", record.Description)
		assert.Empty(t, record.Replacement)
		assert.Equal(t, codesync.ConfidenceNone, record.Confidence)
	})

	t.Run("returns empty fields when no strategy matches", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>Use this view to show text.</p></main></body></html>`

		e := goquery.NewExtractor()
		record, err := e.ExtractRecord("Text", html)

		require.NoError(t, err)
		assert.Equal(t, &codesync.DeprecationRecord{Deprecated: "Text"}, record)
	})

	t.Run("skips non-qualifying blocks within a strategy", func(t *testing.T) {
		t.Parallel()

		html := `<div class="deprecated-notice">
	<p>iOS 13.0–17.0</p>
	<p>Deprecated. Use <code>onChange(of:initial:_:)</code> instead.</p>
</div>`

		e := goquery.NewExtractor()
		record, err := e.ExtractRecord("onChange(of:perform:)", html)

		require.NoError(t, err)
		assert.Equal(t, "onChange(of:initial:_:)", record.Replacement)
	})

	t.Run("earlier strategy wins over later strategy", func(t *testing.T) {
		t.Parallel()

		// The aside appears first in the document but has lower priority.
		html := `<html><body>
<aside class="deprecated"><p class="label">Deprecated</p><p>Use <code>fromAside()</code> instead.</p></aside>
<div class="deprecated-notice"><p>Deprecated. Use <code>fromNotice()</code> instead.</p></div>
</body></html>`

		e := goquery.NewExtractor()
		record, err := e.ExtractRecord("x()", html)

		require.NoError(t, err)
		assert.Equal(t, "fromNotice()", record.Replacement)
	})

	t.Run("falls through to aside strategy skipping the label", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="aside deprecated">
	<p class="label">Deprecated</p>
	<p>Use <a href="/documentation/swiftui/view/foregroundstyle(_:)"><code>foregroundStyle(_:)</code></a> instead.</p>
</div>
</body></html>`

		e := goquery.NewExtractor()
		record, err := e.ExtractRecord("foregroundColor(_:)", html)

		require.NoError(t, err)
		assert.Equal(t, "foregroundStyle(_:)", record.Replacement)
		assert.Equal(t, "Use foregroundStyle(_:) instead.", record.Description)
	})

	t.Run("matches deprecation summary strategy", func(t *testing.T) {
		t.Parallel()

		html := `<div class="deprecation-summary"><p>Use <code>NavigationStack</code> or <code>NavigationSplitView</code> instead.</p></div>`

		e := goquery.NewExtractor()
		record, err := e.ExtractRecord("NavigationView", html)

		require.NoError(t, err)
		assert.Equal(t, "NavigationStack", record.Replacement)
	})

	t.Run("collapses whitespace in description", func(t *testing.T) {
		t.Parallel()

		html := `<div class="deprecated-notice"><p>
			This method is   deprecated.
			Use <code>task(priority:_:)</code> instead.
		</p></div>`

		e := goquery.NewExtractor()
		record, err := e.ExtractRecord("onAppear", html)

		require.NoError(t, err)
		assert.Equal(t, "This method is deprecated. Use task(priority:_:) instead.", record.Description)
	})

	t.Run("uses configured strategies", func(t *testing.T) {
		t.Parallel()

		html := `<section id="notice"><p>Deprecated. Use <code>custom()</code>.</p></section>`

		e := goquery.NewExtractor(goquery.WithStrategies([]goquery.Strategy{
			{Name: "custom", Selector: "#notice p"},
		}))
		record, err := e.ExtractRecord("x()", html)

		require.NoError(t, err)
		assert.Equal(t, "custom()", record.Replacement)
	})

	t.Run("is deterministic for identical input", func(t *testing.T) {
		t.Parallel()

		html := `<div class="deprecated-notice"><p>Deprecated. Use bar instead.</p></div>`

		e := goquery.NewExtractor()
		first, err := e.ExtractRecord("foo", html)
		require.NoError(t, err)
		second, err := e.ExtractRecord("foo", html)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestDefaultStrategies_Order(t *testing.T) {
	t.Parallel()

	names := make([]string, 0)
	for _, s := range goquery.NewExtractor().Strategies() {
		names = append(names, s.Name)
	}

	assert.Equal(t, []string{"notice", "summary", "aside", "deprecated"}, names)
}
