// Package gemini implements codesync.Analyzer with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shaunakkarnik/codesync"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// SummaryMaxTokens bounds the length of a summary.
const SummaryMaxTokens = 256

// Ensure Analyzer implements codesync.Analyzer at compile time.
var _ codesync.Analyzer = (*Analyzer)(nil)

// Analyzer implements codesync.Analyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
	model  string
}

// NewAnalyzer creates a new Analyzer. An empty model selects DefaultModel.
func NewAnalyzer(client *genai.Client, model string) *Analyzer {
	if model == "" {
		model = DefaultModel
	}
	return &Analyzer{client: client, model: model}
}

// Analyze asks the model which lines of source use deprecated APIs.
func (a *Analyzer) Analyze(ctx context.Context, source string, records []*codesync.DeprecationRecord) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", codesync.Errorf(codesync.EINVALID, "source required")
	}
	known := BuildDeprecationContext(records)
	if known == "" {
		return "", codesync.Errorf(codesync.ENOTFOUND, "no deprecations with a known replacement")
	}

	return a.generate(ctx, BuildAnalyzeConfig(known), source)
}

// Fix asks the model for the complete source with deprecated usages replaced.
func (a *Analyzer) Fix(ctx context.Context, source string, analysis string, records []*codesync.DeprecationRecord) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", codesync.Errorf(codesync.EINVALID, "source required")
	}
	if strings.TrimSpace(analysis) == "" {
		return "", codesync.Errorf(codesync.EINVALID, "analysis required")
	}

	prompt := BuildFixPrompt(source, analysis, BuildDeprecationContext(records))
	fixed, err := a.generate(ctx, BuildFixConfig(), prompt)
	if err != nil {
		return "", err
	}
	return StripCodeFence(fixed), nil
}

// Summarize asks the model for a brief summary of text.
func (a *Analyzer) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", codesync.Errorf(codesync.EINVALID, "text required")
	}
	return a.generate(ctx, BuildSummarizeConfig(), BuildSummarizePrompt(text))
}

func (a *Analyzer) generate(ctx context.Context, config *genai.GenerateContentConfig, prompt string) (string, error) {
	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", codesync.Errorf(codesync.EINTERNAL, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", codesync.Errorf(codesync.EINTERNAL, "gemini returned empty response")
	}
	return text, nil
}

// BuildDeprecationContext lists each deprecation that has a replacement,
// one per line. Records without a replacement carry no actionable advice
// and are left out.
func BuildDeprecationContext(records []*codesync.DeprecationRecord) string {
	var sb strings.Builder
	for _, r := range records {
		if r == nil || !r.HasReplacement() {
			continue
		}
		fmt.Fprintf(&sb, "%s is deprecated, use %s instead", r.Deprecated, r.Replacement)
		if r.Confidence == codesync.ConfidenceLow {
			sb.WriteString(" (replacement inferred from prose, verify before applying)")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// BuildAnalyzeConfig returns the GenerateContentConfig for analysis calls.
func BuildAnalyzeConfig(known string) *genai.GenerateContentConfig {
	temp := float32(1.0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You help an iOS developer find and fix deprecated modifiers in Swift files. " +
					"Identify the lines that use deprecated APIs and work out the fix using the deprecations listed below. " +
					"Return the problematic code, including the view being modified and its other modifiers, " +
					"then state in one line which modifier to use instead. Do not include anything else and do not wrap the answer in a code fence.\n\n" +
					"Known deprecations:\n" + known,
			}},
		},
		Temperature:     &temp,
		MaxOutputTokens: 2048,
	}
}

// BuildFixConfig returns the GenerateContentConfig for fix calls.
func BuildFixConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You fix deprecated Swift code. Given a Swift file and an analysis of its deprecated elements, " +
					"return the complete fixed file with every deprecated element replaced by its current equivalent. " +
					"Return only the code, with no explanation and no code fence.",
			}},
		},
		Temperature:     &temp,
		MaxOutputTokens: 4096,
	}
}

// BuildSummarizeConfig returns the GenerateContentConfig for summarize calls.
// Output is capped so that summaries stay a few sentences long.
func BuildSummarizeConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		MaxOutputTokens: SummaryMaxTokens,
	}
}

// BuildSummarizePrompt builds the user prompt for a summarize call.
func BuildSummarizePrompt(text string) string {
	return "Summarize the following text:\n\n" + text
}

// BuildFixPrompt builds the user prompt for a fix call.
func BuildFixPrompt(source, analysis, known string) string {
	var sb strings.Builder
	if known != "" {
		sb.WriteString("<deprecations>\n")
		sb.WriteString(known)
		sb.WriteString("</deprecations>\n\n")
	}
	sb.WriteString("<analysis>\n")
	sb.WriteString(analysis)
	sb.WriteString("\n</analysis>\n\n")
	sb.WriteString("<source>\n")
	sb.WriteString(source)
	sb.WriteString("\n</source>")
	return sb.String()
}

var codeFence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\\n(.*?)\\n?```\\s*$")

// StripCodeFence removes a Markdown code fence wrapping the whole text.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if m := codeFence.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	return trimmed
}
