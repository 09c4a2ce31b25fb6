package codesync

import "strings"

// FunctionLink is a deprecated API listed on the index page.
type FunctionLink struct {
	Name string
	URL  string // absolute
}

// Confidence describes how a replacement name was obtained.
type Confidence string

// Confidence levels for DeprecationRecord.Replacement.
const (
	// ConfidenceNone means no replacement was found.
	ConfidenceNone Confidence = ""
	// ConfidenceHigh means the replacement was read from an inline code span.
	ConfidenceHigh Confidence = "high"
	// ConfidenceLow means the replacement is the word following "Use" in
	// the notice text. It may be a verb, a type or a partial name.
	ConfidenceLow Confidence = "low"
)

// FailurePrefix starts the description of a record whose detail page could
// not be fetched or parsed.
const FailurePrefix = "Error extracting data: "

// DeprecationRecord maps a deprecated API to its documented replacement.
type DeprecationRecord struct {
	Deprecated  string     `json:"deprecated"`
	Replacement string     `json:"replacement"`
	Description string     `json:"description"`
	Confidence  Confidence `json:"confidence,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *DeprecationRecord) Validate() error {
	if r.Deprecated == "" {
		return Errorf(EINVALID, "deprecated API name required")
	}
	return nil
}

// HasReplacement reports whether a replacement name was found.
func (r *DeprecationRecord) HasReplacement() bool {
	return r.Replacement != ""
}

// Failed reports whether the record is a placeholder for a page that could
// not be processed.
func (r *DeprecationRecord) Failed() bool {
	return strings.HasPrefix(r.Description, FailurePrefix)
}
