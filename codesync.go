// Package codesync scrapes Apple developer documentation for deprecated APIs
// and their documented replacements, and uses the result to review Swift
// source files for deprecated calls.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, gemini/).
package codesync
