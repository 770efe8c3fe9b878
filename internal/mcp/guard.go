package mcp

import (
	"context"

	"github.com/mdombrov-33/go-promptguard/detector"
)

// promptGuard screens note text before it is returned to an MCP client.
// Pattern + statistical detectors only, no LLM judge, so every call stays
// sub-millisecond.
var promptGuard = detector.New(
	detector.WithThreshold(0.6), // stricter than default 0.7 — note files are untrusted content
	detector.WithAllDetectors(),
	detector.WithMaxInputLength(100_000),
)

const guardStub = "[notetidy] note content withheld: possible prompt-injection detected in the file"

// guardText returns the text unchanged when it is safe, or a warning stub
// when the injection detector flags it.
func guardText(text string) string {
	if len(text) == 0 {
		return text
	}
	result := promptGuard.Detect(context.Background(), text)
	if !result.Safe {
		return guardStub
	}
	return text
}
