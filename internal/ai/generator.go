// Package ai defines the text-completion collaborator consumed by the domain
// agents. Implementations live in subpackages; tests substitute fakes.
package ai

import (
	"context"
	"strings"
)

// Options tune a single generation call.
type Options struct {
	// Temperature in [0,2]; zero means provider default.
	Temperature float32
	// MaxOutputTokens caps the response length; zero means provider default.
	MaxOutputTokens int32
	// JSON requests a response body parseable as a JSON object.
	JSON bool
}

// Generator produces a text completion for a prompt. Any failure is recovered
// by the calling agent with fallback data, never propagated further.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, opts Options) (string, error)
}

// ExtractJSON strips markdown code fences from a model response so the
// remainder can be passed to a JSON decoder.
func ExtractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
