// Package admission decides whether a decoded task may yield an image artifact.
package admission

import (
	"strings"
	"unicode/utf8"
)

// Reason names why a task was excluded. The empty Reason admits.
type Reason string

const (
	Admitted        Reason = ""
	ReasonSentinel  Reason = "text_model_sentinel"
	ReasonOversized Reason = "prompt_too_long"
)

// DefaultSentinels are prompt prefixes emitted by chat-style text models.
var DefaultSentinels = []string{"<|begin_of_text|>", "<|im_start|>", "<s>[INST]"}

// DefaultMaxPromptLength is the longest prompt, in characters, accepted as an image request.
const DefaultMaxPromptLength = 5000

// Policy holds text-model exclusion heuristics.
type Policy struct {
	sentinels []string
	maxLength int
}

// NewPolicy builds a Policy. Blank sentinels are ignored and a non-positive maxLength
// falls back to DefaultMaxPromptLength.
func NewPolicy(sentinels []string, maxLength int) *Policy {
	p := &Policy{maxLength: maxLength}
	if p.maxLength <= 0 {
		p.maxLength = DefaultMaxPromptLength
	}
	for _, s := range sentinels {
		if s = strings.TrimSpace(s); s != "" {
			p.sentinels = append(p.sentinels, s)
		}
	}
	return p
}

// Check classifies prompt. Leading whitespace is ignored when matching sentinels.
func (p *Policy) Check(prompt string) Reason {
	trimmed := strings.TrimLeft(prompt, " \t\r\n")
	for _, s := range p.sentinels {
		if strings.HasPrefix(trimmed, s) {
			return ReasonSentinel
		}
	}
	if utf8.RuneCountInString(prompt) > p.maxLength {
		return ReasonOversized
	}
	return Admitted
}
