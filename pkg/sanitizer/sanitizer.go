package sanitizer

import (
	"strings"
	"unicode"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

// TrimAndNormalize trims leading/trailing whitespace and collapses internal
// whitespace runs to a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

var userPipeline = Pipeline{TrimAndNormalize}

var slotPipeline = Pipeline{TrimAndNormalize, strings.ToUpper}

// SanitizeUser normalizes a requester identifier.
func SanitizeUser(s string) string {
	return userPipeline.Apply(s)
}

// SanitizeSlot normalizes a parking slot label ("a1 " -> "A1").
func SanitizeSlot(s string) string {
	return slotPipeline.Apply(s)
}
