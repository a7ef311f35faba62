package domain

import (
	"fmt"
	"strings"
)

// SplitMode controls how chained input is tokenized before being appended
// to a cl invocation. The original shell alias inherited whatever field
// splitting the host shell performed; here it is explicit and configurable.
type SplitMode string

// Supported split modes.
const (
	SplitWhitespace SplitMode = "whitespace"
	SplitLines      SplitMode = "lines"
)

// ParseSplitMode parses a split mode string.
func ParseSplitMode(s string) (SplitMode, error) {
	switch SplitMode(s) {
	case SplitWhitespace:
		return SplitWhitespace, nil
	case SplitLines:
		return SplitLines, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSplitMode, s)
}

// SplitFields tokenizes input according to the mode. Empty input yields
// no tokens; empty-string tokens are never produced.
func SplitFields(input string, mode SplitMode) []string {
	switch mode {
	case SplitLines:
		var tokens []string
		for _, line := range strings.Split(input, "\n") {
			line = strings.TrimRight(line, "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			tokens = append(tokens, line)
		}
		return tokens
	default:
		return strings.Fields(input)
	}
}
