package guard

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// NotBlank reports an issue when s is empty or only whitespace.
func NotBlank(s, name string) error {
	if strings.TrimSpace(s) == "" {
		return Issues{issueFor(name, CodeBlank, nil)}
	}
	return nil
}

// LenInRange reports an issue unless the rune length of s is within
// [min, max].
func LenInRange(s, name string, min, max int) error {
	n := utf8.RuneCountInString(s)
	if n < min {
		return Issues{issueFor(name, CodeTooShort, map[string]any{"min": min, "got": n})}
	}
	if n > max {
		return Issues{issueFor(name, CodeTooLong, map[string]any{"max": max, "got": n})}
	}
	return nil
}

// Match reports an issue unless s matches re.
func Match(s, name string, re *regexp.Regexp) error {
	if !re.MatchString(s) {
		return Issues{issueFor(name, CodePattern, map[string]any{"pattern": re.String()})}
	}
	return nil
}
