package services

import (
	"regexp"
	"strings"
	"unicode"
)

// plateTokenRegex matches tokens that look like a plate: 5 to 8 characters
// of letters, digits and at most one separator, with at least one letter and
// one digit overall.
var plateTokenRegex = regexp.MustCompile(`^[A-Z0-9]{2,4}[- ]?[A-Z0-9]{2,4}$`)

// ExtractPlate picks the most plate-like token out of raw OCR text. It
// prefers the longest candidate that mixes letters and digits, normalizes it
// to uppercase without separators, and returns "" when no candidate is found.
func ExtractPlate(text string) string {
	var best string

	for _, line := range strings.Split(text, "\n") {
		for _, token := range strings.Fields(line) {
			candidate := normalizePlateToken(token)
			if candidate == "" {
				continue
			}
			if len(candidate) > len(best) {
				best = candidate
			}
		}
	}

	return best
}

func normalizePlateToken(token string) string {
	token = strings.ToUpper(strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}))

	if len(token) < 5 || len(token) > 9 {
		return ""
	}
	if !plateTokenRegex.MatchString(token) {
		return ""
	}

	hasLetter := strings.IndexFunc(token, unicode.IsLetter) >= 0
	hasDigit := strings.IndexFunc(token, unicode.IsDigit) >= 0
	if !hasLetter || !hasDigit {
		return ""
	}

	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, token)
}
