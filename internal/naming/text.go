// Package naming derives artifact names from timesheet page text.
//
// Brazilian timesheet forms carry the employee name next to a registration
// number, in one of a few known layouts. The extraction pipeline is:
// CleanText normalizes the raw page text, ExtractName matches the layout
// patterns, SanitizeTokens strips form-field noise, and SanitizeFilename
// makes the result safe as a file name.
package naming

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// Layout patterns for the classic filled forms. The name sits between the
// registration number and the next field label; the trailing alternation
// anchors the end of the capture.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`LOCALIZAÇÃO:\s*\d+\s+([A-ZÀ-Ý ]{5,}?)\s+(?:\d{5,}|CTPS:|MENSALISTA|CATEGORIA:|HORÁRIOS:)`),
	regexp.MustCompile(`EMPREGADO:\s*\d+\s+([A-ZÀ-Ý ]{5,}?)\s+(?:CARGO:|LOCALIZAÇÃO:|CTPS:|CATEGORIA:)`),
	regexp.MustCompile(`EMPREGADO:\s*([A-ZÀ-Ý ]{5,})`),
}

// Patterns for the blank ("zeroed") form layout, where only the CADASTRO
// header row carries the name.
var blankFormPatterns = []*regexp.Regexp{
	regexp.MustCompile(`CADASTRO:\s*\d+\s+([A-ZÀ-Ý ]{5,}?)\s+CNPJ`),
}

// CleanText normalizes raw page text for pattern matching: hyphenated line
// breaks are joined, whitespace runs collapse to single spaces, and the
// result is uppercased.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "-\n", " ")
	text = whitespace.ReplaceAllString(text, " ")
	return strings.ToUpper(strings.TrimSpace(text))
}

// ExtractName finds the employee name in cleaned page text. The classic
// patterns are tried first, then the blank-form patterns, and finally the
// blank-form patterns against the normalized raw text, for documents whose
// extraction produces unusual line breaks. Returns false when no layout
// matches.
func ExtractName(clean, raw string) (string, bool) {
	for _, p := range namePatterns {
		if m := p.FindStringSubmatch(clean); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}

	for _, p := range blankFormPatterns {
		if m := p.FindStringSubmatch(clean); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}

	if raw != "" {
		rawUp := strings.ToUpper(strings.TrimSpace(whitespace.ReplaceAllString(raw, " ")))
		for _, p := range blankFormPatterns {
			if m := p.FindStringSubmatch(rawUp); m != nil {
				return strings.TrimSpace(m[1]), true
			}
		}
	}

	return "", false
}
