package naming

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Form-field labels that the layout patterns sometimes swallow along with
// the name.
var stopwords = map[string]struct{}{
	"CARGO":      {},
	"ENDERECO":   {},
	"ATIVIDADE":  {},
	"EMPREGADOR": {},
	"CIDADE":     {},
	"RUA":        {},
	"ASSINATURA": {},
	"CTPS":       {},
	"CNPS":       {},
	"CNPJ":       {},
	"CGC":        {},
}

var nonLetter = regexp.MustCompile(`[^A-ZÀ-Ý ]`)

const maxNameTokens = 6

// SanitizeTokens reduces an extracted name to its plausible name tokens:
// non-letters become spaces, tokens shorter than two letters and known
// form-field labels are dropped, and the result is capped at six tokens.
// Returns false when fewer than two tokens survive, which callers treat
// as "no name found".
func SanitizeTokens(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	filtered := nonLetter.ReplaceAllString(name, " ")

	var tokens []string
	for _, t := range strings.Fields(filtered) {
		if utf8.RuneCountInString(t) < 2 {
			continue
		}
		if _, stop := stopwords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}

	if len(tokens) < 2 {
		return "", false
	}
	if len(tokens) > maxNameTokens {
		tokens = tokens[:maxNameTokens]
	}
	return strings.Join(tokens, " "), true
}
