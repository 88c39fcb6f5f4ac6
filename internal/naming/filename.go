package naming

import (
	"regexp"
	"strings"
)

var hostileChars = regexp.MustCompile(`[\\/:*?"<>|]`)

// FallbackName is used when sanitization leaves nothing usable.
const FallbackName = "DOCUMENT"

// SanitizeFilename strips characters that are unsafe in file names on any
// platform and collapses the remaining whitespace. Never returns an empty
// string.
func SanitizeFilename(s string) string {
	s = hostileChars.ReplaceAllString(s, " ")
	s = strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
	if s == "" {
		return FallbackName
	}
	return s
}
