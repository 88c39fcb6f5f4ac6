package naming

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var codePattern = regexp.MustCompile(`\b(\d{3,})\b`)

const (
	// GenericArchiveName is used when there are too many inputs to derive
	// a short name from.
	GenericArchiveName = "renamed_documents.zip"

	// FallbackArchiveName is used when no numeric codes appear in the
	// input file names.
	FallbackArchiveName = "split_documents.zip"

	maxArchiveBase = 60
)

// ArchiveName derives the bundle file name from the numeric project codes
// found in the input file names. More than five inputs gets a short
// generic name; otherwise the distinct codes are sorted numerically and
// joined, capped at 60 characters.
func ArchiveName(filenames []string) string {
	if len(filenames) > 5 {
		return GenericArchiveName
	}

	seen := map[string]struct{}{}
	var codes []string
	for _, name := range filenames {
		base := strings.ToUpper(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
		for _, m := range codePattern.FindAllString(base, -1) {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			codes = append(codes, m)
		}
	}

	if len(codes) == 0 {
		return FallbackArchiveName
	}

	sort.Slice(codes, func(i, j int) bool {
		a, _ := strconv.ParseInt(codes[i], 10, 64)
		b, _ := strconv.ParseInt(codes[j], 10, 64)
		if a != b {
			return a < b
		}
		return codes[i] < codes[j]
	})

	base := strings.Join(codes, "_&_")
	if len(base) >= maxArchiveBase {
		base = base[:maxArchiveBase-3] + "..."
	}
	return base + ".zip"
}
