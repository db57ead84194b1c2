package export

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// SanitizeTitle reduces a report title to the characters considered
// safe for filenames and download headers: letters, digits, spaces,
// hyphens and underscores. Trailing whitespace is dropped and the
// remaining spaces become underscores.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	clean := strings.TrimRight(b.String(), " ")
	return strings.ReplaceAll(clean, " ", "_")
}

// DownloadFilename derives the user-facing filename for an exported
// report: "<sanitized title>_pentest_report.<ext>".
func DownloadFilename(title string, format Format) string {
	base := SanitizeTitle(title)
	if base == "" {
		base = "rapor"
	}
	return fmt.Sprintf("%s_pentest_report.%s", base, format.Ext())
}

// ContentDisposition builds an attachment header value carrying both
// an ASCII-only fallback and the RFC 5987 UTF-8 form, so Turkish
// titles survive every client.
func ContentDisposition(filename string, format Format) string {
	ascii := asciiOnly(filename)
	if ascii == "" {
		ascii = "report." + format.Ext()
	}
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", ascii, url.PathEscape(filename))
}

func asciiOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UniqueArtifactName returns a per-invocation unique name for an
// on-disk artifact, so concurrent exports of the same report never
// collide.
func UniqueArtifactName(prefix string, format Format) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s.%s", prefix, suffix, format.Ext())
}
