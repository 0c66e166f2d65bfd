// Package foto resolves listing photo references. The backend field
// may carry an absolute URL, a server-rooted path, a bare filename or
// a Windows-style fakepath left over from browser uploads.
package foto

import (
	"regexp"
	"strings"
)

// Placeholder is returned for empty photo references
const Placeholder = "https://via.placeholder.com/300x200?text=Sem+Imagem"

var (
	absoluteURL = regexp.MustCompile(`(?i)^https?://`)
	fakepath    = regexp.MustCompile(`(?i)^([A-Za-z]:\\)?fakepath\\`)
	driveLetter = regexp.MustCompile(`^[A-Za-z]:\\`)
)

// Resolve maps a raw photo reference to a displayable location.
// Absolute URLs and /-rooted paths pass through; bare filenames are
// re-rooted under /uploads/ after stripping Windows path prefixes.
func Resolve(raw string) string {
	f := strings.TrimSpace(raw)
	if f == "" {
		return Placeholder
	}
	if absoluteURL.MatchString(f) || strings.HasPrefix(f, "/") {
		return f
	}
	nome := fakepath.ReplaceAllString(f, "")
	nome = driveLetter.ReplaceAllString(nome, "")
	return "/uploads/" + nome
}
