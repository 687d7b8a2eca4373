// Package naming derives output file paths for extracted clips.
package naming

import (
	"path/filepath"
	"strings"
	"unicode"
)

// OutputPath builds the destination file for a clip:
// <outDir>/<prefix><sanitized name>.<container>.
func OutputPath(outDir, prefix, name, container string) string {
	return filepath.Join(outDir, prefix+SanitizeName(name)+"."+container)
}

// SanitizeName makes a match name safe to use as a file name. Control
// characters are dropped, path separators and other shell-hostile runes
// become underscores. Match names come from an external export, so they
// are untrusted.
func SanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsControl(r):
			// dropped
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.' || r == ' ':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" {
		return "unnamed"
	}
	return cleaned
}
