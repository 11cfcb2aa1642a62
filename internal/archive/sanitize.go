package archive

import "strings"

// invalidFilenameChars are stripped from anything used as a path segment.
// The dot is in the set on purpose: extensions are appended separately and
// must never end up embedded mid-name.
const invalidFilenameChars = `/\?%*:|"<>.`

// Sanitize removes filesystem-hostile characters from name. Pure and
// idempotent; never fails.
func Sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidFilenameChars, r) {
			return -1
		}
		return r
	}, name)
}
