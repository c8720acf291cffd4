package archetype

import "strings"

// Slugify derives a stable, URL-safe identifier from an archetype name:
// lowercase, runs of non-alphanumeric characters collapsed to a single
// hyphen, edges trimmed. The slug is the only identifier used for idempotency
// checks and reversal, so it must be unique per archetype a character carries.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
