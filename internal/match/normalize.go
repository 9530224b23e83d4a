package match

import "strings"

// Normalize canonicalizes a raw identity token (username or email) into its
// comparable form: lower-cased and trimmed of surrounding whitespace. It is
// a pure function with no failure mode; an empty input maps to an empty key,
// which callers must treat as non-matchable.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// localPart returns the text before the first '@' of an email address, or
// the input unchanged when it contains no '@'.
func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
