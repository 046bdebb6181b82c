package httpapi

import "regexp"

// sanitizePatterns strip details an error message might otherwise leak to a
// caller: slash-separated paths ending in a .go file, SQL text from a
// SELECT/INSERT/UPDATE/DELETE/DROP keyword to the end of the line, and
// connection strings whose scheme names a database driver. Only the matched
// text is replaced; other paths, bare driver names, stack frames and
// credentials are not detected.
// Ambient concern carried from the original's input-sanitization intent
// even though its actual middleware is out of scope here — see DESIGN.md.
var sanitizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(/[\w.\-]+)+\.go\b`),
	regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|DROP)\b.*`),
	regexp.MustCompile(`(?i)\b(postgres|pgx|sqlite|mongo|redis)://\S+`),
}

const redacted = "[redacted]"

// sanitize strips patterns sanitizePatterns matches from msg before it
// reaches a client-facing error envelope.
func sanitize(msg string) string {
	out := msg
	for _, p := range sanitizePatterns {
		out = p.ReplaceAllString(out, redacted)
	}
	return out
}
