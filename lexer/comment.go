package lexer

import "strings"

// IsCommentIndicator reports whether r starts a comment. Comments extend to
// the end of the line.
func IsCommentIndicator(r rune) bool {
	return r == ';' || r == '#'
}

// Comment consumes a comment if the cursor is at a comment indicator and
// returns its text with surrounding whitespace trimmed. The second return
// is false when no comment was present. A present-but-empty comment
// returns ("", true).
func Comment(c *Cursor) (string, bool) {
	if !IsCommentIndicator(c.Peek()) {
		return "", false
	}
	c.Advance()
	return strings.TrimSpace(c.TakeToEnd()), true
}
