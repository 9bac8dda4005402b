package lexer

import "strings"

// Payee consumes the payee of a transaction header: everything up to a
// comment indicator or the end of the line, with surrounding whitespace
// trimmed. May be empty.
func Payee(c *Cursor) string {
	payee := c.TakeWhile(func(r rune) bool { return !IsCommentIndicator(r) })
	return strings.TrimSpace(payee)
}
