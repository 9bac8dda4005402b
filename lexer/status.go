package lexer

import "github.com/rikchilvers/gledger/journal"

// IsStatusGlyph reports whether r is a transaction status glyph.
func IsStatusGlyph(r rune) bool {
	return r == '*' || r == '!'
}

// Status consumes a status glyph if one is present. Without a glyph the
// transaction has NoStatus.
func Status(c *Cursor) journal.Status {
	switch c.Peek() {
	case '*':
		c.Advance()
		return journal.Cleared
	case '!':
		c.Advance()
		return journal.Uncleared
	default:
		return journal.NoStatus
	}
}
