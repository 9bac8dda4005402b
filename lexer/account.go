package lexer

import "strings"

// Account consumes an account path. The path is terminated by two or more
// spaces, a tab, or a comment indicator; single internal spaces are part of
// the account name. Trailing spaces are trimmed.
func Account(c *Cursor) string {
	start := c.pos
	for !c.EOL() {
		r := c.Peek()
		if r == '\t' || IsCommentIndicator(r) {
			break
		}
		if r == ' ' {
			// A single space may separate words within an account name;
			// a second space or a tab ends the account.
			mark := c.pos
			c.Advance()
			if next := c.Peek(); next == ' ' || next == '\t' {
				c.pos = mark
				break
			}
			continue
		}
		c.Advance()
	}
	return strings.TrimRight(c.input[start:c.pos], " ")
}
