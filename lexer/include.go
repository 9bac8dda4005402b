package lexer

import (
	"fmt"
	"strings"
)

// Include parses an include directive: the literal "include" followed by
// whitespace and a path running to the end of the line.
func Include(c *Cursor) (string, error) {
	keyword := c.TakeToSpace()
	if keyword != "include" {
		return "", fmt.Errorf("expected include directive, got %q", keyword)
	}
	c.ConsumeSpace()
	path := strings.TrimSpace(c.TakeToEnd())
	if path == "" {
		return "", fmt.Errorf("include directive with no path")
	}
	return path, nil
}
