package lexer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rikchilvers/gledger/journal"
)

// Amount consumes an optional amount: an optional sign, an optional
// commodity on either side of the number, and a decimal quantity converted
// to fixed-point hundredths. Returns nil when the line holds no amount
// (the posting's amount was elided) and an error when an amount is present
// but malformed.
func Amount(c *Cursor) (*journal.Amount, error) {
	c.ConsumeSpace()
	if c.EOL() || IsCommentIndicator(c.Peek()) {
		return nil, nil
	}

	// A commodity is whatever non-digit, non-sign, non-comment text
	// surrounds the number.
	prefix := strings.TrimSpace(c.TakeWhile(isCommodityRune))

	if c.EOL() || IsCommentIndicator(c.Peek()) {
		if prefix != "" {
			return nil, fmt.Errorf("commodity %q with no quantity", prefix)
		}
		return nil, nil
	}

	quantity, err := fixedPointQuantity(c)
	if err != nil {
		return nil, err
	}

	commodity := prefix
	c.ConsumeSpace()
	suffix := strings.TrimSpace(c.TakeWhile(isCommodityRune))
	if commodity == "" {
		commodity = suffix
	}

	amount := journal.NewAmount(quantity, commodity)
	return &amount, nil
}

func isCommodityRune(r rune) bool {
	return !isDigit(r) && r != '+' && r != '-' && !IsCommentIndicator(r)
}

// fixedPointQuantity reads a signed decimal number and converts it to
// hundredths, rounding anything beyond two fractional digits.
func fixedPointQuantity(c *Cursor) (int64, error) {
	start := c.pos

	if r := c.Peek(); r == '+' || r == '-' {
		c.Advance()
	}
	if digits := c.TakeWhile(isDigit); digits == "" {
		return 0, fmt.Errorf("invalid quantity %q", c.Rest())
	}
	if c.Peek() == '.' {
		c.Advance()
		if digits := c.TakeWhile(isDigit); digits == "" {
			return 0, fmt.Errorf("invalid quantity %q", c.input[start:])
		}
	}

	// decimal keeps the conversion exact; scaling by 100 in floating
	// point would misround quantities like 8.20.
	d, err := decimal.NewFromString(c.input[start:c.pos])
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", c.input[start:c.pos], err)
	}
	return d.Shift(2).Round(0).IntPart(), nil
}
