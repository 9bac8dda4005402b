package lexer

import (
	"fmt"
	"strings"
	"time"

	"github.com/rikchilvers/gledger/journal"
)

// direction is the in/from/to phrase of a period expression.
type direction uint8

const (
	directionIn direction = iota
	directionFrom
	directionTo
)

var directions = map[string]direction{
	"in":   directionIn,
	"from": directionFrom,
	"to":   directionTo,
}

var intervals = map[string]journal.PeriodInterval{
	"daily":     journal.Daily,
	"weekly":    journal.Weekly,
	"monthly":   journal.Monthly,
	"quarterly": journal.Quarterly,
	"yearly":    journal.Yearly,
}

// PeriodExpression parses the body of a ~-prefixed periodic transaction
// header: an optional interval keyword, then up to two dates, each
// optionally preceded by a direction. A lone date with no direction is
// read as "in DATE", spanning the whole year, month or day the date named.
func PeriodExpression(input string) (journal.Period, error) {
	tokens := strings.Fields(input)
	pos := 0

	var period journal.Period

	if pos < len(tokens) {
		if interval, ok := intervals[tokens[pos]]; ok {
			period.Interval = interval
			pos++
		}
	}

	dir1, ok1 := takeDirection(tokens, &pos)
	date1, prec1, err := takeDate(tokens, &pos)
	if err != nil {
		return period, err
	}
	dir2, ok2 := takeDirection(tokens, &pos)
	date2, _, err := takeDate(tokens, &pos)
	if err != nil {
		return period, err
	}

	if pos != len(tokens) {
		return period, fmt.Errorf("unexpected %q in period expression", tokens[pos])
	}

	switch {
	case date1 == nil && date2 == nil:
		if ok1 || ok2 {
			return period, fmt.Errorf("period direction with no date")
		}

	case date1 != nil && date2 != nil:
		if (ok1 && dir1 != directionFrom) || (ok2 && dir2 != directionTo) {
			return period, fmt.Errorf("period with two dates must run from..to")
		}
		period.StartDate = date1
		period.EndDate = date2

	default:
		// Exactly one date. Both directions around a single date is
		// unresolvable, as is a direction that only follows the date.
		if ok1 && ok2 {
			return period, fmt.Errorf("period with one date has two directions")
		}
		if ok2 {
			// A direction can only precede its date.
			return period, fmt.Errorf("period direction with no date")
		}
		date, prec := date1, prec1
		if date == nil {
			date = date2
		}
		switch {
		case !ok1: // bare date reads as "in DATE"
			period.StartDate = date
			end := finalDate(*date, prec)
			period.EndDate = &end
		case dir1 == directionIn:
			period.StartDate = date
			end := finalDate(*date, prec)
			period.EndDate = &end
		case dir1 == directionFrom:
			period.StartDate = date
		case dir1 == directionTo:
			period.EndDate = date
		}
	}

	return period, nil
}

func takeDirection(tokens []string, pos *int) (direction, bool) {
	if *pos >= len(tokens) {
		return 0, false
	}
	dir, ok := directions[tokens[*pos]]
	if !ok {
		return 0, false
	}
	*pos++
	return dir, true
}

func takeDate(tokens []string, pos *int) (*time.Time, DatePrecision, error) {
	if *pos >= len(tokens) {
		return nil, PrecisionYear, nil
	}
	token := tokens[*pos]
	if !isDigit(rune(token[0])) {
		return nil, PrecisionYear, nil
	}
	date, precision, err := Date(token)
	if err != nil {
		return nil, precision, err
	}
	*pos++
	return &date, precision, nil
}

// finalDate is the inclusive end of the period a date literal implies: the
// last day of its year, of its month, or the date itself.
func finalDate(date time.Time, precision DatePrecision) time.Time {
	switch precision {
	case PrecisionYear:
		return time.Date(date.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	case PrecisionMonth:
		return time.Date(date.Year(), date.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	default:
		return date
	}
}
