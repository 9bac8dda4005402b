package journal

import (
	"strings"
	"time"
)

// PeriodInterval is the recurrence grid of a periodic transaction.
type PeriodInterval uint8

const (
	NoInterval PeriodInterval = iota
	Budget
	Daily
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (i PeriodInterval) String() string {
	switch i {
	case Budget:
		return "budget"
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return ""
	}
}

// Period is a parsed recurrence specification from a ~-prefixed period
// expression: an optional interval, optional start and end dates, and a
// frequency multiplier (unused by the reader, retained for instantiation).
type Period struct {
	StartDate *time.Time
	EndDate   *time.Time
	Interval  PeriodInterval
	Frequency int
}

// String renders the period the way it is written in a journal, e.g.
// "weekly from 2009-01-01 to 2009-04-01".
func (p Period) String() string {
	var parts []string
	if p.Interval != NoInterval {
		parts = append(parts, p.Interval.String())
	}
	if p.StartDate != nil {
		parts = append(parts, "from", p.StartDate.Format("2006-01-02"))
	}
	if p.EndDate != nil {
		parts = append(parts, "to", p.EndDate.Format("2006-01-02"))
	}
	return strings.Join(parts, " ")
}

// PeriodicTransaction pairs a period with a template transaction. The
// template's postings are private to the record; they are parsed with the
// same rules as ordinary postings but are not balance-checked and do not
// join the postings vector of the read result until instantiated.
type PeriodicTransaction struct {
	Period      Period
	Transaction Transaction
	Postings    []Posting
}

// Render writes the periodic transaction's canonical journal form.
func (pt *PeriodicTransaction) Render() string {
	var sb strings.Builder
	sb.WriteString("~ ")
	sb.WriteString(pt.Period.String())
	sb.WriteByte('\n')

	for _, comment := range pt.Transaction.Comments {
		sb.WriteString("  ; ")
		sb.WriteString(comment)
		sb.WriteByte('\n')
	}
	for i, index := range pt.Transaction.Postings {
		p := pt.Postings[index]
		p.render(&sb, i == pt.Transaction.ElidedIndex)
	}
	return sb.String()
}
