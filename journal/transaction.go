package journal

import (
	"strings"
	"time"
)

// NoElidedPosting marks a transaction in which every posting carried an
// explicit amount.
const NoElidedPosting = -1

// Transaction is a dated, balanced group of postings sharing a payee and
// status. Postings holds indices into the postings vector of the read
// result; within a transaction the indices are contiguous and unique.
type Transaction struct {
	Date          time.Time
	Payee         string
	Status        Status
	HeaderComment string
	Postings      []int
	Comments      []string

	// ElidedIndex is the position, within Postings, of the single posting
	// whose amount was omitted in the source, or NoElidedPosting.
	ElidedIndex int
}

// NewTransaction returns an empty transaction with no elided posting.
func NewTransaction() Transaction {
	return Transaction{
		Status:      NoStatus,
		ElidedIndex: NoElidedPosting,
	}
}

// AddComment attaches a body comment to the transaction.
func (t *Transaction) AddComment(comment string) {
	t.Comments = append(t.Comments, comment)
}

// Render writes the transaction's canonical journal form, resolving its
// posting indices against the given postings vector. Parsing the rendered
// text yields an equal transaction.
func (t *Transaction) Render(postings []Posting) string {
	var sb strings.Builder

	sb.WriteString(t.Date.Format("2006-01-02"))
	if t.Status != NoStatus {
		sb.WriteByte(' ')
		sb.WriteString(t.Status.String())
	}
	if t.Payee != "" {
		sb.WriteByte(' ')
		sb.WriteString(t.Payee)
	}
	if t.HeaderComment != "" {
		sb.WriteString(" ; ")
		sb.WriteString(t.HeaderComment)
	}
	sb.WriteByte('\n')

	for _, comment := range t.Comments {
		sb.WriteString("  ; ")
		sb.WriteString(comment)
		sb.WriteByte('\n')
	}

	for i, index := range t.Postings {
		p := postings[index]
		p.render(&sb, i == t.ElidedIndex)
	}

	return sb.String()
}
