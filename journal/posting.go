package journal

import "strings"

// Posting is one movement line within a transaction, assigning a signed
// amount to a colon-separated account path. A posting with a nil Amount was
// elided in the source; the reader synthesizes its amount when the owning
// transaction is closed.
type Posting struct {
	Account  string
	Amount   *Amount
	Comments []string

	// Transaction is the index of the owning transaction in the read
	// result. Postings refer to their transaction by index rather than by
	// pointer; both vectors are assembled (and, when sorting, relinked)
	// before either is handed to a consumer.
	Transaction int
}

// AddComment attaches a comment line to the posting.
func (p *Posting) AddComment(comment string) {
	p.Comments = append(p.Comments, comment)
}

// render writes the posting's canonical journal form. An elided posting is
// written without its amount so that rendering and re-reading round-trips.
func (p *Posting) render(sb *strings.Builder, elided bool) {
	sb.WriteString("  ")
	sb.WriteString(p.Account)
	if p.Amount != nil && !elided {
		sb.WriteString("  ")
		sb.WriteString(p.Amount.String())
	}
	sb.WriteByte('\n')
	for _, comment := range p.Comments {
		sb.WriteString("    ; ")
		sb.WriteString(comment)
		sb.WriteByte('\n')
	}
}
