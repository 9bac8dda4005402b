package reports

import (
	"fmt"
	"io"
	"time"

	"github.com/rikchilvers/gledger/reader"
)

// Stats summarizes a journal: the files read, the date range covered,
// transaction and posting counts, and unique account and payee counts.
func Stats(w io.Writer, j *reader.Journal) error {
	var first, last time.Time
	payees := map[string]struct{}{}
	accounts := map[string]struct{}{}

	for i := range j.Transactions {
		t := &j.Transactions[i]
		if first.IsZero() || t.Date.Before(first) {
			first = t.Date
		}
		if last.IsZero() || t.Date.After(last) {
			last = t.Date
		}
		if t.Payee != "" {
			payees[t.Payee] = struct{}{}
		}
	}
	for i := range j.Postings {
		accounts[j.Postings[i].Account] = struct{}{}
	}

	fmt.Fprintf(w, "Transactions found in %d files\n", len(j.Sources))
	for _, source := range j.Sources {
		fmt.Fprintf(w, "  %s\n", source)
	}

	if len(j.Transactions) == 0 {
		fmt.Fprintln(w, "Transactions:\t\t0")
		return nil
	}

	days := last.Sub(first).Hours()/24 + 1
	fmt.Fprintf(w, "First transaction:\t%s\n", first.Format("2006-01-02"))
	fmt.Fprintf(w, "Last transaction:\t%s\n", last.Format("2006-01-02"))
	fmt.Fprintf(w, "Time period:\t\t%.0f days\n", days)
	fmt.Fprintf(w, "Transactions:\t\t%d (%.1f per day)\n", len(j.Transactions), float64(len(j.Transactions))/days)
	fmt.Fprintf(w, "Postings:\t\t%d\n", len(j.Postings))
	fmt.Fprintf(w, "Unique accounts:\t%d\n", len(accounts))
	fmt.Fprintf(w, "Unique payees:\t\t%d\n", len(payees))

	return nil
}
