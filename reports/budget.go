package reports

import (
	"fmt"
	"io"

	"github.com/rikchilvers/gledger/reader"
)

// Budget lists every periodic transaction template with its recurrence and
// the template's posting lines. Instantiating the templates across a date
// range is left to a future expansion; the report shows what would recur.
func Budget(w io.Writer, j *reader.Journal) error {
	if len(j.PeriodicTransactions) == 0 {
		fmt.Fprintln(w, "No periodic transactions found")
		return nil
	}

	for i := range j.PeriodicTransactions {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, j.PeriodicTransactions[i].Render()); err != nil {
			return err
		}
	}
	return nil
}
