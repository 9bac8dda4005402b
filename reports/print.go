// Package reports builds the plain-text reports offered by the command
// line: print, accounts, balance, budget and stats. Each report is a thin
// transformation over the vectors a read produces.
package reports

import (
	"fmt"
	"io"

	"github.com/rikchilvers/gledger/reader"
)

// Print renders every transaction in output order in its canonical journal
// form, separated by blank lines.
func Print(w io.Writer, j *reader.Journal) error {
	for i := range j.Transactions {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, j.Transactions[i].Render(j.Postings)); err != nil {
			return err
		}
	}
	return nil
}
