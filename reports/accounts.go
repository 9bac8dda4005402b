package reports

import (
	"io"
	"strings"

	"github.com/rikchilvers/gledger/reader"
	"github.com/rikchilvers/gledger/tree"
)

// Accounts displays the account hierarchy built from every posting's
// account path, one segment per level, ordered alphabetically.
func Accounts(w io.Writer, j *reader.Journal) error {
	t := tree.New[struct{}]()
	for i := range j.Postings {
		t.AddPath(strings.Split(j.Postings[i].Account, ":"))
	}

	return t.Display(w, tree.Root, func(*tree.Node[struct{}]) (string, bool) {
		return "", false
	})
}
