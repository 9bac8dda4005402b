package reports

import (
	"io"
	"strings"

	"github.com/rikchilvers/gledger/journal"
	"github.com/rikchilvers/gledger/reader"
	"github.com/rikchilvers/gledger/tree"
)

// Balance aggregates posting quantities per account and displays the
// account tree with each node's rolled-up amount. A posting contributes to
// its own account and to every parent, so a parent shows the sum of its
// subtree.
func Balance(w io.Writer, j *reader.Journal) error {
	t := tree.New[journal.Amount]()

	for i := range j.Postings {
		posting := &j.Postings[i]
		if posting.Amount == nil {
			continue
		}
		index := t.AddPath(strings.Split(posting.Account, ":"))
		err := t.WalkAncestors(index, func(node *tree.Node[journal.Amount]) {
			node.Value.Quantity += posting.Amount.Quantity
			if node.Value.Commodity == "" {
				node.Value.Commodity = posting.Amount.Commodity
			}
		})
		if err != nil {
			return err
		}
	}

	return t.Display(w, tree.Root, func(node *tree.Node[journal.Amount]) (string, bool) {
		return node.Value.String(), true
	})
}
