// Package reader turns one or more journal files into an ordered, validated
// collection of transactions and postings.
//
// A Reader drives one source parser per file. Parsers run concurrently and
// stream their items back over a single channel; the Reader consumes the
// stream, spawns a new parser for every include directive it has not seen
// before, and assembles the flat transaction and posting vectors the
// reports are built on. The first error ends the read.
//
// Example usage:
//
//	r := reader.New(reader.WithSortedTransactions())
//	j, err := r.Read(ctx, "main.journal")
package reader

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/rikchilvers/gledger/journal"
	"github.com/rikchilvers/gledger/telemetry"
)

// Journal is the result of a successful read. Transactions and postings
// refer to each other by index into these two vectors; the indices are
// valid from the moment the Journal is returned.
type Journal struct {
	Transactions         []journal.Transaction
	Postings             []journal.Posting
	PeriodicTransactions []journal.PeriodicTransaction

	// Sources lists the canonical path of every file read, root first,
	// then in discovery order.
	Sources []string
}

// config holds the recognized read options.
type config struct {
	shouldSort       bool
	readTransactions bool
	readPostings     bool
}

// Option configures a Reader.
type Option func(*config)

// WithSortedTransactions sorts transactions by date once all sources have
// completed, with file-arrival order as the stable tiebreak, and relinks
// every posting's owner index to the transaction's new position. Without
// it, transactions stay in arrival order and the initial indices stand.
func WithSortedTransactions() Option {
	return func(c *config) {
		c.shouldSort = true
	}
}

// WithoutTransactions drops transactions from the result. Postings are
// still parsed and balance-checked.
func WithoutTransactions() Option {
	return func(c *config) {
		c.readTransactions = false
	}
}

// WithoutPostings drops postings from the result.
func WithoutPostings() Option {
	return func(c *config) {
		c.readPostings = false
	}
}

// Reader orchestrates the source parsers for a journal and its includes.
type Reader struct {
	config config
}

// New creates a Reader with the given options.
func New(opts ...Option) *Reader {
	r := &Reader{
		config: config{
			readTransactions: true,
			readPostings:     true,
		},
	}
	for _, opt := range opts {
		opt(&r.config)
	}
	return r
}

// Read parses the journal rooted at path, following includes. It returns
// the first error any parser reports; remaining items are drained and
// discarded.
func (r *Reader) Read(ctx context.Context, path string) (*Journal, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	timer := telemetry.FromContext(ctx).Start(fmt.Sprintf("read %s", filepath.Base(root)))
	defer timer.End()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	items := make(chan result)

	spawn := func(p string) {
		logrus.WithField("source", p).Debug("spawning source parser")
		g.Go(func() error {
			newSource(p).run(gctx, items)
			return nil
		})
	}

	// The visited set is seeded with the root; re-inserting any canonical
	// path fails the read.
	visited := map[string]bool{root: true}
	spawn(root)

	go func() {
		_ = g.Wait()
		close(items)
	}()

	j := &Journal{Sources: []string{root}}
	var firstErr *Error

	for res := range items {
		if firstErr != nil {
			// Draining after failure; workers exit on the cancelled
			// context.
			continue
		}
		if res.err != nil {
			firstErr = res.err
			cancel()
			continue
		}

		switch res.item.kind {
		case itemTransaction:
			r.collect(j, res.item)

		case itemPeriodicTransaction:
			j.PeriodicTransactions = append(j.PeriodicTransactions, res.item.periodic)

		case itemInclude:
			include := res.item.include
			if visited[include] {
				firstErr = &Error{Kind: DuplicateSource, Path: res.item.includedBy, Line: res.item.includeLine, Description: include}
				cancel()
				continue
			}
			visited[include] = true
			j.Sources = append(j.Sources, include)
			spawn(include)

		case itemSourceComplete:
			logrus.Debug("source parser complete")
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}

	if r.config.shouldSort && r.config.readTransactions {
		sortTimer := timer.Child("sort transactions")
		r.sortAndRelink(j)
		sortTimer.End()
	}

	logrus.WithFields(logrus.Fields{
		"sources":      len(j.Sources),
		"transactions": len(j.Transactions),
		"postings":     len(j.Postings),
	}).Debug("read complete")

	return j, nil
}

// collect rebases a transaction's local posting indices into the shared
// postings vector and stamps each posting with its owner's index.
func (r *Reader) collect(j *Journal, item sourceItem) {
	if !r.config.readTransactions && !r.config.readPostings {
		return
	}

	base := len(j.Postings)
	owner := len(j.Transactions)
	transaction := item.transaction

	for i := range item.postings {
		item.postings[i].Transaction = owner
		transaction.Postings[i] = base + i
	}

	if r.config.readPostings {
		j.Postings = append(j.Postings, item.postings...)
	} else {
		transaction.Postings = nil
	}
	if r.config.readTransactions {
		j.Transactions = append(j.Transactions, transaction)
	}
}

// sortAndRelink stably sorts transactions by date and rewrites each
// posting's owner index to the transaction's new position. Posting indices
// within transactions are unaffected; the postings vector never moves.
func (r *Reader) sortAndRelink(j *Journal) {
	order := make([]int, len(j.Transactions))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return j.Transactions[a].Date.Compare(j.Transactions[b].Date)
	})

	sorted := make([]journal.Transaction, len(j.Transactions))
	newIndex := make([]int, len(j.Transactions))
	for to, from := range order {
		sorted[to] = j.Transactions[from]
		newIndex[from] = to
	}
	j.Transactions = sorted

	for i := range j.Postings {
		j.Postings[i].Transaction = newIndex[j.Postings[i].Transaction]
	}
}
