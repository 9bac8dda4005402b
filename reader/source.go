package reader

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rikchilvers/gledger/journal"
	"github.com/rikchilvers/gledger/lexer"
)

// sourceState tracks where the state machine is within a multi-line
// logical record.
type sourceState uint8

const (
	stateNone sourceState = iota
	stateInTransaction
	stateInPeriodicTransaction
	stateInPosting
)

// itemKind tags the variants a source parser emits.
type itemKind uint8

const (
	itemTransaction itemKind = iota
	itemPeriodicTransaction
	itemInclude
	itemSourceComplete
)

// sourceItem is one parsed item streamed from a source parser to the
// orchestrator. A transaction item carries the transaction together with
// its postings; the transaction's posting indices are local (0..n-1) until
// the orchestrator rebases them into the shared postings vector.
type sourceItem struct {
	kind        itemKind
	transaction journal.Transaction
	postings    []journal.Posting
	periodic    journal.PeriodicTransaction

	// include carries the resolved path of an include directive, plus the
	// source and line the directive was found at for error attribution.
	include     string
	includedBy  string
	includeLine int
}

// result is what travels on the fan-in channel: a source item or the
// error that ended the source.
type result struct {
	item sourceItem
	err  *Error
}

// source parses a single journal file. All per-file state lives here; a
// source shares nothing with its sibling parsers.
type source struct {
	path       string // canonical path of the file
	state      sourceState
	lineNumber int

	// The in-flight records are owned exclusively by the parser until
	// emission, at which point they are transferred through the channel
	// by value.
	transaction *journal.Transaction
	postings    []journal.Posting
	posting     *journal.Posting
	periodic    *journal.PeriodicTransaction
}

func newSource(path string) *source {
	return &source{path: path}
}

// run parses the file line by line, sending each item (and at most one
// error) on items. It always finishes with a SourceComplete item unless
// the context is cancelled or an error ends the source first.
func (s *source) run(ctx context.Context, items chan<- result) {
	file, err := os.Open(s.path)
	if err != nil {
		s.send(ctx, items, result{err: &Error{Kind: IO, Path: s.path, Line: s.lineNumber, Err: err}})
		return
	}
	defer file.Close()

	lines := newLineReader(file)
	for {
		line, err := lines.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.send(ctx, items, result{err: &Error{Kind: IO, Path: s.path, Line: s.lineNumber, Err: err}})
			return
		}
		s.lineNumber++

		item, perr := s.parseLine(string(line))
		if perr != nil {
			s.send(ctx, items, result{err: perr})
			return
		}
		if item != nil && !s.send(ctx, items, result{item: *item}) {
			return
		}
	}

	// End of file closes any open record. The closing line is the one
	// that would have followed the last line of the file.
	item, perr := s.flush(s.lineNumber + 1)
	if perr != nil {
		s.send(ctx, items, result{err: perr})
		return
	}
	if item != nil && !s.send(ctx, items, result{item: *item}) {
		return
	}

	s.send(ctx, items, result{item: sourceItem{kind: itemSourceComplete}})
}

// send delivers r unless the orchestrator has cancelled the read.
func (s *source) send(ctx context.Context, items chan<- result, r result) bool {
	select {
	case items <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

// parseLine classifies a line by its first non-whitespace character and
// dispatches to the matching handler. At most one item is produced per
// line: closing a record emits it.
func (s *source) parseLine(line string) (*sourceItem, *Error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		item, err := s.flush(s.lineNumber)
		if err != nil {
			return nil, err
		}
		s.state = stateNone
		return item, nil
	}

	c := lexer.NewCursor(line)
	first := c.Peek()

	switch {
	case first >= '0' && first <= '9':
		return s.parseTransactionHeader(c)

	case first == ' ' || first == '\t':
		return nil, s.parseContinuation(c)

	case first == 'i':
		return s.parseInclude(c)

	case lexer.IsCommentIndicator(first):
		// File-level comment.
		return nil, nil

	case first == '~':
		return nil, s.parsePeriodicHeader(c)

	default:
		// Unrecognized lines are skipped without disturbing the state.
		return nil, nil
	}
}

// parseTransactionHeader closes any open record and opens a new
// transaction from the header line.
func (s *source) parseTransactionHeader(c *lexer.Cursor) (*sourceItem, *Error) {
	if s.state != stateNone && s.state != stateInPosting {
		return nil, &Error{Kind: UnexpectedItem, Path: s.path, Line: s.lineNumber, Item: TransactionHeaderLine}
	}

	date, _, err := lexer.Date(c.TakeToSpace())
	if err != nil {
		return nil, &Error{Kind: Parse, Path: s.path, Line: s.lineNumber, Item: TransactionHeaderLine}
	}

	transaction := journal.NewTransaction()
	transaction.Date = date

	c.ConsumeSpace()
	transaction.Status = lexer.Status(c)
	c.ConsumeSpace()
	transaction.Payee = lexer.Payee(c)
	if comment, ok := lexer.Comment(c); ok && comment != "" {
		transaction.HeaderComment = comment
	}

	item, ferr := s.flush(s.lineNumber)
	if ferr != nil {
		return nil, ferr
	}

	s.transaction = &transaction
	s.postings = nil
	s.state = stateInTransaction

	return item, nil
}

// parseContinuation handles indented lines: postings and the comments that
// trail a posting or a transaction header.
func (s *source) parseContinuation(c *lexer.Cursor) *Error {
	if indent := c.ConsumeSpace(); indent < 2 {
		return &Error{Kind: IncorrectFormatting, Path: s.path, Line: s.lineNumber, Description: "continuation lines need an indent of at least two"}
	}

	if comment, ok := lexer.Comment(c); ok {
		return s.attachComment(comment)
	}

	return s.parsePosting(c)
}

func (s *source) attachComment(comment string) *Error {
	switch s.state {
	case stateInPosting:
		if s.posting == nil {
			return &Error{Kind: MissingPosting, Path: s.path, Line: s.lineNumber}
		}
		s.posting.AddComment(comment)
		return nil

	case stateInTransaction:
		if s.periodic != nil {
			s.periodic.Transaction.AddComment(comment)
			return nil
		}
		if s.transaction == nil {
			return &Error{Kind: MissingTransaction, Path: s.path, Line: s.lineNumber}
		}
		s.transaction.AddComment(comment)
		return nil

	case stateInPeriodicTransaction:
		if s.periodic == nil {
			return &Error{Kind: MissingTransaction, Path: s.path, Line: s.lineNumber}
		}
		s.periodic.Transaction.AddComment(comment)
		return nil

	default:
		return &Error{Kind: UnexpectedItem, Path: s.path, Line: s.lineNumber, Item: CommentLine}
	}
}

func (s *source) parsePosting(c *lexer.Cursor) *Error {
	if s.state == stateNone {
		return &Error{Kind: UnexpectedItem, Path: s.path, Line: s.lineNumber, Item: PostingLine}
	}

	account := lexer.Account(c)
	if account == "" {
		return &Error{Kind: Parse, Path: s.path, Line: s.lineNumber, Item: PostingLine}
	}

	amount, err := lexer.Amount(c)
	if err != nil {
		return &Error{Kind: Parse, Path: s.path, Line: s.lineNumber, Item: PostingLine}
	}

	posting := journal.Posting{Account: account, Amount: amount}
	if comment, ok := lexer.Comment(c); ok && comment != "" {
		posting.AddComment(comment)
	}

	// The previous posting is only now added to its transaction; it was
	// held back in case comment lines followed it.
	if perr := s.addPendingPosting(s.lineNumber - 1); perr != nil {
		return perr
	}

	s.posting = &posting
	s.state = stateInPosting

	return nil
}

func (s *source) parseInclude(c *lexer.Cursor) (*sourceItem, *Error) {
	if s.state != stateNone {
		return nil, &Error{Kind: UnexpectedItem, Path: s.path, Line: s.lineNumber, Item: IncludeDirectiveLine}
	}

	path, err := lexer.Include(c)
	if err != nil {
		return nil, &Error{Kind: Parse, Path: s.path, Line: s.lineNumber, Item: IncludeDirectiveLine}
	}

	// Relative includes resolve against the directory of this file.
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(s.path), path)
	}
	return &sourceItem{
		kind:        itemInclude,
		include:     filepath.Clean(path),
		includedBy:  s.path,
		includeLine: s.lineNumber,
	}, nil
}

func (s *source) parsePeriodicHeader(c *lexer.Cursor) *Error {
	if s.state != stateNone {
		return &Error{Kind: UnexpectedItem, Path: s.path, Line: s.lineNumber, Item: PeriodicTransactionHeaderLine}
	}

	c.Advance() // the ~
	period, err := lexer.PeriodExpression(c.Rest())
	if err != nil {
		return &Error{Kind: Parse, Path: s.path, Line: s.lineNumber, Item: PeriodicTransactionHeaderLine}
	}

	s.periodic = &journal.PeriodicTransaction{
		Period:      period,
		Transaction: journal.NewTransaction(),
	}
	s.state = stateInPeriodicTransaction

	return nil
}

// addPendingPosting moves the held-back posting onto the open record,
// claiming the elision slot when the posting had no amount. line is the
// line the posting was read from.
func (s *source) addPendingPosting(line int) *Error {
	if s.posting == nil {
		return nil
	}

	transaction, postings := s.transaction, &s.postings
	if s.periodic != nil {
		transaction, postings = &s.periodic.Transaction, &s.periodic.Postings
	}

	if s.posting.Amount == nil {
		if transaction.ElidedIndex != journal.NoElidedPosting {
			return &Error{Kind: TwoPostingsWithElidedAmounts, Path: s.path, Line: line}
		}
		transaction.ElidedIndex = len(*postings)
	}

	transaction.Postings = append(transaction.Postings, len(*postings))
	*postings = append(*postings, *s.posting)
	s.posting = nil

	return nil
}

// flush closes the open record, if any, and returns it as an item. line is
// the line whose arrival triggered the close (one past the end of the
// file at EOF); balance errors are attributed to it.
func (s *source) flush(line int) (*sourceItem, *Error) {
	if err := s.addPendingPosting(line - 1); err != nil {
		return nil, err
	}

	if s.periodic != nil {
		// Template amounts stand; periodic transactions are not
		// balance-checked.
		item := &sourceItem{kind: itemPeriodicTransaction, periodic: *s.periodic}
		s.periodic = nil
		return item, nil
	}

	if s.transaction == nil {
		return nil, nil
	}

	if err := s.closeTransaction(line); err != nil {
		return nil, err
	}

	item := &sourceItem{kind: itemTransaction, transaction: *s.transaction, postings: s.postings}
	s.transaction = nil
	s.postings = nil

	return item, nil
}

// closeTransaction enforces the balance rule: posting amounts must sum to
// zero, with a single elided posting allowed to absorb the remainder.
func (s *source) closeTransaction(line int) *Error {
	sum := int64(0)
	for i := range s.postings {
		if amount := s.postings[i].Amount; amount != nil {
			sum += amount.Quantity
		}
	}

	if index := s.transaction.ElidedIndex; index != journal.NoElidedPosting {
		// The synthesized amount inherits the empty commodity.
		amount := journal.NewAmount(-sum, "")
		s.postings[index].Amount = &amount
		return nil
	}

	if sum != 0 {
		return &Error{Kind: TransactionDoesNotBalance, Path: s.path, Line: line}
	}

	return nil
}
