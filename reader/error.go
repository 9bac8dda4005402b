package reader

import "fmt"

// LineKind names the kind of line a tokenizer or the state machine was
// handling when it failed.
type LineKind uint8

const (
	UnknownLine LineKind = iota
	CommentLine
	IncludeDirectiveLine
	TransactionHeaderLine
	PeriodicTransactionHeaderLine
	PostingLine
)

func (k LineKind) String() string {
	switch k {
	case CommentLine:
		return "comment"
	case IncludeDirectiveLine:
		return "include directive"
	case TransactionHeaderLine:
		return "transaction header"
	case PeriodicTransactionHeaderLine:
		return "periodic transaction header"
	case PostingLine:
		return "posting"
	default:
		return "unknown line type"
	}
}

// ErrorKind enumerates every way a read can fail. The taxonomy is closed;
// reports receive either a fully valid journal or one of these.
type ErrorKind uint8

const (
	IO ErrorKind = iota
	IncorrectFormatting
	Parse
	UnexpectedItem
	MissingPosting
	MissingTransaction
	TwoPostingsWithElidedAmounts
	TransactionDoesNotBalance
	DuplicateSource
)

// Error locates a read failure at a 1-based line of a source file.
// Balance errors are attributed to the line just after the transaction's
// last line, because the failure is only observable at close.
type Error struct {
	Kind ErrorKind
	Path string
	Line int

	// Item is set for Parse and UnexpectedItem errors.
	Item LineKind
	// Description carries detail for IncorrectFormatting and the
	// offending path for DuplicateSource.
	Description string
	// Err is the underlying failure for IO errors.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case IO:
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	case IncorrectFormatting:
		return fmt.Sprintf("%s:%d: incorrect formatting: %s", e.Path, e.Line, e.Description)
	case Parse:
		return fmt.Sprintf("%s:%d: failed to parse %s", e.Path, e.Line, e.Item)
	case UnexpectedItem:
		return fmt.Sprintf("%s:%d: unexpected %s", e.Path, e.Line, e.Item)
	case MissingPosting:
		return fmt.Sprintf("%s:%d: comment with no posting to attach to", e.Path, e.Line)
	case MissingTransaction:
		return fmt.Sprintf("%s:%d: comment with no transaction to attach to", e.Path, e.Line)
	case TwoPostingsWithElidedAmounts:
		return fmt.Sprintf("%s:%d: second posting with an elided amount", e.Path, e.Line)
	case TransactionDoesNotBalance:
		return fmt.Sprintf("%s: transaction closed at line %d does not balance", e.Path, e.Line)
	case DuplicateSource:
		return fmt.Sprintf("%s:%d: cyclic include of %s", e.Path, e.Line, e.Description)
	default:
		return fmt.Sprintf("%s:%d: unknown error", e.Path, e.Line)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
