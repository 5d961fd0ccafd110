// Package htmldom parses an HTML-like byte stream into an in-memory
// document tree for consumers that need to inspect markup (query by tag
// name, read text content, read attributes) rather than render it.
//
// The parser synthesizes the implicit html/head/body containers a
// well-formed document would have had, so every successful parse yields a
// document whose root contains exactly one html element. Malformed input
// never fails to parse in the default (lenient) mode; set StrictMode to
// have structural errors (an unmatched end tag, a duplicate head, ...)
// abort the parse instead.
package htmldom

import (
	"github.com/dpotapov/htmldom/dom"
	"github.com/dpotapov/htmldom/token"
	"github.com/dpotapov/htmldom/tree"
)

// Parser parses HTML-like input into a dom.Document. The zero value is a
// ready-to-use lenient parser. A Parser is reusable across calls to Parse:
// each call resets its internal state and allocates a fresh document. A
// Parser is not safe for concurrent use.
type Parser struct {
	// StrictMode promotes structural errors (an unmatched end tag, a
	// duplicate head, an unrecognized end tag inside head) from silently
	// swallowed to a returned error. Default false.
	StrictMode bool
}

// New returns a lenient Parser, equivalent to the zero value.
func New() *Parser {
	return &Parser{}
}

// Parse tokenizes input and builds the document tree. In lenient mode
// (the default) the returned error is always nil. In strict mode, the
// first structural error encountered aborts the parse and is returned.
func (p *Parser) Parse(input string) (*dom.Document, error) {
	tokens := token.Tokenize(input)
	return tree.New(p.StrictMode).Build(tokens)
}

// Parse is a package-level convenience for the common lenient case,
// equivalent to New().Parse(input).
func Parse(input string) (*dom.Document, error) {
	return New().Parse(input)
}
