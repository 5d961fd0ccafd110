// Package tree implements the second state machine of the parser: it
// consumes the ordered token sequence produced by package token and grows
// a dom.Document, synthesizing the implicit html/head/body containers a
// well-formed document would have had.
package tree

import (
	"strings"

	"github.com/dpotapov/htmldom/dom"
	"github.com/dpotapov/htmldom/token"
)

// voidTags are elements inserted and immediately popped: their start tag
// also acts as their end tag. Kept local to this package rather than
// shared with dom.voidTags (an unexported dom detail) to keep the two
// packages decoupled; the sets describe the same three tags for the same
// reason and are expected to change together if ever extended.
var voidTags = map[string]bool{
	"link": true,
	"meta": true,
	"base": true,
}

// Constructor holds the per-parse state: the stack of open elements and
// the insertion-mode stack. A Constructor is single-use; call Build once
// per token sequence.
type Constructor struct {
	strict bool

	doc  *dom.Document
	open []dom.Container
	modes modeStack
}

// New creates a tree constructor. strict enables strict mode: structural
// errors (unmatched end tag, duplicate head, an unrecognized end tag
// inside head) abort the build instead of being silently swallowed.
func New(strict bool) *Constructor {
	return &Constructor{strict: strict}
}

// Build consumes tokens in order and returns the resulting document. On
// success (always, in lenient mode) the returned error is nil.
func (c *Constructor) Build(tokens []token.Token) (*dom.Document, error) {
	c.doc = &dom.Document{}
	c.open = []dom.Container{c.doc}
	c.modes = modeStack{modeInitial}

	for _, tok := range tokens {
		if err := c.dispatch(tok); err != nil {
			return nil, err
		}
	}
	return c.doc, nil
}

// dispatch routes tok through the current mode, re-dispatching under the
// new top mode whenever a handler reports it did not consume the token.
func (c *Constructor) dispatch(tok token.Token) error {
	for {
		redispatch, err := c.dispatchOnce(tok)
		if err != nil {
			return err
		}
		if !redispatch {
			return nil
		}
	}
}

func (c *Constructor) dispatchOnce(tok token.Token) (redispatch bool, err error) {
	switch c.modes.top() {
	case modeInitial:
		return c.initial(tok)
	case modeBeforeHtml:
		return c.beforeHtml(tok)
	case modeBeforeHead:
		return c.beforeHead(tok)
	case modeInHead:
		return c.inHead(tok)
	case modeAfterHead:
		return c.afterHead(tok)
	case modeInBody:
		return c.inBody(tok)
	case modeText:
		return c.text(tok)
	case modeRawText:
		return c.rawText(tok)
	default:
		panic("tree: unreachable insertion mode")
	}
}

// currentNode is the top of the open-elements stack: the insertion point
// for new children.
func (c *Constructor) currentNode() dom.Container {
	return c.open[len(c.open)-1]
}

// insertElement creates an Element from tok, appends it as the last child
// of currentNode, and pushes it onto the open-elements stack unless tok
// is self-closing.
func (c *Constructor) insertElement(tok token.Token) *dom.Element {
	el := &dom.Element{Tag: strings.ToLower(tok.Data)}
	if len(tok.Attrs) > 0 {
		el.Attrs = make(map[string]string, len(tok.Attrs))
		for k, v := range tok.Attrs {
			el.Attrs[k] = v
		}
	}
	c.currentNode().AppendChild(el)
	if !tok.SelfClosing {
		c.open = append(c.open, el)
	}
	return el
}

// insertVoidElement inserts an element for tok and immediately pops it,
// for link/meta/base.
func (c *Constructor) insertVoidElement(tok token.Token) {
	c.insertElement(tok)
	if !tok.SelfClosing {
		c.pop()
	}
}

// insertCharacter appends a Text child carrying tok.Data to currentNode.
func (c *Constructor) insertCharacter(tok token.Token) {
	c.currentNode().AppendChild(&dom.Text{Data: tok.Data})
}

// pop removes the top of the open-elements stack.
func (c *Constructor) pop() {
	c.open = c.open[:len(c.open)-1]
}

// closeElement searches the open-elements stack from the top downward for
// an element whose lowercased tag matches tok's lowercased tag. On a hit
// it pops everything from that element to the top (inclusive) and
// returns true. On a miss it leaves the stack unchanged and returns false.
func (c *Constructor) closeElement(tok token.Token) bool {
	name := strings.ToLower(tok.Data)
	for i := len(c.open) - 1; i >= 0; i-- {
		if el, ok := c.open[i].(*dom.Element); ok && el.Tag == name {
			c.open = c.open[:i]
			return true
		}
	}
	return false
}

// isWhitespaceChar reports whether tok is a Character token whose (single)
// payload byte is whitespace. This only looks at the first character;
// since the Data state emits one character per token in these modes,
// that is equivalent to testing the whole token.
func isWhitespaceChar(tok token.Token) bool {
	return tok.Kind == token.Character && len(tok.Data) > 0 && token.IsWhitespace(tok.Data[0])
}

func lower(s string) string { return strings.ToLower(s) }
