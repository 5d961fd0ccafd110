package tree

import (
	"github.com/dpotapov/htmldom/dom"
	"github.com/dpotapov/htmldom/token"
)

// Each handler below implements one insertion mode. It returns
// (redispatch, err): redispatch true means the handler changed mode
// without consuming tok and dispatch must re-run tok under the new mode;
// err is non-nil only in strict mode, for the structural-error cases
// described in errors.go.

func (c *Constructor) initial(tok token.Token) (bool, error) {
	switch tok.Kind {
	case token.XmlDeclaration:
		return false, nil
	case token.Doctype:
		c.modes.replaceTop(modeBeforeHtml)
		return false, nil
	default:
		c.modes.replaceTop(modeBeforeHtml)
		return true, nil
	}
}

func (c *Constructor) beforeHtml(tok token.Token) (bool, error) {
	if isWhitespaceChar(tok) {
		return false, nil
	}
	if tok.Kind == token.StartTag && lower(tok.Data) == "html" {
		c.insertElement(tok)
		c.modes.replaceTop(modeBeforeHead)
		return false, nil
	}
	c.insertElement(token.Token{Kind: token.StartTag, Data: "html"})
	c.modes.replaceTop(modeBeforeHead)
	return true, nil
}

func (c *Constructor) beforeHead(tok token.Token) (bool, error) {
	if isWhitespaceChar(tok) {
		return false, nil
	}
	if tok.Kind == token.StartTag && lower(tok.Data) == "head" {
		c.insertElement(tok)
		c.modes.replaceTop(modeInHead)
		return false, nil
	}
	c.insertElement(token.Token{Kind: token.StartTag, Data: "head"})
	c.modes.replaceTop(modeInHead)
	return true, nil
}

func (c *Constructor) inHead(tok token.Token) (bool, error) {
	if isWhitespaceChar(tok) {
		return false, nil
	}
	switch tok.Kind {
	case token.StartTag:
		switch name := lower(tok.Data); {
		case name == "title":
			c.insertElement(tok)
			c.modes.push(modeText)
			return false, nil
		case name == "style" || name == "script":
			c.insertElement(tok)
			c.modes.push(modeRawText)
			return false, nil
		case voidTags[name]:
			c.insertVoidElement(tok)
			return false, nil
		case name == "head":
			return false, c.reportError("duplicate head", tok.Pos())
		default:
			c.pop()
			c.modes.replaceTop(modeAfterHead)
			return true, nil
		}
	case token.EndTag:
		switch name := lower(tok.Data); name {
		case "head":
			c.pop()
			c.modes.replaceTop(modeAfterHead)
			return false, nil
		case "body", "html", "br":
			c.pop()
			c.modes.replaceTop(modeAfterHead)
			return true, nil
		default:
			return false, c.reportError("unrecognized end tag </"+name+"> in head", tok.Pos())
		}
	case token.Comment:
		return false, nil
	default:
		c.pop()
		c.modes.replaceTop(modeAfterHead)
		return true, nil
	}
}

func (c *Constructor) afterHead(tok token.Token) (bool, error) {
	if isWhitespaceChar(tok) {
		return false, nil
	}
	if tok.Kind == token.StartTag && lower(tok.Data) == "body" {
		c.insertElement(tok)
		c.modes.replaceTop(modeInBody)
		return false, nil
	}
	c.insertElement(token.Token{Kind: token.StartTag, Data: "body"})
	c.modes.replaceTop(modeInBody)
	return true, nil
}

func (c *Constructor) inBody(tok token.Token) (bool, error) {
	switch tok.Kind {
	case token.Character:
		c.insertCharacter(tok)
	case token.StartTag:
		c.insertElement(tok)
	case token.EndTag:
		if !c.closeElement(tok) {
			return false, c.reportError("unmatched end tag </"+lower(tok.Data)+">", tok.Pos())
		}
	}
	return false, nil
}

// text is the mode pushed by <title>; it is popped by the matching </title>.
func (c *Constructor) text(tok token.Token) (bool, error) {
	if tok.Kind == token.EndTag && lower(tok.Data) == "title" {
		c.pop()
		c.modes.pop()
		return false, nil
	}
	c.currentNode().AppendChild(&dom.Text{Data: tok.Data})
	return false, nil
}

// rawText is the mode pushed by <script>/<style>; it is popped by the
// matching end tag (matched against the current node's tag, not a fixed
// name, since both tags share this mode).
func (c *Constructor) rawText(tok token.Token) (bool, error) {
	if tok.Kind == token.EndTag {
		if cur, ok := c.currentNode().(*dom.Element); ok && lower(tok.Data) == cur.Tag {
			c.pop()
			c.modes.pop()
			return false, nil
		}
	}
	c.currentNode().AppendChild(&dom.Text{Data: tok.Data})
	return false, nil
}
