// Package token defines the tokens produced by the HTML tokenizer.
package token

// Kind discriminates the token variants produced by the tokenizer.
type Kind int

const (
	StartTag Kind = iota
	EndTag
	Character
	Comment
	Doctype
	XmlDeclaration
	EndOfInput
)

func (k Kind) String() string {
	switch k {
	case StartTag:
		return "StartTag"
	case EndTag:
		return "EndTag"
	case Character:
		return "Character"
	case Comment:
		return "Comment"
	case Doctype:
		return "Doctype"
	case XmlDeclaration:
		return "XmlDeclaration"
	case EndOfInput:
		return "EndOfInput"
	default:
		return "Unknown"
	}
}

// Token is a single unit emitted by the tokenizer. Attrs and SelfClosing
// are only meaningful for StartTag: an EndTag written with attributes or a
// trailing "/" carries them too, but nothing downstream reads them there.
type Token struct {
	Kind        Kind
	Data        string
	Attrs       map[string]string
	SelfClosing bool

	// pos is the byte offset in the source at which this token began.
	// It is not part of token identity: two tokens with identical Kind,
	// Data, Attrs and SelfClosing but different pos are still considered
	// equal by every comparison in this module except diagnostics.
	pos int
}

// Pos returns the byte offset of the start of the token in the source text.
func (t Token) Pos() int { return t.pos }

// IsWhitespace reports whether b is one of the ASCII whitespace bytes this
// module treats as insignificant between tags: space, tab, line feed,
// carriage return, form feed.
func IsWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// Attr returns the value of the named attribute and whether it was present.
func (t Token) Attr(name string) (string, bool) {
	if t.Attrs == nil {
		return "", false
	}
	v, ok := t.Attrs[name]
	return v, ok
}
