package token

import "strings"

// stateFn is one state of the tokenizer's character-driven state machine.
// It reads zero or more bytes from t and returns the state to run next, or
// nil when the input is exhausted. Modeled on the classic Go lexer shape
// (see https://go.dev/talks/2011/lex.slide): a function returning the next
// function, rather than a virtual per-state object.
type stateFn func(t *Tokenizer) stateFn

// Tokenizer turns an input string into an ordered sequence of Tokens. It is
// single-shot: call Tokenize once per input. A Tokenizer is not safe for
// concurrent use and is not meant to be reused across inputs.
type Tokenizer struct {
	input string
	pos   int // read position

	tokens []Token

	tokenStart int    // byte offset where the current token began
	cur        Token  // token under construction
	attrName   string // scratch attribute name
	attrValue  string // scratch attribute value

	appropriateEndTag string // lowercased "</tagname", set on script/style entry
}

// NewTokenizer creates a tokenizer over input. Call Tokenize to run it.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokenize drives the state machine to exhaustion and returns the complete
// ordered token sequence, ending in an EndOfInput token. It never fails:
// malformed input produces a best-effort sequence per the recovery rules
// documented on each state below.
func Tokenize(input string) []Token {
	t := NewTokenizer(input)
	return t.Tokenize()
}

func (t *Tokenizer) Tokenize() []Token {
	for state := stateData; state != nil; {
		state = state(t)
	}
	t.tokens = append(t.tokens, Token{Kind: EndOfInput, pos: len(t.input)})
	return t.tokens
}

// next returns the next byte and advances the read position, or reports
// false at end of input.
func (t *Tokenizer) next() (byte, bool) {
	if t.pos >= len(t.input) {
		return 0, false
	}
	b := t.input[t.pos]
	t.pos++
	return b, true
}

// backup is the reconsume primitive: it decrements the read position by
// one so the next call to next re-reads the same byte under a new state.
// It must only be called once per call to next, and never at position 0.
func (t *Tokenizer) backup() {
	t.pos--
}

func (t *Tokenizer) emit(tok Token) {
	tok.pos = t.tokenStart
	t.tokens = append(t.tokens, tok)
}

func (t *Tokenizer) emitChar(b byte) {
	t.emit(Token{Kind: Character, Data: string(b)})
}

func (t *Tokenizer) beginStartTag(first byte) {
	t.cur = Token{Kind: StartTag, Data: string(first)}
	t.attrName, t.attrValue = "", ""
}

func (t *Tokenizer) beginEndTag(first byte) {
	t.cur = Token{Kind: EndTag, Data: string(first)}
}

// clearAttrScratch resets the attribute scratch state. Must be called
// before starting a new attribute name so a committed attribute's name
// never leaks into the next one.
func (t *Tokenizer) clearAttrScratch() {
	t.attrName, t.attrValue = "", ""
}

// commitAttr stores the pending attribute name/value pair into the current
// tag token and clears the scratch. It is a no-op if no attribute name has
// been scanned (attrName == ""), so repeated calls across transitions are
// harmless.
func (t *Tokenizer) commitAttr() {
	if t.attrName == "" {
		return
	}
	if t.cur.Attrs == nil {
		t.cur.Attrs = make(map[string]string)
	}
	t.cur.Attrs[t.attrName] = t.attrValue
	t.attrName, t.attrValue = "", ""
}

// emitCurrentTag finalizes and emits t.cur, which must be a StartTag or
// EndTag under construction.
func (t *Tokenizer) emitCurrentTag() {
	t.emit(t.cur)
	t.cur = Token{}
}

func isWhitespace(b byte) bool {
	return IsWhitespace(b)
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// stateData is the default state: everything but '<' is emitted as a
// single-character Character token.
func stateData(t *Tokenizer) stateFn {
	t.tokenStart = t.pos
	b, ok := t.next()
	if !ok {
		return nil
	}
	if b == '<' {
		return stateTagOpen
	}
	t.emitChar(b)
	return stateData
}

func stateTagOpen(t *Tokenizer) stateFn {
	b, ok := t.next()
	if !ok {
		// '<' at end of input: best-effort recovery, emit it literally.
		t.emitChar('<')
		return nil
	}
	switch {
	case b == '!':
		return stateDoctypeDeclaration
	case b == '?':
		return stateXmlDeclaration
	case b == '/':
		return stateEndTagOpen
	case isAlpha(b):
		t.beginStartTag(b)
		return stateTagName
	default:
		t.emitChar('<')
		t.backup()
		return stateData
	}
}

func stateEndTagOpen(t *Tokenizer) stateFn {
	b, ok := t.next()
	if !ok {
		return nil
	}
	if isAlpha(b) {
		t.beginEndTag(b)
		return stateTagName
	}
	// Ill-formed end tag: dropped, not reconsumed.
	return stateData
}

func stateTagName(t *Tokenizer) stateFn {
	b, ok := t.next()
	if !ok {
		return nil
	}
	switch {
	case b == '>':
		if t.cur.Kind == StartTag {
			lower := strings.ToLower(t.cur.Data)
			if lower == "script" || lower == "style" {
				t.appropriateEndTag = "</" + lower
				t.emitCurrentTag()
				return stateRawText
			}
		}
		t.emitCurrentTag()
		return stateData
	case isWhitespace(b):
		return stateBeforeAttributeName
	case b == '/':
		return stateSelfClosingStartTag
	default:
		t.cur.Data += string(b)
		return stateTagName
	}
}

func stateSelfClosingStartTag(t *Tokenizer) stateFn {
	b, ok := t.next()
	if !ok {
		return nil
	}
	if b == '>' {
		t.cur.SelfClosing = true
		t.emitCurrentTag()
		return stateData
	}
	t.backup()
	return stateBeforeAttributeName
}

func stateBeforeAttributeName(t *Tokenizer) stateFn {
	b, ok := t.next()
	if !ok {
		return nil
	}
	switch {
	case isWhitespace(b):
		return stateBeforeAttributeName
	case b == '/' || b == '>':
		t.backup()
		return stateAfterAttributeName
	default:
		t.clearAttrScratch()
		t.backup()
		return stateAttributeName
	}
}

func stateAttributeName(t *Tokenizer) stateFn {
	b, ok := t.next()
	if !ok {
		return nil
	}
	switch {
	case isWhitespace(b) || b == '/' || b == '>':
		t.backup()
		return stateAfterAttributeName
	case b == '=':
		return stateBeforeAttributeValue
	default:
		t.attrName += string(b)
		return stateAttributeName
	}
}

func stateAfterAttributeName(t *Tokenizer) stateFn {
	b, ok := t.next()
	if !ok {
		return nil
	}
	switch {
	case isWhitespace(b):
		return stateAfterAttributeName
	case b == '/':
		return stateSelfClosingStartTag
	case b == '=':
		return stateBeforeAttributeValue
	case b == '>':
		t.commitAttr()
		t.emitCurrentTag()
		return stateData
	default:
		t.commitAttr()
		t.backup()
		return stateAttributeName
	}
}

func stateBeforeAttributeValue(t *Tokenizer) stateFn {
	b, ok := t.next()
	if !ok {
		return nil
	}
	switch {
	case isWhitespace(b):
		return stateBeforeAttributeValue
	case b == '"':
		return stateAttributeValueDoubleQuoted
	case b == '\'':
		return stateAttributeValueSingleQuoted
	case b == '>':
		t.commitAttr()
		t.emitCurrentTag()
		return stateData
	default:
		t.backup()
		return stateAttributeValueUnquoted
	}
}

func stateAttributeValueDoubleQuoted(t *Tokenizer) stateFn {
	b, ok := t.next()
	if !ok {
		return nil
	}
	if b == '"' {
		t.commitAttr()
		return stateAfterAttributeValueQuoted
	}
	t.attrValue += string(b)
	return stateAttributeValueDoubleQuoted
}

func stateAttributeValueSingleQuoted(t *Tokenizer) stateFn {
	b, ok := t.next()
	if !ok {
		return nil
	}
	if b == '\'' {
		t.commitAttr()
		return stateAfterAttributeValueQuoted
	}
	t.attrValue += string(b)
	return stateAttributeValueSingleQuoted
}

func stateAttributeValueUnquoted(t *Tokenizer) stateFn {
	b, ok := t.next()
	if !ok {
		return nil
	}
	switch {
	case isWhitespace(b):
		t.commitAttr()
		return stateAfterAttributeValueQuoted
	case b == '>':
		t.commitAttr()
		t.emitCurrentTag()
		return stateData
	default:
		t.attrValue += string(b)
		return stateAttributeValueUnquoted
	}
}

// stateAfterAttributeValueQuoted also serves AfterAttributeValueUnquoted;
// both states have identical transitions.
func stateAfterAttributeValueQuoted(t *Tokenizer) stateFn {
	b, ok := t.next()
	if !ok {
		return nil
	}
	switch {
	case isWhitespace(b):
		return stateBeforeAttributeName
	case b == '/':
		return stateSelfClosingStartTag
	case b == '>':
		t.emitCurrentTag()
		return stateData
	default:
		t.backup()
		return stateBeforeAttributeName
	}
}

func stateXmlDeclaration(t *Tokenizer) stateFn {
	start := t.pos
	for {
		b, ok := t.next()
		if !ok {
			t.emit(Token{Kind: XmlDeclaration, Data: t.input[start:t.pos]})
			return nil
		}
		if b == '>' {
			t.emit(Token{Kind: XmlDeclaration, Data: t.input[start : t.pos-1]})
			return stateData
		}
	}
}

func stateDoctypeDeclaration(t *Tokenizer) stateFn {
	start := t.pos
	for {
		b, ok := t.next()
		if !ok {
			t.emit(Token{Kind: Doctype, Data: t.input[start:t.pos]})
			return nil
		}
		if b == '>' {
			t.emit(Token{Kind: Doctype, Data: t.input[start : t.pos-1]})
			return stateData
		}
	}
}

// stateRawText is the escape hatch entered right after a <script> or
// <style> start tag. It scans for the first case-sensitive occurrence of
// the (already-lowercased) closing tag sentinel and emits everything up to
// it as one Character token, leaving the literal close tag in the input for
// the main loop to tokenize as an ordinary end tag.
func stateRawText(t *Tokenizer) stateFn {
	start := t.pos
	rest := t.input[t.pos:]
	idx := strings.Index(rest, t.appropriateEndTag)
	if idx == -1 {
		t.pos = len(t.input)
	} else {
		t.pos = start + idx
	}
	if t.pos > start {
		t.tokenStart = start
		t.emit(Token{Kind: Character, Data: t.input[start:t.pos]})
	}
	if idx == -1 {
		return nil
	}
	return stateData
}
