package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() *Document {
	body := &Element{Tag: "body", Children: []Node{
		&Element{Tag: "p", Children: []Node{&Text{Data: "Hello "}}},
		&Element{Tag: "p", Attrs: map[string]string{"class": "note"}, Children: []Node{&Text{Data: "World"}}},
	}}
	html := &Element{Tag: "html", Children: []Node{body}}
	return &Document{Children: []Node{html}}
}

func TestGetElementsByTagName(t *testing.T) {
	doc := sampleDoc()

	ps := doc.GetElementsByTagName("p")
	require.Len(t, ps, 2)
	assert.Equal(t, "note", ps[1].GetAttribute("class"))

	bodies := doc.GetElementsByTagName("body")
	require.Len(t, bodies, 1)

	assert.Empty(t, doc.GetElementsByTagName("span"))
}

func TestGetTextContent(t *testing.T) {
	doc := sampleDoc()
	assert.Equal(t, "Hello World", GetTextContent(doc))

	ps := doc.GetElementsByTagName("p")
	assert.Equal(t, "Hello ", GetTextContent(ps[0]))
	assert.Equal(t, "World", GetTextContent(ps[1]))
}

func TestCensus(t *testing.T) {
	doc := sampleDoc()
	counts := Census(doc)
	assert.Equal(t, 1, counts["html"])
	assert.Equal(t, 1, counts["body"])
	assert.Equal(t, 2, counts["p"])
}

func TestGetAttribute_MissingReturnsEmpty(t *testing.T) {
	e := &Element{Tag: "div"}
	assert.Equal(t, "", e.GetAttribute("id"))
}

func TestElement_GetTag(t *testing.T) {
	e := &Element{Tag: "section"}
	assert.Equal(t, "section", e.GetTag())
}
