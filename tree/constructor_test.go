package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpotapov/htmldom/dom"
	"github.com/dpotapov/htmldom/token"
)

func build(t *testing.T, src string, strict bool) *dom.Document {
	t.Helper()
	doc, err := New(strict).Build(token.Tokenize(src))
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

func TestBuild_SynthesizesHtmlHeadBody(t *testing.T) {
	doc := build(t, "<p>Hello World</p>", false)

	require.Len(t, doc.Children, 1)
	html, ok := doc.Children[0].(*dom.Element)
	require.True(t, ok)
	assert.Equal(t, "html", html.Tag)
	require.Len(t, html.Children, 2)

	head := html.Children[0].(*dom.Element)
	assert.Equal(t, "head", head.Tag)
	assert.Empty(t, head.Children)

	body := html.Children[1].(*dom.Element)
	assert.Equal(t, "body", body.Tag)
	require.Len(t, body.Children, 1)

	p := body.Children[0].(*dom.Element)
	assert.Equal(t, "p", p.Tag)
	assert.Equal(t, "Hello World", dom.GetTextContent(p))
}

func TestBuild_WellFormedDocumentPreserved(t *testing.T) {
	doc := build(t, "<html><body><p>Hello World</p></body></html>", false)

	html := doc.Children[0].(*dom.Element)
	assert.Equal(t, "html", html.Tag)
	assert.Equal(t, "Hello World", dom.GetTextContent(html))

	ps := doc.GetElementsByTagName("p")
	require.Len(t, ps, 1)
}

func TestBuild_DeclarationsProduceNoElements(t *testing.T) {
	doc := build(t, `<?xml version="1.0" encoding="UTF-8"?><!DOCTYPE html><html></html>`, false)

	require.Len(t, doc.Children, 1)
	html := doc.Children[0].(*dom.Element)
	assert.Equal(t, "html", html.Tag)
}

func TestBuild_LeadingWhitespaceBeforeHtmlDropped(t *testing.T) {
	doc := build(t, "   \n  <html><body></body></html>", false)

	require.Len(t, doc.Children, 1)
	assert.Equal(t, "html", doc.Children[0].(*dom.Element).Tag)
}

func TestBuild_TitleIsTextMode(t *testing.T) {
	doc := build(t, "<html><head><title>My &lt;Page&gt;</title></head></html>", false)

	titles := doc.GetElementsByTagName("title")
	require.Len(t, titles, 1)
	assert.Equal(t, "My &lt;Page&gt;", dom.GetTextContent(titles[0]))
}

func TestBuild_ScriptIsRawTextMode(t *testing.T) {
	doc := build(t, `<html><head><script>var x = '</script>';</script></head></html>`, false)

	scripts := doc.GetElementsByTagName("script")
	require.Len(t, scripts, 1)
	assert.Equal(t, "var x = '", dom.GetTextContent(scripts[0]))
}

func TestBuild_VoidElementsNeverNest(t *testing.T) {
	doc := build(t, `<html><head><link rel="stylesheet" href="a.css"><meta charset="utf-8"></head></html>`, false)

	links := doc.GetElementsByTagName("link")
	require.Len(t, links, 1)
	assert.Empty(t, links[0].Children)
	assert.Equal(t, "a.css", links[0].GetAttribute("href"))
}

func TestBuild_UnmatchedEndTagLenientlyIgnored(t *testing.T) {
	doc := build(t, "<html><body><p>text</div></body></html>", false)

	ps := doc.GetElementsByTagName("p")
	require.Len(t, ps, 1)
	assert.Equal(t, "text", dom.GetTextContent(ps[0]))
}

func TestBuild_UnmatchedEndTagStrictModeErrors(t *testing.T) {
	_, err := New(true).Build(token.Tokenize("<html><body><p>text</div></body></html>"))
	require.Error(t, err)
	var structErr *StructuralError
	assert.ErrorAs(t, err, &structErr)
}

func TestBuild_DuplicateHeadStrictModeErrors(t *testing.T) {
	_, err := New(true).Build(token.Tokenize("<html><head><head></head></head></html>"))
	require.Error(t, err)
}

func TestBuild_UnrecognizedEndTagInHeadStrictModeErrors(t *testing.T) {
	_, err := New(true).Build(token.Tokenize("<html><head></nonsense></html>"))
	require.Error(t, err)
}

func TestBuild_EquivalentMarkupProducesEqualTrees(t *testing.T) {
	a := build(t, "<html><body><p>hi</p></body></html>", false)
	b := build(t, "<p>hi</p>", false)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("trees differ despite equivalent markup (-explicit +implicit):\n%s", diff)
	}
}

func TestBuild_AttributesAreCopiedPerElement(t *testing.T) {
	doc := build(t, `<html><body><a href="/x">x</a><a href="/y">y</a></body></html>`, false)

	anchors := doc.GetElementsByTagName("a")
	require.Len(t, anchors, 2)
	assert.Equal(t, "/x", anchors[0].GetAttribute("href"))
	assert.Equal(t, "/y", anchors[1].GetAttribute("href"))
}
