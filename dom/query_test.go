package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_MatchesByTagAndAttr(t *testing.T) {
	doc := sampleDoc()
	doc.GetElementsByTagName("p")[1].Attrs["id"] = "highlight"

	matches, err := doc.Select(`tag == "p" && attr["id"] == "highlight"`)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "World", GetTextContent(matches[0]))
}

func TestSelect_MatchesByText(t *testing.T) {
	doc := sampleDoc()

	matches, err := doc.Select(`text contains "World"`)
	require.NoError(t, err)

	var tags []string
	for _, m := range matches {
		tags = append(tags, m.Tag)
	}
	assert.Contains(t, tags, "p")
	assert.Contains(t, tags, "body")
	assert.Contains(t, tags, "html")
}

func TestSelect_NoMatches(t *testing.T) {
	doc := sampleDoc()
	matches, err := doc.Select(`tag == "span"`)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSelect_InvalidExpressionErrors(t *testing.T) {
	doc := sampleDoc()
	_, err := doc.Select(`tag ===`)
	assert.Error(t, err)
}
