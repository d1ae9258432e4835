package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestCloneIsShallowAndDetached(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<p id="x" class="c">Hello <b>you</b></p>`))
	require.NoError(t, err)
	p := find(doc, "p")
	require.NotNil(t, p)
	c := CloneNode(p)
	assert.Equal(t, "p", c.Data)
	assert.Equal(t, atom.P, c.DataAtom)
	assert.Nil(t, c.Parent)
	assert.Nil(t, c.FirstChild)
	id, ok := Attr(c, "id")
	assert.True(t, ok)
	assert.Equal(t, "x", id)
	SetAttr(c, "class", "d")
	cls, _ := Attr(p, "class")
	assert.Equal(t, "c", cls, "clone must not share attribute storage")
}

func TestRetireID(t *testing.T) {
	e := CreateElement("DIV")
	assert.Equal(t, "div", NodeName(e))
	SetAttr(e, "id", "header")
	id, ok := RetireID(e)
	assert.True(t, ok)
	assert.Equal(t, "header", id)
	_, ok = Attr(e, "id")
	assert.False(t, ok)
	orig, _ := Attr(e, OriginalIDAttr)
	assert.Equal(t, "header", orig)
	_, ok = RetireID(e)
	assert.False(t, ok)
}

func TestNodeNames(t *testing.T) {
	assert.Equal(t, "#text", NodeName(CreateText("x")))
	assert.Equal(t, "#document", NodeName(&html.Node{Type: html.DocumentNode}))
	assert.True(t, IsText(CreateText("")))
	assert.Equal(t, "", NodeName(nil))
}

func find(h *html.Node, tag string) *html.Node {
	if h.Type == html.ElementNode && h.Data == tag {
		return h
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if f := find(c, tag); f != nil {
			return f
		}
	}
	return nil
}
