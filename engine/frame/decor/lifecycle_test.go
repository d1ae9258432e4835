package decor

import (
	"testing"

	"github.com/npillmayer/paginate/engine/dom"
	"github.com/npillmayer/paginate/engine/dom/style"
	"github.com/npillmayer/paginate/engine/frame"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listSnippet = `<ol id="l" style="counter-reset: item">` +
	`<li id="i1" style="counter-increment: item"><x-generated id="g1" style="content: counter(item) '. '"></x-generated>one</li>` +
	`<li id="i2" style="counter-increment: item"><x-generated id="g2" style="content: counter(item, upper-roman) ')'"></x-generated>two</li>` +
	`</ol>`

func generatedText(n *Node) string {
	if c := n.Frame().FirstChild(); c != nil && c.IsText() {
		return c.Node().Data
	}
	return ""
}

func TestGeneratedContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.decor")
	defer teardown()
	//
	doc, _ := newTestDocument()
	root := buildTree(t, doc, listSnippet)
	materialize(root)
	g1, g2 := byID(root, "g1"), byID(root, "g2")
	assert.True(t, g1.Frame().IsGeneratedContent())
	assert.Equal(t, "1. ", generatedText(g1))
	assert.Equal(t, "II)", generatedText(g2))
	body := byID(root, "l").Parent()
	v, _ := body.Counters().Get("item")
	assert.Equal(t, 2, v)
	assert.True(t, g1.ContentSet())
}

func TestGeneratedContentTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.decor")
	defer teardown()
	//
	doc, _ := newTestDocument()
	root := buildTree(t, doc, `<div id="d" style="counter-reset: s 2">`+
		`<p id="p" title="T" style="counter-reset: s 5"><x-generated id="g" `+
		"style=\"content: open-quote attr(title) counters(s, '.') 'e\u0301' close-quote\"></x-generated></p></div>")
	g := byID(root, "g")
	require.NotNil(t, g)
	materialize(root)
	assert.Equal(t, "\u201cT2.5\u00e9\u201d", generatedText(g), "text is NFC normalized")
}

func TestResetIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.decor")
	defer teardown()
	//
	doc, r := newTestDocument()
	root := buildTree(t, doc, listSnippet)
	materialize(root)
	live := doc.Frames.Len()
	root.Reset()
	once := dump(root)
	g1 := byID(root, "g1")
	assert.Equal(t, 0, g1.ChildCount(), "generated content is dropped")
	assert.Equal(t, live-2, doc.Frames.Len(), "generated frames are released")
	assert.False(t, g1.ContentSet())
	assert.Equal(t, 0, byID(root, "l").Parent().Counters().Len())
	assert.Greater(t, r.resets, 0)
	root.Reset()
	assert.Equal(t, once, dump(root))
	//
	materialize(root)
	assert.Equal(t, "1. ", generatedText(g1), "a new pass re-creates content")
	assert.Equal(t, "II)", generatedText(byID(root, "g2")))
}

func TestCopyRetiresID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.decor")
	defer teardown()
	//
	doc, r := newTestDocument()
	root := buildTree(t, doc, `<div id="hd" style="margin-top: 4pt">x</div>`)
	hd := byID(root, "hd")
	_ = hd.Style().GetPropertyValue("margin-top")
	c := hd.Copy(dom.CloneNode(hd.Node()))
	_, hasID := dom.Attr(c.Node(), "id")
	assert.False(t, hasID)
	orig, _ := dom.Attr(c.Node(), dom.OriginalIDAttr)
	assert.Equal(t, "hd", orig)
	id, _ := dom.Attr(hd.Node(), "id")
	assert.Equal(t, "hd", id, "the original keeps its id")
	assert.False(t, c.Style().HasComputed())
	assert.Equal(t, style.Property("4pt"), c.Style().GetPropertyValue("margin-top"))
	assert.Equal(t, r, c.Reflower(), "copies are decorated by the factory")
	assert.Equal(t, root, c.Root())
	assert.Nil(t, c.Parent())
}

func TestDeepCopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.decor")
	defer teardown()
	//
	doc, _ := newTestDocument()
	root := buildTree(t, doc, `<div id="a" style="color: red"><p id="b">x<em id="e">y</em></p><p id="c">z</p></div>`)
	a := byID(root, "a")
	materialize(root)
	_ = byID(root, "e").Style().GetPropertyValue("color")
	cp := a.DeepCopy()
	assertIsomorphic(t, a.Frame(), cp.Frame())
	assert.Nil(t, byID(cp, "a"), "no id collisions with the source")
	assert.Nil(t, byID(cp, "e"))
	assert.Equal(t, []string{"~b", "~c"}, ids(cp.Children()))
	e := cp.Children()[0].Children()[1]
	assert.False(t, e.Style().HasComputed())
	assert.Equal(t, style.Property("red"), e.Style().GetPropertyValue("color"))
	assert.Equal(t, cp.Children()[0].Style(), e.Style().Parent(), "copied styles inherit from copied parents")
	assert.False(t, cp.ContentSet())
}

func TestDeepCopyOfGeneratedContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.decor")
	defer teardown()
	//
	doc, _ := newTestDocument()
	root := buildTree(t, doc, listSnippet)
	materialize(root)
	g1, i1 := byID(root, "g1"), byID(root, "i1")
	cp := g1.DeepCopy()
	require.Equal(t, 1, cp.ChildCount(), "copy carries the generated text")
	assert.False(t, cp.ContentSet())
	i1.AppendChild(cp)
	cp.MaterializeContent()
	assert.Equal(t, 1, cp.ChildCount(), "generated text is replaced, not duplicated")
	assert.Equal(t, "2. ", generatedText(cp))
	assert.Equal(t, 1, g1.ChildCount())
}

func assertIsomorphic(t *testing.T, a, b *frame.Frame) {
	t.Helper()
	require.Equal(t, a.ChildCount(), b.ChildCount(), "child count of %s", a)
	assert.Equal(t, a.NodeName(), b.NodeName())
	if a.IsText() {
		assert.Equal(t, a.Node().Data, b.Node().Data)
	}
	assert.NotSame(t, a.Node(), b.Node())
	ac, bc := a.Children(), b.Children()
	for i := range ac {
		assertIsomorphic(t, ac[i], bc[i])
	}
}

func TestCreateAnonymousChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.decor")
	defer teardown()
	//
	doc, _ := newTestDocument()
	root := buildTree(t, doc, `<table id="t" style="display: table; color: green"></table>`)
	tbl := byID(root, "t")
	row := tbl.CreateAnonymousChild("tr", "table-row")
	assert.Equal(t, "tr", row.Frame().NodeName())
	assert.Equal(t, style.Property("table-row"), row.Style().GetPropertyValue("display"))
	assert.Equal(t, style.Property("green"), row.Style().GetPropertyValue("color"))
	assert.Nil(t, row.Parent(), "anonymous children are not attached")
	assert.Equal(t, root, row.Root())
	tbl.AppendChild(row)
	assert.Equal(t, tbl, row.Parent())
}
