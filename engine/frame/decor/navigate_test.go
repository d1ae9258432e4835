package decor

import (
	"testing"

	"github.com/npillmayer/paginate/core"
	"github.com/npillmayer/paginate/core/dimen"
	"github.com/npillmayer/paginate/engine/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationResolvesOutermost(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.decor")
	defer teardown()
	//
	doc, _ := newTestDocument()
	root := buildTree(t, doc, `<div id="a"><p id="b">x</p><p id="c">y</p></div>`)
	a, b, c := byID(root, "a"), byID(root, "b"), byID(root, "c")
	require.NotNil(t, a)
	a2 := Wrap(a, doc)
	a3 := Wrap(a2, doc)
	assert.Equal(t, a3, Outermost(a.Frame()))
	assert.Equal(t, a.Frame(), a3.Frame())
	assert.Equal(t, a3, b.Parent(), "parent must be the outermost decoration")
	assert.Equal(t, a3, c.LookupParent(false))
	assert.Equal(t, b, a3.FirstChild())
	assert.Equal(t, c, a3.LastChild())
	assert.Equal(t, c, b.NextSibling())
	assert.Equal(t, b, c.PrevSibling())
	assert.Equal(t, []*Node{b, c}, a3.Children())
	assert.Equal(t, root, a3.Root())
	assert.True(t, root.IsRoot())
	assert.Panics(t, func() { Wrap(a2, doc) }, "decorations are never shared")
}

func TestParentCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.decor")
	defer teardown()
	//
	doc, _ := newTestDocument()
	root := buildTree(t, doc, `<div id="a"><p id="b">x</p></div>`)
	a, b := byID(root, "a"), byID(root, "b")
	assert.Equal(t, a, b.Parent())
	outer := Wrap(a, doc)
	assert.Equal(t, a, b.Parent(), "cached parent survives until reset")
	assert.Equal(t, outer, b.LookupParent(false))
	b.Reset()
	assert.Equal(t, outer, b.Parent())
}

func TestBlockAndPositionedParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.decor")
	defer teardown()
	//
	doc, _ := newTestDocument()
	root := buildTree(t, doc, `<div id="a" style="display: block; position: relative">
		<span id="s"><em id="e">x</em></span></div>`)
	a, e := byID(root, "a"), byID(root, "e")
	assert.Equal(t, a, e.FindBlockParent())
	assert.Equal(t, a, e.FindPositionedParent())
	assert.Equal(t, root, a.FindPositionedParent(), "falls back to the root")
	assert.Nil(t, root.FindBlockParent())
}

func TestMutationsAcceptFrames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.decor")
	defer teardown()
	//
	doc, _ := newTestDocument()
	root := buildTree(t, doc, `<div id="a"><p id="b">x</p></div>`)
	a, b := byID(root, "a"), byID(root, "b")
	raw := doc.Frames.NewFrame(dom.CreateElement("hr"), nil)
	a.AppendChild(raw)
	assert.Equal(t, 2, a.ChildCount())
	assert.Len(t, a.Children(), 1, "undecorated frames are not reported as nodes")
	assert.Nil(t, b.NextSibling())
	//
	detached := doc.NewNode(dom.CreateElement("p"), nil, nil)
	assert.True(t, detached.IsRoot())
	require.NoError(t, a.InsertChildBefore(detached, b))
	assert.Equal(t, root, detached.Root(), "root propagates to added nodes")
	assert.Equal(t, detached, a.FirstChild())
	require.NoError(t, a.InsertChildAfter(Wrap(raw, doc), b))
	assert.Len(t, a.Children(), 3)
	require.NoError(t, a.RemoveChild(b))
	assert.Nil(t, b.Parent())
	//
	err := a.InsertChildBefore(doc.NewNode(dom.CreateElement("p"), nil, root), b)
	assert.ErrorIs(t, err, ErrNotAChild)
	assert.Equal(t, core.ESTRUCTURE, core.Code(err))
	assert.ErrorIs(t, a.RemoveChild(root), ErrNotAChild)
}

func TestStrategyDelegation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.decor")
	defer teardown()
	//
	doc, r := newTestDocument()
	root := buildTree(t, doc, `<p id="a">x</p>`)
	a := byID(root, "a")
	outer := Wrap(a, doc)
	assert.Equal(t, r, outer.Reflower(), "re-wrapping shares strategies")
	other := &recorder{}
	outer.SetReflower(other)
	outer.SetPositioner(other)
	assert.Equal(t, other, a.Reflower(), "strategies propagate to inner decorations")
	require.NoError(t, outer.Reflow(nil))
	require.NoError(t, outer.Position())
	outer.Move(2*dimen.PT, 3*dimen.PT, false)
	min, max := outer.MinMaxWidth()
	assert.Equal(t, 1*dimen.PT, min)
	assert.Equal(t, 2*dimen.PT, max)
	assert.Equal(t, 1, other.reflowed)
	assert.Equal(t, 1, other.positioned)
	assert.Equal(t, dimen.Point{X: 2 * dimen.PT, Y: 3 * dimen.PT}, a.Frame().Position())
	//
	bare := Wrap(doc.Frames.NewFrame(dom.CreateElement("p"), nil), doc)
	assert.Panics(t, func() { _ = bare.Reflow(nil) })
	assert.Panics(t, func() { _ = bare.Position() })
}
