package frame

import (
	"testing"

	"github.com/npillmayer/paginate/engine/dom"
	"github.com/npillmayer/paginate/engine/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeMutations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.frame")
	defer teardown()
	//
	tree := NewTree()
	root := tree.NewFrame(dom.CreateElement("div"), nil)
	a := tree.NewFrame(dom.CreateElement("p"), nil)
	b := tree.NewFrame(dom.CreateElement("p"), nil)
	c := tree.NewFrame(dom.CreateElement("p"), nil)
	root.AppendChild(b)
	root.PrependChild(a)
	require.NoError(t, root.InsertChildAfter(c, b))
	assert.Equal(t, []*Frame{a, b, c}, root.Children())
	assert.Equal(t, a, root.FirstChild())
	assert.Equal(t, c, root.LastChild())
	assert.Equal(t, b, c.PrevSibling())
	assert.Equal(t, root, b.Parent())
	//
	require.NoError(t, root.InsertChildBefore(c, a))
	assert.Equal(t, []*Frame{c, a, b}, root.Children())
	removed, err := root.RemoveChild(a)
	require.NoError(t, err)
	assert.Equal(t, a, removed)
	assert.Nil(t, a.Parent())
	assert.Equal(t, []*Frame{c, b}, root.Children())
	assert.Equal(t, 2, root.ChildCount())
}

func TestTreeNotAChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.frame")
	defer teardown()
	//
	tree := NewTree()
	root := tree.NewFrame(dom.CreateElement("div"), nil)
	a := tree.NewFrame(dom.CreateElement("p"), nil)
	stray := tree.NewFrame(dom.CreateElement("p"), nil)
	root.AppendChild(a)
	assert.ErrorIs(t, root.InsertChildBefore(a, stray), ErrNotAChild)
	assert.ErrorIs(t, root.InsertChildAfter(a, stray), ErrNotAChild)
	_, err := root.RemoveChild(stray)
	assert.ErrorIs(t, err, ErrNotAChild)
	assert.Equal(t, []*Frame{a}, root.Children())
	assert.Panics(t, func() { a.AppendChild(root) })
}

func TestTreeRelease(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.frame")
	defer teardown()
	//
	tree := NewTree()
	root := tree.NewFrame(dom.CreateElement("div"), nil)
	a := tree.NewFrame(dom.CreateElement("p"), nil)
	b := tree.NewFrame(dom.CreateText("hello"), nil)
	root.AppendChild(a)
	a.AppendChild(b)
	a.SetDecorator("deco")
	assert.Equal(t, 3, tree.Len())
	tree.Release(a)
	assert.Equal(t, 1, tree.Len())
	assert.Nil(t, tree.Frame(a.ID()))
	assert.Nil(t, tree.Frame(b.ID()))
	assert.Nil(t, a.Decorator())
	assert.Nil(t, root.FirstChild())
	assert.Equal(t, root, tree.Frame(root.ID()))
}

func TestFrameClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.frame")
	defer teardown()
	//
	tree := NewTree()
	s, err := style.Parse("display: list-item; position: relative; float: left")
	require.NoError(t, err)
	li := tree.NewFrame(dom.CreateElement("li"), s)
	assert.True(t, li.IsBlockLevel())
	assert.True(t, li.IsPositioned())
	assert.False(t, li.IsAbsolute())
	assert.True(t, li.IsFloating())
	assert.True(t, li.Display().Contains(ListItemMode))
	text := tree.NewFrame(dom.CreateText("x"), nil)
	assert.True(t, text.IsText())
	assert.False(t, text.IsBlockLevel())
	assert.False(t, text.IsFloating())
	gen := tree.NewFrame(dom.CreateElement(GeneratedContentTag), nil)
	assert.True(t, gen.IsGeneratedContent())
	assert.Equal(t, "frame#2<#text>", text.String())
}
