package decor

import (
	"github.com/npillmayer/paginate/engine/dom"
	"github.com/npillmayer/paginate/engine/dom/style"
	"github.com/npillmayer/paginate/engine/frame"
	"golang.org/x/net/html"
)

// Copy creates a new decorated node for document node h, with a style
// cloned from n but without computed values. If h carries an `id`, it is
// moved to attribute dom.OriginalIDAttr, so the copy does not collide with
// the original. The copy is decorated by the document's factory and is
// not attached to the tree.
func (n *Node) Copy(h *html.Node) *Node {
	if id, ok := dom.RetireID(h); ok {
		tracer().Debugf("%s: copy retires id %q", n, id)
	}
	f := n.doc.Frames.NewFrame(h, n.Style().ResetClone())
	return n.doc.Decorate(f, n.root)
}

// DeepCopy copies n and, recursively, all of its children. Document nodes
// are cloned. Styles of copied children inherit from the copied parent.
func (n *Node) DeepCopy() *Node {
	return deepCopy(n.Frame(), n.doc, n.root)
}

func deepCopy(f *frame.Frame, doc *Document, root *Node) *Node {
	h := dom.CloneNode(f.Node())
	dom.RetireID(h)
	c := doc.Decorate(doc.Frames.NewFrame(h, f.Style().ResetClone()), root)
	for child := f.FirstChild(); child != nil; child = child.NextSibling() {
		cc := deepCopy(child, doc, root)
		if child.Style().Parent() == f.Style() {
			cc.Style().Inherit(c.Style())
		}
		c.AppendChild(cc)
	}
	return c
}

// CreateAnonymousChild creates a decorated node for a new element of the
// given tag, with a style inheriting from n and display set to display.
// The node is not attached to n.
func (n *Node) CreateAnonymousChild(tag string, display string) *Node {
	s := style.New().Inherit(n.Style())
	s.SetPropertyValue("display", style.Property(display))
	return n.doc.NewNode(dom.CreateElement(tag), s, n.root)
}

// Reset clears everything layout has computed for n and its subtree:
// geometry, reflow state, generated content, applied counter increments,
// counter tables and navigation caches. Reset is idempotent.
//
// Children are reset before n, so that their counter increments are
// reverted while the tables of the owning ancestors still exist.
func (n *Node) Reset() {
	for c := n.Frame().FirstChild(); c != nil; c = c.NextSibling() {
		if child := Outermost(c); child != nil {
			child.Reset()
		} else {
			c.Reset()
		}
	}
	n.Frame().Reset()
	for d := n; d != nil; {
		d.resetDecoration()
		inner, ok := d.wrapped.(*Node)
		if !ok {
			break
		}
		d = inner
	}
}

func (n *Node) resetDecoration() {
	if n.reflower != nil {
		n.reflower.Reset(n)
	}
	n.ResetGeneratedContent()
	n.RevertCounterIncrement()
	if n.Frame().IsFloating() && n.root != nil {
		n.root.RemoveFloat(n)
	}
	n.contentSet = false
	n.increments = nil
	n.counters.Clear()
	n.lines = nil
	n.clearNavigationCaches()
}
