package decor

import (
	"github.com/npillmayer/paginate/core"
	"github.com/npillmayer/paginate/engine/dom"
)

// Box edge properties truncated by a split.
var (
	bottomEdge = []string{
		"margin-bottom", "padding-bottom", "border-bottom-width",
		"border-bottom-left-radius", "border-bottom-right-radius",
	}
	topEdge = []string{
		"margin-top", "padding-top", "border-top-width",
		"border-top-left-radius", "border-top-right-radius",
	}
)

// Split breaks n in front of child. child and all of its following siblings
// move to a new fragment of n, inserted as the next sibling of n. The split
// then continues with the parent of n, breaking in front of the fragment.
// pageBreak tells if the split is caused by a page break, forced if that
// break has been demanded by the document (`page-break-before: always`).
//
// If child is nil, n asks its parent to split in front of n. Splitting the
// root is a no-op. If child is not a direct child of n, an error with code
// core.ESTRUCTURE is returned and the tree is left unchanged.
//
// Fragments are split only through this ancestor chain, never on their own
// account.
func (n *Node) Split(child *Node, pageBreak, forced bool) error {
	if child == nil {
		if p := n.Parent(); p != nil {
			return p.Split(n, pageBreak, forced)
		}
		return nil
	}
	if !n.IsChild(child) {
		return core.WrapError(ErrNotAChild, core.ESTRUCTURE,
			"unable to split %s: %s is not a child", n, child)
	}
	parent := n.Parent()
	if parent == nil {
		tracer().Debugf("split reached root %s", n)
		return nil
	}
	tracer().Debugf("split %s in front of %s", n, child)
	n.RevertCounterIncrement()
	fragment := n.Copy(dom.CloneNode(n.Node()))
	s, fs := n.Style(), fragment.Style()
	if !n.IsBody() {
		for _, p := range bottomEdge {
			s.SetPropertyValue(p, "0")
		}
		for _, p := range topEdge {
			fs.SetPropertyValue(p, "0")
		}
		fs.SetPropertyValue("page-break-before", "auto")
	}
	fs.SetPropertyValue("text-indent", "0")
	fs.SetPropertyValue("counter-reset", "none")
	n.isSplit = true
	fragment.isSplitOff = true
	if err := parent.InsertChildAfter(fragment, n); err != nil {
		panic(err) // n is a child of its parent
	}
	if n.IsBlockLevel() {
		n.RemoveFramesFromLine(child)
		n.RecalculateFloatOffsets()
	}
	if pageBreak && !forced {
		// unforced page breaks drop the top margin of the first box on the new page
		child.Style().SetPropertyValue("margin-top", "0")
	}
	for f := child.Frame(); f != nil; {
		next := f.NextSibling()
		if d := Outermost(f); d != nil {
			d.Reset()
		} else {
			f.Reset()
		}
		if f.Style().Parent() == s {
			f.Style().Inherit(fs)
		}
		fragment.AppendChild(f)
		f = next
	}
	if err := parent.Split(fragment, pageBreak, forced); err != nil {
		return err
	}
	fragment.counters = n.counters.Clone()
	return nil
}
