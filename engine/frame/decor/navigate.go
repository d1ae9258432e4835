package decor

import (
	"github.com/npillmayer/paginate/engine/frame"
)

// All navigation resolves to the outermost decoration of the primitive
// neighbour. Neighbours without any decoration are reported as nil; they
// occur only for scaffolding frames not yet decorated.

// Parent returns the parent of n, using the parent cache.
func (n *Node) Parent() *Node {
	return n.LookupParent(true)
}

// LookupParent returns the parent of n. If useCache is set, a previously
// found parent is returned and a freshly found one is remembered.
// The cache is cleared by Reset.
func (n *Node) LookupParent(useCache bool) *Node {
	if useCache && n.parentCached {
		return n.parentCache
	}
	p := Outermost(n.Frame().Parent())
	if useCache {
		n.parentCache, n.parentCached = p, true
	}
	return p
}

// FirstChild returns the first child of n.
func (n *Node) FirstChild() *Node {
	return Outermost(n.Frame().FirstChild())
}

// LastChild returns the last child of n.
func (n *Node) LastChild() *Node {
	return Outermost(n.Frame().LastChild())
}

// PrevSibling returns the previous sibling of n.
func (n *Node) PrevSibling() *Node {
	return Outermost(n.Frame().PrevSibling())
}

// NextSibling returns the next sibling of n.
func (n *Node) NextSibling() *Node {
	return Outermost(n.Frame().NextSibling())
}

// Children returns the decorated children of n in order.
func (n *Node) Children() []*Node {
	var children []*Node
	for c := n.Frame().FirstChild(); c != nil; c = c.NextSibling() {
		if d := Outermost(c); d != nil {
			children = append(children, d)
		}
	}
	return children
}

// ChildCount returns the number of children of n, decorated or not.
func (n *Node) ChildCount() int {
	return n.Frame().ChildCount()
}

// IsChild is true if c is a direct child of n.
func (n *Node) IsChild(c frame.Framer) bool {
	if c == nil {
		return false
	}
	return n.Frame().IsChild(c.Frame())
}

// FindBlockParent returns the nearest block-level ancestor of n.
// The result is cached until Reset.
func (n *Node) FindBlockParent() *Node {
	if n.blockParent != nil {
		return n.blockParent
	}
	p := n.Parent()
	for p != nil && !p.IsBlockLevel() {
		p = p.Parent()
	}
	n.blockParent = p
	return p
}

// FindPositionedParent returns the nearest positioned ancestor of n, or the
// root of the tree if there is none. The result is cached until Reset.
func (n *Node) FindPositionedParent() *Node {
	if n.positionedParent != nil {
		return n.positionedParent
	}
	p := n.Parent()
	for p != nil && !p.IsPositioned() {
		p = p.Parent()
	}
	if p == nil {
		p = n.root
	}
	n.positionedParent = p
	return p
}

func (n *Node) clearNavigationCaches() {
	n.parentCache, n.parentCached = nil, false
	n.blockParent = nil
	n.positionedParent = nil
}
