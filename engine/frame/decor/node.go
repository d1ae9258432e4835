package decor

import (
	"fmt"

	"github.com/npillmayer/paginate/engine/dom"
	"github.com/npillmayer/paginate/engine/dom/style"
	"github.com/npillmayer/paginate/engine/frame"
	"github.com/npillmayer/paginate/engine/frame/counter"
	"golang.org/x/net/html"
)

// Factory decorates frames, attaching strategies appropriate for their
// display type and position. root is the root of the decorated tree, or nil
// if the frame to decorate will become the root.
type Factory interface {
	DecorateFrame(f *frame.Frame, doc *Document, root *Node) *Node
}

// Document is the context of a decorated tree: the arena of its frames and
// the factory used to decorate new frames.
type Document struct {
	Frames  *frame.Tree
	Factory Factory
}

// NewDocument creates a document with an empty frame arena.
func NewDocument(factory Factory) *Document {
	return &Document{
		Frames:  frame.NewTree(),
		Factory: factory,
	}
}

// Decorate decorates a frame using the document's factory. Without a
// factory, the frame is wrapped without strategies.
func (doc *Document) Decorate(f *frame.Frame, root *Node) *Node {
	if doc.Factory != nil {
		return doc.Factory.DecorateFrame(f, doc, root)
	}
	n := Wrap(f, doc)
	n.SetRoot(root)
	return n
}

// NewNode creates a frame for a document node and decorates it.
func (doc *Document) NewNode(h *html.Node, s *style.Style, root *Node) *Node {
	return doc.Decorate(doc.Frames.NewFrame(h, s), root)
}

// maxDecorationDepth bounds the chain of nested decorations.
const maxDecorationDepth = 32

// Node is a decorated frame.
type Node struct {
	wrapped          frame.Framer // the frame or an inner decoration
	outer            *Node        // decoration wrapping this node
	doc              *Document
	root             *Node
	positioner       Positioner
	reflower         Reflower
	counters         *counter.Table
	increments       []counter.Entry // increments applied by MaterializeContent
	contentSet       bool
	isSplit          bool
	isSplitOff       bool
	parentCached     bool
	parentCache      *Node
	blockParent      *Node
	positionedParent *Node
	lines            []*LineBox
	floats           FloatList // used on the root only
}

// Wrap decorates a frame or another decorated node. The new node becomes the
// outermost decoration of the underlying frame. Wrapping a decorated node
// which is already wrapped panics, as decorations are never shared.
func Wrap(f frame.Framer, doc *Document) *Node {
	n := &Node{
		wrapped:  f,
		doc:      doc,
		counters: counter.NewTable(),
	}
	switch inner := f.(type) {
	case *frame.Frame:
		if inner.Decorator() != nil {
			tracer().Debugf("re-decorating %s", inner)
		}
		inner.SetDecorator(n)
	case *Node:
		if inner.outer != nil {
			panic(fmt.Sprintf("decor: %s is already wrapped", inner))
		}
		inner.outer = n
		n.root = inner.root
		n.positioner = inner.positioner
		n.reflower = inner.reflower
	default:
		panic("decor: cannot wrap a foreign frame type")
	}
	return n
}

// Outermost returns the outermost decoration of a frame, or nil if the
// frame is not decorated.
func Outermost(f *frame.Frame) *Node {
	if f == nil {
		return nil
	}
	n, ok := f.Decorator().(*Node)
	if !ok || n == nil {
		return nil
	}
	for i := 0; n.outer != nil; i++ {
		if i >= maxDecorationDepth {
			panic(fmt.Sprintf("decor: decoration chain of %s too deep", f))
		}
		n = n.outer
	}
	return n
}

// Frame returns the primitive frame under all decorations.
func (n *Node) Frame() *frame.Frame {
	return n.wrapped.Frame()
}

// Wrapped returns what n decorates, either a frame or a decorated node.
func (n *Node) Wrapped() frame.Framer {
	return n.wrapped
}

// Outer returns the decoration wrapping n, if any.
func (n *Node) Outer() *Node {
	return n.outer
}

// Document returns the document context of n.
func (n *Node) Document() *Document {
	return n.doc
}

// Node returns the document node of the frame.
func (n *Node) Node() *html.Node {
	return n.Frame().Node()
}

// Style returns the style of the frame.
func (n *Node) Style() *style.Style {
	return n.Frame().Style()
}

// Root returns the root of the decorated tree.
func (n *Node) Root() *Node {
	return n.root
}

// IsRoot is true for the root of a decorated tree.
func (n *Node) IsRoot() bool {
	return n.root == n
}

// SetRoot sets the root of n and of every decorated node below n. Inner
// decorations of n are updated as well.
func (n *Node) SetRoot(root *Node) {
	if root == nil {
		root = n
	}
	for d := n; d != nil; {
		d.root = root
		inner, ok := d.wrapped.(*Node)
		if !ok {
			break
		}
		d = inner
	}
	for c := n.Frame().FirstChild(); c != nil; c = c.NextSibling() {
		if child := Outermost(c); child != nil {
			child.SetRoot(root)
		}
	}
}

// Counters returns the counter table n owns.
func (n *Node) Counters() *counter.Table {
	return n.counters
}

// IsSplit is true if n has been split and has a successor fragment.
func (n *Node) IsSplit() bool {
	return n.isSplit
}

// IsSplitOff is true if n is a fragment produced by splitting another node.
func (n *Node) IsSplitOff() bool {
	return n.isSplitOff
}

// ContentSet is true once counters and generated content have been
// materialized for n.
func (n *Node) ContentSet() bool {
	return n.contentSet
}

// IsBlockLevel is true if the frame establishes a block of its own.
func (n *Node) IsBlockLevel() bool {
	return n.Frame().IsBlockLevel()
}

// IsPositioned is true if the frame is positioned relative, absolute or fixed.
func (n *Node) IsPositioned() bool {
	return n.Frame().IsPositioned()
}

// IsBody is true if n represents the document body element.
func (n *Node) IsBody() bool {
	return dom.NodeName(n.Node()) == "body"
}

func (n *Node) String() string {
	if n == nil {
		return "node<nil>"
	}
	f := n.Frame()
	s := fmt.Sprintf("node#%d<%s>", f.ID(), f.NodeName())
	if n.isSplit {
		s += "/split"
	}
	if n.isSplitOff {
		s += "/fragment"
	}
	return s
}
