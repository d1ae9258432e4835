package decor

import (
	"fmt"

	"github.com/npillmayer/paginate/core/dimen"
)

// Positioner computes the final position of a node on the page.
// Implementations are stateless and shared between nodes of the same kind.
type Positioner interface {
	Position(n *Node) error
	Move(n *Node, dx, dy dimen.Dimen, ignoreSelf bool)
}

// Reflower computes the geometry of a node during layout.
// block is the containing block of n, or nil for the root.
type Reflower interface {
	Reflow(n *Node, block *Node) error
	MinMaxWidth(n *Node) (min, max dimen.Dimen)
	Reset(n *Node)
}

// SetPositioner attaches a positioning strategy to n and to all inner
// decorations of n.
func (n *Node) SetPositioner(p Positioner) {
	n.positioner = p
	if inner, ok := n.wrapped.(*Node); ok {
		inner.SetPositioner(p)
	}
}

// Positioner returns the positioning strategy of n.
func (n *Node) Positioner() Positioner {
	return n.positioner
}

// SetReflower attaches a reflow strategy to n and to all inner decorations of n.
func (n *Node) SetReflower(r Reflower) {
	n.reflower = r
	if inner, ok := n.wrapped.(*Node); ok {
		inner.SetReflower(r)
	}
}

// Reflower returns the reflow strategy of n.
func (n *Node) Reflower() Reflower {
	return n.reflower
}

// Position delegates to the positioner of n.
func (n *Node) Position() error {
	return n.mustPositioner().Position(n)
}

// Move delegates to the positioner of n.
func (n *Node) Move(dx, dy dimen.Dimen, ignoreSelf bool) {
	n.mustPositioner().Move(n, dx, dy, ignoreSelf)
}

// Reflow delegates to the reflower of n.
func (n *Node) Reflow(block *Node) error {
	return n.mustReflower().Reflow(n, block)
}

// MinMaxWidth delegates to the reflower of n.
func (n *Node) MinMaxWidth() (min, max dimen.Dimen) {
	return n.mustReflower().MinMaxWidth(n)
}

// A tree built by a factory has strategies attached to every node. Missing
// strategies are wiring errors.

func (n *Node) mustPositioner() Positioner {
	if n.positioner == nil {
		panic(fmt.Sprintf("decor: no positioner attached to %s", n))
	}
	return n.positioner
}

func (n *Node) mustReflower() Reflower {
	if n.reflower == nil {
		panic(fmt.Sprintf("decor: no reflower attached to %s", n))
	}
	return n.reflower
}
