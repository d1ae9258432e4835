package decor

import (
	"errors"

	"github.com/npillmayer/paginate/core"
	"github.com/npillmayer/paginate/engine/frame"
)

// ErrNotAChild is returned for operations referring to a node which is not
// a direct child of the node operated on.
var ErrNotAChild = errors.New("node is not a child")

// Mutations accept frames as well as decorated nodes. The frame tree holds
// primitive links only, so decorated nodes are unwrapped down to their frame.
// Decorated nodes added to n get the root of n.

// PrependChild inserts c as the first child of n.
func (n *Node) PrependChild(c frame.Framer) {
	n.Frame().PrependChild(c.Frame())
	n.adopt(c)
}

// AppendChild inserts c as the last child of n.
func (n *Node) AppendChild(c frame.Framer) {
	n.Frame().AppendChild(c.Frame())
	n.adopt(c)
}

// InsertChildBefore inserts c as the previous sibling of child ref.
func (n *Node) InsertChildBefore(c frame.Framer, ref frame.Framer) error {
	if err := n.Frame().InsertChildBefore(c.Frame(), unwrap(ref)); err != nil {
		return notAChild(err, "cannot insert before %v", ref)
	}
	n.adopt(c)
	return nil
}

// InsertChildAfter inserts c as the next sibling of child ref.
func (n *Node) InsertChildAfter(c frame.Framer, ref frame.Framer) error {
	if err := n.Frame().InsertChildAfter(c.Frame(), unwrap(ref)); err != nil {
		return notAChild(err, "cannot insert after %v", ref)
	}
	n.adopt(c)
	return nil
}

// RemoveChild detaches child c from n.
func (n *Node) RemoveChild(c frame.Framer) error {
	if _, err := n.Frame().RemoveChild(c.Frame()); err != nil {
		return notAChild(err, "cannot remove %v", c)
	}
	if d := Outermost(c.Frame()); d != nil {
		d.clearNavigationCaches()
	}
	return nil
}

func (n *Node) adopt(c frame.Framer) {
	if d := Outermost(c.Frame()); d != nil {
		d.clearNavigationCaches()
		if d.root != n.root {
			d.SetRoot(n.root)
		}
	}
}

func unwrap(f frame.Framer) *frame.Frame {
	if f == nil {
		return nil
	}
	return f.Frame()
}

func notAChild(err error, format string, v ...interface{}) error {
	if errors.Is(err, frame.ErrNotAChild) {
		err = ErrNotAChild
	}
	return core.WrapError(err, core.ESTRUCTURE, format, v...)
}
