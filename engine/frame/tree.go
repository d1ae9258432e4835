package frame

import (
	"errors"

	"github.com/npillmayer/paginate/engine/dom/style"
	"golang.org/x/net/html"
)

// ErrNotAChild is returned by tree mutations referring to a frame which is
// not a child of the frame mutated.
var ErrNotAChild = errors.New("frame is not a child")

// Tree is an arena of frames. Frames are created by the tree and addressed
// by ID. A tree is not safe for concurrent use; layout runs single-threaded.
type Tree struct {
	frames []*Frame // index 0 is NoFrame
	live   int
}

// NewTree creates an empty frame arena.
func NewTree() *Tree {
	return &Tree{frames: make([]*Frame, 1, 64)}
}

// NewFrame creates a detached frame for a document node.
// A nil style is replaced by an empty one.
func (t *Tree) NewFrame(h *html.Node, s *style.Style) *Frame {
	f := &Frame{
		id:   ID(len(t.frames)),
		tree: t,
		node: h,
	}
	f.SetStyle(s)
	t.frames = append(t.frames, f)
	t.live++
	return f
}

// Frame returns the frame for an ID, or nil if there is none (any more).
func (t *Tree) Frame(id ID) *Frame {
	if id <= NoFrame || int(id) >= len(t.frames) {
		return nil
	}
	return t.frames[id]
}

// Len returns the number of live frames in the tree.
func (t *Tree) Len() int {
	return t.live
}

// Release removes f and all its descendants from the tree. f is detached
// from its parent first. Released frames lose their decorators and
// document nodes; IDs of released frames are not re-used.
func (t *Tree) Release(f *Frame) {
	if f == nil || f.tree != t || t.frames[f.id] != f {
		return
	}
	f.detach()
	t.release(f)
}

func (t *Tree) release(f *Frame) {
	for c := t.Frame(f.firstChild); c != nil; {
		next := t.Frame(c.nextSibling)
		t.release(c)
		c = next
	}
	tracer().Debugf("release %s", f)
	t.frames[f.id] = nil
	t.live--
	f.firstChild, f.lastChild = NoFrame, NoFrame
	f.parent, f.prevSibling, f.nextSibling = NoFrame, NoFrame, NoFrame
	f.decorator = nil
	f.node = nil
}

// --- Navigation ------------------------------------------------------------

// Parent returns the parent frame of f, or nil.
func (f *Frame) Parent() *Frame {
	return f.tree.Frame(f.parent)
}

// FirstChild returns the first child of f, or nil.
func (f *Frame) FirstChild() *Frame {
	return f.tree.Frame(f.firstChild)
}

// LastChild returns the last child of f, or nil.
func (f *Frame) LastChild() *Frame {
	return f.tree.Frame(f.lastChild)
}

// PrevSibling returns the previous sibling of f, or nil.
func (f *Frame) PrevSibling() *Frame {
	return f.tree.Frame(f.prevSibling)
}

// NextSibling returns the next sibling of f, or nil.
func (f *Frame) NextSibling() *Frame {
	return f.tree.Frame(f.nextSibling)
}

// Children returns the children of f in order.
func (f *Frame) Children() []*Frame {
	var children []*Frame
	for c := f.FirstChild(); c != nil; c = c.NextSibling() {
		children = append(children, c)
	}
	return children
}

// ChildCount returns the number of children of f.
func (f *Frame) ChildCount() int {
	n := 0
	for c := f.FirstChild(); c != nil; c = c.NextSibling() {
		n++
	}
	return n
}

// IsChild is true if c is a direct child of f.
func (f *Frame) IsChild(c *Frame) bool {
	return c != nil && c.tree == f.tree && c.parent == f.id && f.tree.Frame(c.id) == c
}

// --- Mutation --------------------------------------------------------------

// PrependChild inserts c as the first child of f. If c is attached to
// a parent, it is detached first.
func (f *Frame) PrependChild(c *Frame) {
	f.checkInsert(c)
	c.detach()
	if first := f.FirstChild(); first != nil {
		first.prevSibling = c.id
		c.nextSibling = first.id
	} else {
		f.lastChild = c.id
	}
	f.firstChild = c.id
	c.parent = f.id
}

// AppendChild inserts c as the last child of f. If c is attached to
// a parent, it is detached first.
func (f *Frame) AppendChild(c *Frame) {
	f.checkInsert(c)
	c.detach()
	if last := f.LastChild(); last != nil {
		last.nextSibling = c.id
		c.prevSibling = last.id
	} else {
		f.firstChild = c.id
	}
	f.lastChild = c.id
	c.parent = f.id
}

// InsertChildBefore inserts c as the previous sibling of child ref.
// If ref is nil, c is appended.
func (f *Frame) InsertChildBefore(c *Frame, ref *Frame) error {
	if ref == nil {
		f.AppendChild(c)
		return nil
	}
	if !f.IsChild(ref) {
		return ErrNotAChild
	}
	if c == ref {
		return nil
	}
	f.checkInsert(c)
	c.detach()
	if prev := ref.PrevSibling(); prev != nil {
		prev.nextSibling = c.id
		c.prevSibling = prev.id
	} else {
		f.firstChild = c.id
	}
	ref.prevSibling = c.id
	c.nextSibling = ref.id
	c.parent = f.id
	return nil
}

// InsertChildAfter inserts c as the next sibling of child ref.
// If ref is nil, c is prepended.
func (f *Frame) InsertChildAfter(c *Frame, ref *Frame) error {
	if ref == nil {
		f.PrependChild(c)
		return nil
	}
	if !f.IsChild(ref) {
		return ErrNotAChild
	}
	if c == ref {
		return nil
	}
	f.checkInsert(c)
	c.detach()
	if next := ref.NextSibling(); next != nil {
		next.prevSibling = c.id
		c.nextSibling = next.id
	} else {
		f.lastChild = c.id
	}
	ref.nextSibling = c.id
	c.prevSibling = ref.id
	c.parent = f.id
	return nil
}

// RemoveChild detaches child c from f and returns it.
func (f *Frame) RemoveChild(c *Frame) (*Frame, error) {
	if !f.IsChild(c) {
		return nil, ErrNotAChild
	}
	c.detach()
	return c, nil
}

func (f *Frame) detach() {
	parent := f.Parent()
	if parent == nil {
		return
	}
	if prev := f.PrevSibling(); prev != nil {
		prev.nextSibling = f.nextSibling
	} else {
		parent.firstChild = f.nextSibling
	}
	if next := f.NextSibling(); next != nil {
		next.prevSibling = f.prevSibling
	} else {
		parent.lastChild = f.prevSibling
	}
	f.parent, f.prevSibling, f.nextSibling = NoFrame, NoFrame, NoFrame
}

// checkInsert panics on inserts which would corrupt the arena.
func (f *Frame) checkInsert(c *Frame) {
	if c == nil {
		panic("frame: cannot insert nil frame")
	}
	if c.tree != f.tree || f.tree.Frame(c.id) != c {
		panic("frame: cannot insert frame of another tree or a released frame")
	}
	for a := f; a != nil; a = a.Parent() {
		if a == c {
			panic("frame: cannot insert a frame into its own subtree")
		}
	}
}
