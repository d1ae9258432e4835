package decor

import (
	"github.com/npillmayer/paginate/core/dimen"
	"github.com/npillmayer/paginate/engine/frame"
)

// LineBox is a line of inline-level nodes within a block-level node.
// Left and Right are the widths taken by floats at either side of the line.
type LineBox struct {
	frames      []*Node
	Y           dimen.Dimen // top of the line, relative to the page
	W, H        dimen.Dimen // width of the content and height of the line
	Left, Right dimen.Dimen // float offsets
}

// Frames returns the nodes on the line.
func (l *LineBox) Frames() []*Node {
	return l.frames
}

// IsEmpty is true for lines without any node.
func (l *LineBox) IsEmpty() bool {
	return len(l.frames) == 0
}

// Lines returns the line boxes of n.
func (n *Node) Lines() []*LineBox {
	return n.lines
}

// CurrentLine returns the last line box of n, creating one if necessary.
func (n *Node) CurrentLine() *LineBox {
	if len(n.lines) == 0 {
		return n.NewLine(n.Frame().ContentBox().TopL.Y)
	}
	return n.lines[len(n.lines)-1]
}

// NewLine starts a new line box at vertical position y.
func (n *Node) NewLine(y dimen.Dimen) *LineBox {
	l := &LineBox{Y: y}
	n.lines = append(n.lines, l)
	return l
}

// AddFrameToLine puts c on the current line of n, growing it to the size of c.
func (n *Node) AddFrameToLine(c *Node) {
	l := n.CurrentLine()
	l.frames = append(l.frames, c)
	box := &c.Frame().Box
	l.W += box.TotalWidth()
	l.H = dimen.Max(l.H, box.TotalHeight())
}

// RemoveFramesFromLine truncates the line boxes of n in front of the first
// node which is child or one of its following siblings, or a descendant of
// them. Lines following the truncated one are dropped.
func (n *Node) RemoveFramesFromLine(child *Node) {
	moving := make(map[*frame.Frame]bool)
	for f := child.Frame(); f != nil; f = f.NextSibling() {
		moving[f] = true
	}
	for i, l := range n.lines {
		for j, c := range l.frames {
			if !n.isMoving(c.Frame(), moving) {
				continue
			}
			l.frames = l.frames[:j]
			l.W = 0
			for _, rest := range l.frames {
				l.W += rest.Frame().TotalWidth()
			}
			if j == 0 {
				n.lines = n.lines[:i]
			} else {
				n.lines = n.lines[:i+1]
			}
			tracer().Debugf("%s: %d line(s) left after removing %s", n, len(n.lines), child)
			return
		}
	}
}

// isMoving is true if f or one of its ancestors below n is in set moving.
func (n *Node) isMoving(f *frame.Frame, moving map[*frame.Frame]bool) bool {
	top := n.Frame()
	for ; f != nil && f != top; f = f.Parent() {
		if moving[f] {
			return true
		}
	}
	return false
}

// RecalculateFloatOffsets computes the float offsets of the line boxes of n
// from the floats registered with the root, which live in n and overlap
// a line vertically.
func (n *Node) RecalculateFloatOffsets() {
	for _, l := range n.lines {
		l.Left, l.Right = 0, 0
		for _, float := range n.Floats() {
			if float.FindBlockParent() != n {
				continue
			}
			r := float.Frame().OuterBox()
			if r.BotR.Y <= l.Y || r.TopL.Y >= l.Y+l.H {
				continue
			}
			if float.Style().GetPropertyValue("float") == "right" {
				l.Right += r.Width()
			} else {
				l.Left += r.Width()
			}
		}
	}
}
