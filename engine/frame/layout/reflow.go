package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/paginate/core/dimen"
	"github.com/npillmayer/paginate/engine/dom/style"
	"github.com/npillmayer/paginate/engine/frame"
	"github.com/npillmayer/paginate/engine/frame/decor"
)

// BlockReflower lays out block containers. Block-level children are stacked
// vertically, inline-level children fill line boxes. Floats are registered
// with the root of the tree, absolutely positioned children are placed
// after reflow.
//
// A block-level child or a line extending beyond the bottom of the page area
// splits the container in front of it, unless it is the first thing placed
// in the container. A child with `page-break-before: always` forces a split
// the same way.
type BlockReflower struct{}

// Reflow computes the geometry of n and of its subtree.
func (BlockReflower) Reflow(n *decor.Node, block *decor.Node) error {
	n.MaterializeContent()
	f := n.Frame()
	s := n.Style()
	frame.BoxFromStyle(&f.Box, s)
	if block == nil || block.IsRoot() {
		// top of a page, containing block has been set up by the paginator
		f.TopL.Y = f.ContainingBlock.TopL.Y + f.Margins[frame.Top]
	} else {
		f.ContainingBlock = block.Frame().ContentBox()
	}
	cb := f.ContainingBlock
	f.TopL.X = cb.TopL.X + f.Margins[frame.Left]
	if _, fixed := s.Length("width"); !fixed {
		if p, ok := s.Percentage("width"); ok {
			f.SetContentWidth(p.Of(cb.Width()))
		} else {
			f.SetContentWidth(dimen.Max(0, cb.Width()-f.DecorationWidth(true)))
		}
	}
	content := f.ContentBox()
	fl := flow{n: n, limit: pageLimit(n), y: content.TopL.Y, x: content.TopL.X, width: content.Width()}
	if err := fl.layoutChildren(); err != nil {
		return err
	}
	if _, fixed := s.Length("height"); !fixed {
		f.SetContentHeight(fl.bottom() - content.TopL.Y)
	}
	n.RecalculateFloatOffsets()
	tracer().Debugf("%s: reflowed to %v×%v at %v", n, f.W, f.H, f.TopL)
	return nil
}

// MinMaxWidth returns the widest of the minimum and maximum widths of the
// children of n, plus the decoration of n.
func (BlockReflower) MinMaxWidth(n *decor.Node) (dimen.Dimen, dimen.Dimen) {
	var min, max dimen.Dimen
	for _, c := range n.Children() {
		cmin, cmax := c.MinMaxWidth()
		min, max = dimen.Max(min, cmin), dimen.Max(max, cmax)
	}
	box := frame.BoxFromStyle(nil, n.Style())
	d := box.DecorationWidth(true)
	if w, fixed := n.Style().Length("width"); fixed {
		return w + d, w + d
	}
	return min + d, max + d
}

// Reset is a no-op; a block reflower keeps no state in between passes.
func (BlockReflower) Reset(n *decor.Node) {}

// flow is the state of laying out the children of a block container.
type flow struct {
	n        *decor.Node
	x, y     dimen.Dimen // left edge of content, current vertical position
	width    dimen.Dimen
	limit    dimen.Dimen // bottom of the page area
	placed   bool        // something has been placed in the container
	inInline bool        // the current line has been started
}

func (fl *flow) layoutChildren() error {
	// the children following a split have moved, NextSibling will return nil
	for c := fl.n.FirstChild(); c != nil; c = c.NextSibling() {
		f := c.Frame()
		var err error
		var stop bool
		switch {
		case f.Display().Contains(frame.DisplayNone):
			err = c.Reflow(fl.n)
		case f.IsAbsolute():
			err = fl.layoutAbsolute(c)
		case f.IsFloating():
			err = fl.layoutFloat(c)
		case isBlockBox(f):
			stop, err = fl.layoutBlock(c)
		default:
			stop, err = fl.layoutInline(c)
		}
		if err != nil || stop {
			return err
		}
	}
	return nil
}

func (fl *flow) layoutBlock(c *decor.Node) (bool, error) {
	fl.closeLine()
	if fl.placed && c.Style().GetPropertyValue("page-break-before") == "always" {
		tracer().Debugf("%s: forced page break before %s", fl.n, c)
		return true, fl.n.Split(c, true, true)
	}
	mt, _ := c.Style().Length("margin-top")
	c.Frame().TopL.Y = fl.y + mt
	if err := c.Reflow(fl.n); err != nil {
		return true, err
	}
	box := &c.Frame().Box
	bottom := box.TopL.Y + box.BorderBoxHeight() + box.Margins[frame.Bottom]
	if fl.placed && bottom > fl.limit {
		tracer().Debugf("%s: %s overflows page at %v", fl.n, c, bottom)
		return true, fl.n.Split(c, true, false)
	}
	fl.y, fl.placed = bottom, true
	return false, c.Position()
}

func (fl *flow) layoutInline(c *decor.Node) (bool, error) {
	f := c.Frame()
	f.TopL = dimen.Point{X: fl.x, Y: fl.y}
	if err := c.Reflow(fl.n); err != nil {
		return true, err
	}
	l := fl.n.CurrentLine()
	if !fl.inInline {
		if !l.IsEmpty() {
			l = fl.n.NewLine(fl.y)
		}
		l.Y = fl.y
		fl.inInline = true
	} else if !l.IsEmpty() && l.W+f.TotalWidth() > fl.width {
		l = fl.n.NewLine(l.Y + l.H)
	}
	dx := fl.x + l.W + f.Margins[frame.Left] - f.TopL.X
	dy := l.Y + f.Margins[frame.Top] - f.TopL.Y
	c.Move(dx, dy, false)
	fl.n.AddFrameToLine(c)
	if len(l.Frames()) == 1 && l.Y+l.H > fl.limit && (fl.placed || len(fl.n.Lines()) > 1) {
		tracer().Debugf("%s: line starting with %s overflows page", fl.n, c)
		err := fl.n.Split(c, true, false) // drops the line
		fl.inInline = false
		if lines := fl.n.Lines(); len(lines) > 0 {
			last := lines[len(lines)-1]
			fl.y = dimen.Max(fl.y, last.Y+last.H)
		}
		return true, err
	}
	return false, c.Position()
}

func (fl *flow) layoutFloat(c *decor.Node) error {
	f := c.Frame()
	f.TopL.Y = fl.y
	if err := c.Reflow(fl.n); err != nil {
		return err
	}
	if _, fixed := c.Style().Length("width"); !fixed {
		_, max := c.MinMaxWidth()
		f.SetContentWidth(dimen.Max(0, dimen.Min(max, fl.width)-f.DecorationWidth(true)))
	}
	x := fl.x + f.Margins[frame.Left]
	if c.Style().GetPropertyValue("float") == "right" {
		x = fl.x + fl.width - f.TotalWidth() + f.Margins[frame.Left]
	}
	c.Move(x-f.TopL.X, fl.y+f.Margins[frame.Top]-f.TopL.Y, false)
	fl.n.AddFloat(c)
	return c.Position()
}

func (fl *flow) layoutAbsolute(c *decor.Node) error {
	c.Frame().TopL.Y = fl.y
	if err := c.Reflow(fl.n); err != nil {
		return err
	}
	return c.Position()
}

func (fl *flow) closeLine() {
	if fl.inInline {
		l := fl.n.CurrentLine()
		fl.y = l.Y + l.H
		fl.inInline, fl.placed = false, true
	}
}

func (fl *flow) bottom() dimen.Dimen {
	fl.closeLine()
	return fl.y
}

// isBlockBox is true for frames stacked vertically by their container.
func isBlockBox(f *frame.Frame) bool {
	d := f.Display()
	return !f.IsText() && !d.Contains(frame.InlineMode) &&
		(d.Contains(frame.BlockMode) || d.Contains(frame.TablePartMode))
}

// --- Inline ----------------------------------------------------------------

// InlineReflower lays out text and inline elements. Text is measured with
// an advance of half the font size per character and a line height of
// 1.2 times the font size. Inline elements are as wide as their children
// side by side.
type InlineReflower struct{}

// Reflow computes the size of n. The position of n is decided by its
// block container.
func (InlineReflower) Reflow(n *decor.Node, block *decor.Node) error {
	n.MaterializeContent()
	f := n.Frame()
	if block != nil {
		f.ContainingBlock = block.Frame().ContentBox()
	}
	if f.IsText() {
		size := fontSize(n.Style())
		f.W = advance(size) * dimen.Dimen(utf8.RuneCountInString(f.Node().Data))
		f.H = lineHeight(size)
		return nil
	}
	frame.BoxFromStyle(&f.Box, n.Style())
	origin := f.ContentBox().TopL
	var w, h dimen.Dimen
	for _, c := range n.Children() {
		cf := c.Frame()
		cf.TopL = dimen.Point{X: origin.X + w, Y: origin.Y}
		if err := c.Reflow(block); err != nil {
			return err
		}
		w += cf.TotalWidth()
		h = dimen.Max(h, cf.TotalHeight())
	}
	if _, fixed := n.Style().Length("width"); !fixed {
		f.SetContentWidth(w)
	}
	if _, fixed := n.Style().Length("height"); !fixed {
		f.SetContentHeight(h)
	}
	return nil
}

// MinMaxWidth returns the width of the longest word as minimum and the
// width of the complete content as maximum.
func (InlineReflower) MinMaxWidth(n *decor.Node) (dimen.Dimen, dimen.Dimen) {
	if n.Frame().IsText() {
		adv := advance(fontSize(n.Style()))
		var min dimen.Dimen
		for _, word := range strings.Fields(n.Node().Data) {
			min = dimen.Max(min, adv*dimen.Dimen(utf8.RuneCountInString(word)))
		}
		return min, adv * dimen.Dimen(utf8.RuneCountInString(n.Node().Data))
	}
	var min, max dimen.Dimen
	for _, c := range n.Children() {
		cmin, cmax := c.MinMaxWidth()
		min = dimen.Max(min, cmin)
		max += cmax
	}
	d := frame.BoxFromStyle(nil, n.Style()).DecorationWidth(true)
	return min + d, max + d
}

// Reset is a no-op.
func (InlineReflower) Reset(n *decor.Node) {}

// DefaultFontSize is used for nodes without a fixed `font-size`.
const DefaultFontSize = 12 * dimen.PT

func fontSize(s *style.Style) dimen.Dimen {
	if size, ok := s.Length("font-size"); ok && size > 0 {
		return size
	}
	return DefaultFontSize
}

func advance(size dimen.Dimen) dimen.Dimen {
	return size / 2
}

func lineHeight(size dimen.Dimen) dimen.Dimen {
	return size * 6 / 5
}

// --- None ------------------------------------------------------------------

// NullReflower is used for nodes with `display: none`. They take no space
// and generate no content.
type NullReflower struct{}

// Reflow clears the geometry of n.
func (NullReflower) Reflow(n *decor.Node, block *decor.Node) error {
	f := n.Frame()
	f.Box = frame.Box{}
	return nil
}

// MinMaxWidth is 0 for hidden nodes.
func (NullReflower) MinMaxWidth(n *decor.Node) (dimen.Dimen, dimen.Dimen) {
	return 0, 0
}

// Reset is a no-op.
func (NullReflower) Reset(n *decor.Node) {}
