package layout

import (
	"github.com/npillmayer/paginate/core/dimen"
	"github.com/npillmayer/paginate/engine/dom/style"
	"github.com/npillmayer/paginate/engine/frame"
	"github.com/npillmayer/paginate/engine/frame/decor"
)

// StaticPositioner leaves nodes where the reflower placed them.
type StaticPositioner struct{}

// Position is a no-op for statically positioned nodes.
func (StaticPositioner) Position(n *decor.Node) error {
	return nil
}

// Move shifts n and its subtree.
func (StaticPositioner) Move(n *decor.Node, dx, dy dimen.Dimen, ignoreSelf bool) {
	move(n, dx, dy, ignoreSelf)
}

// RelativePositioner offsets nodes from their position in flow by the
// values of properties `top`, `left`, `bottom` and `right`.
type RelativePositioner struct{}

// Position shifts n by its relative offsets. `top` wins over `bottom` and
// `left` wins over `right`.
func (RelativePositioner) Position(n *decor.Node) error {
	dx, dy := offsets(n.Style())
	if dx != 0 || dy != 0 {
		tracer().Debugf("%s: relative offset (%v,%v)", n, dx, dy)
		n.Move(dx, dy, false)
	}
	return nil
}

// Move shifts n and its subtree.
func (RelativePositioner) Move(n *decor.Node, dx, dy dimen.Dimen, ignoreSelf bool) {
	move(n, dx, dy, ignoreSelf)
}

// AbsolutePositioner places nodes relative to the padding box of their
// nearest positioned ancestor.
type AbsolutePositioner struct{}

// Position places n at offsets `top` and `left` of its positioned parent.
func (AbsolutePositioner) Position(n *decor.Node) error {
	p := n.FindPositionedParent()
	if p == nil || p.IsRoot() {
		return placeAt(n, pageArea(n).TopL)
	}
	return placeAt(n, paddingBox(p.Frame()).TopL)
}

// Move shifts n and its subtree.
func (AbsolutePositioner) Move(n *decor.Node, dx, dy dimen.Dimen, ignoreSelf bool) {
	move(n, dx, dy, ignoreSelf)
}

// FixedPositioner places nodes relative to the page area.
type FixedPositioner struct{}

// Position places n at offsets `top` and `left` of the page area.
func (FixedPositioner) Position(n *decor.Node) error {
	return placeAt(n, pageArea(n).TopL)
}

// Move shifts n and its subtree.
func (FixedPositioner) Move(n *decor.Node, dx, dy dimen.Dimen, ignoreSelf bool) {
	move(n, dx, dy, ignoreSelf)
}

// move shifts the subtree of n, undecorated frames included.
func move(n *decor.Node, dx, dy dimen.Dimen, ignoreSelf bool) {
	if !ignoreSelf {
		shift(n.Frame(), dx, dy)
		for _, l := range n.Lines() {
			l.Y += dy
		}
	}
	for c := n.Frame().FirstChild(); c != nil; c = c.NextSibling() {
		if d := decor.Outermost(c); d != nil {
			d.Move(dx, dy, false)
		} else {
			moveFrame(c, dx, dy)
		}
	}
}

func moveFrame(f *frame.Frame, dx, dy dimen.Dimen) {
	shift(f, dx, dy)
	for c := f.FirstChild(); c != nil; c = c.NextSibling() {
		moveFrame(c, dx, dy)
	}
}

func shift(f *frame.Frame, dx, dy dimen.Dimen) {
	p := f.Position()
	f.SetPosition(*p.Shift(dimen.Point{X: dx, Y: dy}))
}

func placeAt(n *decor.Node, origin dimen.Point) error {
	f := n.Frame()
	left, _ := n.Style().Length("left")
	top, _ := n.Style().Length("top")
	x := origin.X + left + f.Margins[frame.Left]
	y := origin.Y + top + f.Margins[frame.Top]
	p := f.Position()
	n.Move(x-p.X, y-p.Y, false)
	return nil
}

func offsets(s *style.Style) (dx, dy dimen.Dimen) {
	if left, ok := s.Length("left"); ok {
		dx = left
	} else if right, ok := s.Length("right"); ok {
		dx = -right
	}
	if top, ok := s.Length("top"); ok {
		dy = top
	} else if bottom, ok := s.Length("bottom"); ok {
		dy = -bottom
	}
	return
}

func paddingBox(f *frame.Frame) dimen.Rect {
	p := dimen.Point{
		X: f.TopL.X + f.BorderWidth[frame.Left],
		Y: f.TopL.Y + f.BorderWidth[frame.Top],
	}
	w := f.BorderBoxWidth() - f.BorderWidth[frame.Left] - f.BorderWidth[frame.Right]
	h := f.BorderBoxHeight() - f.BorderWidth[frame.Top] - f.BorderWidth[frame.Bottom]
	return dimen.RectAt(p, w, h)
}
