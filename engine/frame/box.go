package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"

	"github.com/npillmayer/paginate/core/dimen"
	"github.com/npillmayer/paginate/engine/dom/style"
)

// Box type, following the CSS box model.
type Box struct {
	TopL            dimen.Point    // top left corner of the border box
	W, H            dimen.Dimen    // either content box or border box, depending on box-sizing
	BorderBoxSizing bool           // box-sizing = border-box ?
	Padding         [4]dimen.Dimen // inside of border
	BorderWidth     [4]dimen.Dimen // thickness of border
	Margins         [4]dimen.Dimen // outside of border
}

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// --- Handling of box dimensions --------------------------------------------

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (box *Box) DebugString() string {
	s := fmt.Sprintf("box{\n   w=%v, h=%v  (bbox-sz=%v)\n", box.W, box.H, box.BorderBoxSizing)
	s += fmt.Sprintf("   p.top=%v, p.right=%v, p.bottom=%v, p.left=%v\n",
		box.Padding[Top], box.Padding[Right],
		box.Padding[Bottom], box.Padding[Left])
	s += fmt.Sprintf("   b.top=%v, b.right=%v, b.bottom=%v, b.left=%v\n",
		box.BorderWidth[Top], box.BorderWidth[Right],
		box.BorderWidth[Bottom], box.BorderWidth[Left])
	s += fmt.Sprintf("   m.top=%v, m.right=%v, m.bottom=%v, m.left=%v\n",
		box.Margins[Top], box.Margins[Right],
		box.Margins[Bottom], box.Margins[Left])
	s += "}"
	return s
}

// ContentWidth returns the width of the content box.
func (box *Box) ContentWidth() dimen.Dimen {
	if !box.BorderBoxSizing {
		return box.W
	}
	return dimen.Max(0, box.W-box.innerDecorationWidth())
}

// ContentHeight returns the height of the content box.
func (box *Box) ContentHeight() dimen.Dimen {
	if !box.BorderBoxSizing {
		return box.H
	}
	return dimen.Max(0, box.H-box.innerDecorationHeight())
}

// SetContentWidth sets the width of the content box. Depending on wether
// `box-sizing` is set to `content-box` (default) or `border-box`, box.W will
// then reflect either the content box width or the border box width.
func (box *Box) SetContentWidth(w dimen.Dimen) {
	if box.BorderBoxSizing {
		w += box.innerDecorationWidth()
	}
	box.W = w
}

// SetContentHeight sets the height of the content box.
func (box *Box) SetContentHeight(h dimen.Dimen) {
	if box.BorderBoxSizing {
		h += box.innerDecorationHeight()
	}
	box.H = h
}

// BorderBoxWidth returns the width of a box, including padding and border.
func (box *Box) BorderBoxWidth() dimen.Dimen {
	if box.BorderBoxSizing {
		return box.W
	}
	return box.W + box.innerDecorationWidth()
}

// BorderBoxHeight returns the height of a box, including padding and border.
func (box *Box) BorderBoxHeight() dimen.Dimen {
	if box.BorderBoxSizing {
		return box.H
	}
	return box.H + box.innerDecorationHeight()
}

// TotalWidth returns the overall width of a box, including margins.
func (box *Box) TotalWidth() dimen.Dimen {
	return box.BorderBoxWidth() + box.Margins[Left] + box.Margins[Right]
}

// TotalHeight returns the overall height of a box, including margins.
func (box *Box) TotalHeight() dimen.Dimen {
	return box.BorderBoxHeight() + box.Margins[Top] + box.Margins[Bottom]
}

// OuterBox returns the margin box as a rectangle.
func (box *Box) OuterBox() dimen.Rect {
	p := dimen.Point{
		X: box.TopL.X - box.Margins[Left],
		Y: box.TopL.Y - box.Margins[Top],
	}
	return dimen.RectAt(p, box.TotalWidth(), box.TotalHeight())
}

// ContentBox returns the content box as a rectangle.
func (box *Box) ContentBox() dimen.Rect {
	p := dimen.Point{
		X: box.TopL.X + box.BorderWidth[Left] + box.Padding[Left],
		Y: box.TopL.Y + box.BorderWidth[Top] + box.Padding[Top],
	}
	return dimen.RectAt(p, box.ContentWidth(), box.ContentHeight())
}

// DecorationWidth returns the cumulated width of padding and borders,
// optionally including margins.
func (box *Box) DecorationWidth(includeMargins bool) dimen.Dimen {
	w := box.innerDecorationWidth()
	if includeMargins {
		w += box.Margins[Left] + box.Margins[Right]
	}
	return w
}

// ----------------------------------------------------------------------------------

// BoxFromStyle sets up padding, border widths and margins from style
// properties. Values which are not fixed lengths (`auto`, percentages) are
// left at 0. Fixed values for `width` and `height` are set as well.
func BoxFromStyle(box *Box, s *style.Style) *Box {
	if box == nil {
		box = &Box{}
	}
	for dir, edge := range style.Edges {
		box.Padding[dir], _ = s.Length("padding-" + edge)
		box.BorderWidth[dir], _ = s.Length("border-" + edge + "-width")
		box.Margins[dir], _ = s.Length("margin-" + edge)
	}
	box.BorderBoxSizing = s.GetPropertyValue("box-sizing") == "border-box"
	if w, ok := s.Length("width"); ok {
		box.W = w
	}
	if h, ok := s.Length("height"); ok {
		box.H = h
	}
	return box
}

func (box *Box) innerDecorationWidth() dimen.Dimen {
	return box.Padding[Left] + box.Padding[Right] +
		box.BorderWidth[Left] + box.BorderWidth[Right]
}

func (box *Box) innerDecorationHeight() dimen.Dimen {
	return box.Padding[Top] + box.Padding[Bottom] +
		box.BorderWidth[Top] + box.BorderWidth[Bottom]
}
