package layout

import (
	"github.com/npillmayer/paginate/core"
	"github.com/npillmayer/paginate/core/dimen"
	"github.com/npillmayer/paginate/engine/frame"
	"github.com/npillmayer/paginate/engine/frame/decor"
)

// Page is the page box content is laid out into.
type Page struct {
	dimen.Rect                // page size
	Margins    [4]dimen.Dimen // top, right, bottom, left
}

// NewPage creates a page of the given paper size with equal margins at
// every side.
func NewPage(papersize dimen.Point, margin dimen.Dimen) *Page {
	page := &Page{}
	page.Rect.BotR = papersize
	for i := range page.Margins {
		page.Margins[i] = margin
	}
	return page
}

// Area returns the page area, i.e. the page without its margins.
func (page *Page) Area() dimen.Rect {
	return dimen.Rect{
		TopL: dimen.Point{
			X: page.TopL.X + page.Margins[frame.Left],
			Y: page.TopL.Y + page.Margins[frame.Top],
		},
		BotR: dimen.Point{
			X: page.BotR.X - page.Margins[frame.Right],
			Y: page.BotR.Y - page.Margins[frame.Bottom],
		},
	}
}

// MaxPages limits the number of pages produced by Paginate.
const MaxPages = 10000

// Paginate lays out the tree below root onto pages. Every child of root is
// laid out into the area of a page. Content not fitting onto a page is
// split off into a fragment, which becomes the next child of root and
// thus the next page. Paginate returns the children of root, one per page.
//
// Fragments carry the counter values of the nodes they have been split off
// from at the time of the split, which a Reset does not restore. Paginate
// therefore refuses a root with fragments among its children, returning an
// error with code core.EINVALID. A tree which fitted onto a single page may
// be reset and paginated again.
func Paginate(root *decor.Node, page *Page) ([]*decor.Node, error) {
	if page == nil || page.Area().IsEmpty() {
		return nil, core.Error(core.EINVALID, "cannot paginate onto an empty page area")
	}
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		if c.IsSplitOff() {
			return nil, core.Error(core.EINVALID, "cannot paginate %s again: it holds fragments", root)
		}
	}
	root.MaterializeContent()
	var pages []*decor.Node
	for top := root.FirstChild(); top != nil; top = top.NextSibling() {
		if len(pages) == MaxPages {
			return pages, core.Error(core.EINTERNAL, "pagination exceeds %d pages", MaxPages)
		}
		top.Frame().ContainingBlock = page.Area()
		if err := top.Reflow(root); err != nil {
			tracer().Errorf("layout of page %d failed: %v", len(pages)+1, err)
			return pages, err
		}
		if err := top.Position(); err != nil {
			return pages, err
		}
		tracer().Infof("page %d laid out: %s", len(pages)+1, top)
		pages = append(pages, top)
	}
	return pages, nil
}

// pageLevel returns the ancestor of n, n included, which is a child of the
// root of the tree.
func pageLevel(n *decor.Node) *decor.Node {
	for ; n != nil; n = n.Parent() {
		if p := n.Parent(); p != nil && p.IsRoot() {
			return n
		}
	}
	return nil
}

// pageArea returns the page area n is laid out into.
func pageArea(n *decor.Node) dimen.Rect {
	if top := pageLevel(n); top != nil {
		return top.Frame().ContainingBlock
	}
	return dimen.Rect{}
}

// pageLimit returns the bottom of the page area n is laid out into, or
// dimen.Infinity outside of pagination.
func pageLimit(n *decor.Node) dimen.Dimen {
	area := pageArea(n)
	if area.IsEmpty() {
		return dimen.Infinity
	}
	return area.BotR.Y
}
