/*
Package layout lays out a decorated frame tree onto pages.

The package provides the collaborators a decorated tree needs to be laid out:
a factory attaching strategies to frames, positioners for static, relative,
absolute and fixed positioning, and reflowers for block, inline and hidden
frames. BuildTree creates a decorated tree from an HTML parse tree, Paginate
drives the layout page by page.

Geometry is deliberately simple. Text is measured with a fixed advance per
character, derived from the font size. Block boxes stack vertically, inline
boxes fill line boxes from left to right.

Pagination

Every child of the root of a tree is laid out on a page of its own. When a
block child does not fit onto the current page, its parent is split in front
of it. The split travels up to the root, where the fragments become the
next child of the root and therefore the next page.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'paginate.layout'.
func tracer() tracing.Trace {
	return tracing.Select("paginate.layout")
}
