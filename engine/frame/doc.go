/*
Package frame deals with the primitive frames of a layout tree.

A frame is the rectangular box a document node is rendered into. Boxes follow
the CSS box model. Frames reference a document node and a style, carry their
geometry and are linked into a tree of their own, which is independent from
the document tree they originated from.

Frames live in an arena (type Tree) and are addressed by stable IDs. All tree
links are IDs, so there are no pointer cycles between frames. Releasing a
subtree drops its entries from the arena. A frame may be decorated by an
object of a higher layer; the frame knows its current decorator, but does not
interpret it.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'paginate.frame'.
func tracer() tracing.Trace {
	return tracing.Select("paginate.frame")
}
