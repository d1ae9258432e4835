/*
Package decor decorates primitive frames with layout capabilities.

A decorated node (type Node) wraps exactly one frame and adds a positioning
and a reflow strategy, a table of CSS counters, the state of generated
content and the bookkeeping of page splits. Decorations may be nested: a
node may itself be wrapped by another node. Navigation always resolves to
the outermost decoration of a frame.

Frames of a document live in the arena of a Document. Decorated nodes do
not own frames; releasing a subtree from the arena drops decorations as well.

Splitting

When the content of a node overflows a page, the layout driver calls Split
with the first child which does not fit. The node is cloned into a fragment,
the child and its following siblings move to the fragment, and the split
travels up the ancestor chain until the root of the tree is reached.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package decor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'paginate.decor'.
func tracer() tracing.Trace {
	return tracing.Select("paginate.decor")
}
