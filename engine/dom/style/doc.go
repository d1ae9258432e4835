/*
Package style holds the CSS properties of a frame.

A Style keeps the properties as specified for a node, a link to the style
it inherits from, and a cache of computed values. The cascade itself is
not part of this module: styles arrive here already resolved into
declaration blocks.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'paginate.frame'.
func tracer() tracing.Trace {
	return tracing.Select("paginate.frame")
}
