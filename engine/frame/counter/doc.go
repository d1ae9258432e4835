/*
Package counter implements tables of CSS counters and their formatting.

Counters are scoped to the frames of a tree: every frame owns a Table, and
a counter lives in the table of the nearest ancestor which has reset it.
Scoping itself is done by the owner of the tables; this package provides the
tables, the parsing of `counter-reset` and `counter-increment` values and the
conversion of counter values to list-style representations.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package counter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'paginate.counter'.
func tracer() tracing.Trace {
	return tracing.Select("paginate.counter")
}
