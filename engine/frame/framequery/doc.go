/*
Package framequery runs queries on decorated frame trees.

We use these libraries for queries:

	github.com/andybalholm/cascadia   for CSS selectors
	github.com/antchfx/xpath          for XPath expressions

Queries see outermost decorations only. CSS selectors match the document
node of a decorated node, so combinators follow the document tree and will
not match the cloned document nodes of fragments. XPath expressions
navigate the decorated tree itself, fragments and generated content
included.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framequery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'paginate.query'.
func tracer() tracing.Trace {
	return tracing.Select("paginate.query")
}
