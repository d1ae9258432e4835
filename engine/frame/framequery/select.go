package framequery

import (
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/paginate/core"
	"github.com/npillmayer/paginate/engine/frame/decor"
	"golang.org/x/net/html"
)

// Select returns the nodes of the subtree of root, root included, whose
// document node matches a CSS selector. Nodes are returned in document order.
func Select(root *decor.Node, selector string) ([]*decor.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot compile selector %q", selector)
	}
	var result []*decor.Node
	walk(root, func(n *decor.Node) {
		if h := n.Node(); h != nil && h.Type == html.ElementNode && sel.Match(h) {
			result = append(result, n)
		}
	})
	tracer().Debugf("select %q: %d matches", selector, len(result))
	return result, nil
}

// SelectFirst returns the first node matching selector, or nil.
func SelectFirst(root *decor.Node, selector string) (*decor.Node, error) {
	nodes, err := Select(root, selector)
	if err != nil || len(nodes) == 0 {
		return nil, err
	}
	return nodes[0], nil
}

func walk(n *decor.Node, visit func(*decor.Node)) {
	visit(n)
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		walk(c, visit)
	}
}
