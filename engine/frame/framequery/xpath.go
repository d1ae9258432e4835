package framequery

import (
	"fmt"
	"strings"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/paginate/core"
	"github.com/npillmayer/paginate/engine/frame/decor"
	"golang.org/x/net/html"
)

// NodeNavigator is an xpath.NodeNavigator for a decorated tree.
// For a description of its methods please refer to the documentation of
// antchfx/xpath.
type NodeNavigator struct {
	root, current *decor.Node
	attr          int // attributes index, -1 for the element itself
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// NewNavigator creates a navigator positioned at node, which also serves as
// the root of navigation.
func NewNavigator(node *decor.Node) *NodeNavigator {
	return &NodeNavigator{
		root:    node,
		current: node,
		attr:    -1,
	}
}

// Current returns the node the navigator is positioned at. For attributes
// this is the owning element.
func (nav *NodeNavigator) Current() *decor.Node {
	return nav.current
}

// XPath returns the nodes selected by an XPath expression, evaluated from
// root. Nodes are returned once, in the order of selection.
func XPath(root *decor.Node, expr string) ([]*decor.Node, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot compile XPath %q", expr)
	}
	var result []*decor.Node
	seen := make(map[*decor.Node]bool)
	it := x.Select(NewNavigator(root))
	for it.MoveNext() {
		n := it.Current().(*NodeNavigator).current
		if !seen[n] {
			seen[n] = true
			result = append(result, n)
		}
	}
	tracer().Debugf("xpath %q: %d nodes", expr, len(result))
	return result, nil
}

// Evaluate evaluates an XPath expression from root. The result is a
// float64, string, bool or *xpath.NodeIterator, depending on the expression.
func Evaluate(root *decor.Node, expr string) (interface{}, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot compile XPath %q", expr)
	}
	return x.Evaluate(NewNavigator(root)), nil
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	h := nav.current.Node()
	switch h.Type {
	case html.CommentNode:
		return xpath.CommentNode
	case html.TextNode:
		return xpath.TextNode
	case html.DocumentNode, html.DoctypeNode:
		return xpath.RootNode
	case html.ElementNode:
		if nav.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	}
	panic(fmt.Sprintf("unknown node type: %v", h.Type))
}

func (nav *NodeNavigator) LocalName() string {
	if nav.attr != -1 {
		return nav.current.Node().Attr[nav.attr].Key
	}
	return nav.current.Node().Data
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	h := nav.current.Node()
	switch h.Type {
	case html.CommentNode:
		return h.Data
	case html.ElementNode:
		if nav.attr != -1 {
			return h.Attr[nav.attr].Val
		}
		return innerText(nav.current)
	case html.TextNode:
		return h.Data
	}
	return innerText(nav.current)
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.current, nav.attr = nav.root, -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // from attribute to element
		return true
	}
	if nav.current == nav.root {
		return false
	}
	return nav.moveTo(nav.current.Parent())
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.attr >= len(nav.current.Node().Attr)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	return nav.moveTo(nav.current.FirstChild())
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current == nav.root {
		return false
	}
	p := nav.current.Parent()
	if p == nil {
		return false
	}
	if first := p.FirstChild(); first != nav.current {
		return nav.moveTo(first)
	}
	return false
}

func (nav *NodeNavigator) MoveToNext() bool {
	if nav.attr != -1 || nav.current == nav.root {
		return false
	}
	return nav.moveTo(nav.current.NextSibling())
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.attr != -1 || nav.current == nav.root {
		return false
	}
	return nav.moveTo(nav.current.PrevSibling())
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current, nav.attr = n.current, n.attr
	return true
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) moveTo(n *decor.Node) bool {
	if n == nil {
		return false
	}
	nav.current = n
	return true
}

// innerText concatenates the text of the decorated subtree of n.
func innerText(n *decor.Node) string {
	var b strings.Builder
	walk(n, func(d *decor.Node) {
		if h := d.Node(); h != nil && h.Type == html.TextNode {
			b.WriteString(h.Data)
		}
	})
	return b.String()
}
