package decor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/paginate/core/dimen"
	"github.com/npillmayer/paginate/engine/dom"
	"github.com/npillmayer/paginate/engine/dom/style"
	"github.com/npillmayer/paginate/engine/frame"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// recorder is a positioner and reflower counting its invocations.
type recorder struct {
	positioned, moved, reflowed, resets int
}

func (r *recorder) Position(n *Node) error {
	r.positioned++
	return nil
}

func (r *recorder) Move(n *Node, dx, dy dimen.Dimen, ignoreSelf bool) {
	r.moved++
	if !ignoreSelf {
		p := n.Frame().Position()
		n.Frame().SetPosition(*p.Shift(dimen.Point{X: dx, Y: dy}))
	}
}

func (r *recorder) Reflow(n *Node, block *Node) error {
	r.reflowed++
	n.MaterializeContent()
	return nil
}

func (r *recorder) MinMaxWidth(n *Node) (dimen.Dimen, dimen.Dimen) {
	return 1 * dimen.PT, 2 * dimen.PT
}

func (r *recorder) Reset(n *Node) {
	r.resets++
}

type testFactory struct {
	strategy *recorder
}

func (tf *testFactory) DecorateFrame(f *frame.Frame, doc *Document, root *Node) *Node {
	n := Wrap(f, doc)
	n.SetPositioner(tf.strategy)
	n.SetReflower(tf.strategy)
	n.SetRoot(root)
	return n
}

func newTestDocument() (*Document, *recorder) {
	r := &recorder{}
	return NewDocument(&testFactory{strategy: r}), r
}

// buildTree decorates an HTML snippet. The root of the tree is the document
// node; elements get their `style` attribute as style.
func buildTree(t *testing.T, doc *Document, snippet string) *Node {
	h, err := html.Parse(strings.NewReader(snippet))
	require.NoError(t, err)
	root := doc.NewNode(h, style.New(), nil)
	addChildren(t, root, h)
	return root
}

func addChildren(t *testing.T, parent *Node, h *html.Node) {
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		var s *style.Style
		switch {
		case c.Type == html.TextNode && strings.TrimSpace(c.Data) != "":
			s = style.New()
		case c.Type == html.ElementNode && c.Data != "head":
			decls, _ := dom.Attr(c, "style")
			var err error
			s, err = style.Parse(decls)
			require.NoError(t, err)
		default:
			continue
		}
		s.Inherit(parent.Style())
		n := parent.Document().NewNode(c, s, parent.Root())
		parent.AppendChild(n)
		addChildren(t, n, c)
	}
}

func byID(n *Node, id string) *Node {
	if v, ok := dom.Attr(n.Node(), "id"); ok && v == id {
		return n
	}
	for _, c := range n.Children() {
		if found := byID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func ids(nodes []*Node) []string {
	var s []string
	for _, n := range nodes {
		id, ok := dom.Attr(n.Node(), "id")
		if !ok {
			id, _ = dom.Attr(n.Node(), dom.OriginalIDAttr)
			id = "~" + id
		}
		s = append(s, id)
	}
	return s
}

// dump renders every piece of state of a subtree a split may touch.
func dump(n *Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n *Node, level int) {
	f := n.Frame()
	fmt.Fprintf(b, "%s%s %v {%s} split=%v/%v content=%v counters=%s lines=%d\n",
		strings.Repeat("  ", level), n, f.Node().Attr, f.Style(), n.isSplit, n.isSplitOff,
		n.contentSet, n.counters, len(n.lines))
	for _, c := range n.Children() {
		dumpNode(b, c, level+1)
	}
}

// materialize materializes content in document order, the way a layout pass does.
func materialize(n *Node) {
	n.MaterializeContent()
	for _, c := range n.Children() {
		materialize(c)
	}
}
