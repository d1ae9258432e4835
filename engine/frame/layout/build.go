package layout

import (
	"errors"
	"strings"

	"github.com/npillmayer/paginate/core"
	"github.com/npillmayer/paginate/engine/dom"
	"github.com/npillmayer/paginate/engine/dom/style"
	"github.com/npillmayer/paginate/engine/frame/decor"
	"golang.org/x/net/html"
)

// ErrNoRoot is returned by BuildTree for a missing document.
var ErrNoRoot = errors.New("no document root")

// Layout is a decorated tree built from an HTML document.
type Layout struct {
	Doc   *decor.Document
	Root  *decor.Node
	nodes *domToNodeAssoc
}

// userAgent holds default declarations for HTML elements.
var userAgent = map[string]string{
	"html": "display: block", "body": "display: block", "div": "display: block",
	"p": "display: block", "section": "display: block", "article": "display: block",
	"header": "display: block", "footer": "display: block", "nav": "display: block",
	"main": "display: block", "aside": "display: block", "figure": "display: block",
	"blockquote": "display: block", "pre": "display: block; white-space: pre",
	"address": "display: block", "hr": "display: block", "form": "display: block",
	"h1": "display: block", "h2": "display: block", "h3": "display: block",
	"h4": "display: block", "h5": "display: block", "h6": "display: block",
	"ol": "display: block; counter-reset: list-item; list-style-type: decimal",
	"ul": "display: block; counter-reset: list-item; list-style-type: disc",
	"li": "display: list-item; counter-increment: list-item",
	"table": "display: table", "caption": "display: table-caption",
	"thead": "display: table-header-group", "tbody": "display: table-row-group",
	"tfoot": "display: table-footer-group", "tr": "display: table-row",
	"td": "display: table-cell", "th": "display: table-cell",
	"q": "quotes: auto",
}

// skipped elements never produce frames.
var skipped = map[string]bool{
	"head": true, "script": true, "style": true, "title": true,
	"meta": true, "link": true, "template": true, "noscript": true,
}

// BuildTree creates a decorated tree for an HTML document, using a factory
// from NewFactory. The root of the tree is decorated for h, which usually is
// the document node.
//
// Element styles are made from user agent defaults and the element's `style`
// attribute, inheriting from the style of the parent element. Text consisting
// of white space only is dropped.
func BuildTree(h *html.Node) (*Layout, error) {
	return BuildTreeWith(h, NewFactory())
}

// BuildTreeWith creates a decorated tree using factory fy.
func BuildTreeWith(h *html.Node, fy decor.Factory) (*Layout, error) {
	if h == nil {
		return nil, core.WrapError(ErrNoRoot, core.EMISSING, "cannot build frame tree")
	}
	lay := &Layout{Doc: decor.NewDocument(fy), nodes: newAssoc()}
	s, err := elementStyle(h)
	if err != nil {
		return nil, err
	}
	lay.Root = lay.Doc.NewNode(h, s, nil)
	lay.nodes.Put(h, lay.Root)
	if err := lay.buildChildren(lay.Root, h); err != nil {
		return nil, err
	}
	tracer().Infof("frame tree built with %d nodes", lay.nodes.Length())
	return lay, nil
}

func (lay *Layout) buildChildren(parent *decor.Node, h *html.Node) error {
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		var s *style.Style
		switch {
		case c.Type == html.TextNode:
			if strings.TrimSpace(c.Data) == "" {
				continue
			}
			s = style.New()
		case c.Type == html.ElementNode && !skipped[c.Data]:
			var err error
			if s, err = elementStyle(c); err != nil {
				return err
			}
		default:
			continue
		}
		s.Inherit(parent.Style())
		n := lay.Doc.NewNode(c, s, lay.Root)
		parent.AppendChild(n)
		lay.nodes.Put(c, n)
		if err := lay.buildChildren(n, c); err != nil {
			return err
		}
	}
	return nil
}

func elementStyle(h *html.Node) (*style.Style, error) {
	if h.Type == html.DocumentNode {
		return style.Parse("display: block")
	}
	s, err := style.Parse(userAgent[h.Data])
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "user agent style for <%s>", h.Data)
	}
	if decls, ok := dom.Attr(h, "style"); ok {
		if err := s.Apply(decls); err != nil {
			return nil, core.WrapError(err, core.EINVALID, "style of <%s>", h.Data)
		}
	}
	return s, nil
}

// NodeFor returns the decorated node built for h. Fragments of split
// nodes are not returned.
func (lay *Layout) NodeFor(h *html.Node) (*decor.Node, bool) {
	return lay.nodes.Get(h)
}

// Paginate lays out the tree onto pages, see function Paginate.
func (lay *Layout) Paginate(page *Page) ([]*decor.Node, error) {
	return Paginate(lay.Root, page)
}
