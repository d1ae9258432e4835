/*
Package dom holds the few operations the layout core needs on document nodes.

Document nodes are nodes of an HTML parse tree as produced by
golang.org/x/net/html. Frames reference them, but never rely on their
tree links: the frame tree stores its own topology.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// OriginalIDAttr is the attribute a copied node keeps its former `id` in.
const OriginalIDAttr = "data-original-id"

// CloneNode returns a detached, shallow copy of h: type, tag and attributes
// are copied, links to parent, siblings and children are not.
func CloneNode(h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	c := &html.Node{
		Type:      h.Type,
		DataAtom:  h.DataAtom,
		Data:      h.Data,
		Namespace: h.Namespace,
	}
	if len(h.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(h.Attr))
		copy(c.Attr, h.Attr)
	}
	return c
}

// CreateElement creates a detached element node for a tag.
func CreateElement(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}
}

// CreateText creates a detached text node.
func CreateText(text string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: text,
	}
}

// NodeName returns the W3C node name: the tag for elements, "#text" for
// text nodes and "#document" for the document node.
func NodeName(h *html.Node) string {
	if h == nil {
		return ""
	}
	switch h.Type {
	case html.ElementNode:
		return h.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	}
	return "#" + h.Data
}

// IsText is true for text nodes.
func IsText(h *html.Node) bool {
	return h != nil && h.Type == html.TextNode
}

// Attr returns the value of an attribute.
func Attr(h *html.Node, key string) (string, bool) {
	if h == nil {
		return "", false
	}
	for _, a := range h.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute.
func SetAttr(h *html.Node, key, value string) {
	for i, a := range h.Attr {
		if a.Namespace == "" && a.Key == key {
			h.Attr[i].Val = value
			return
		}
	}
	h.Attr = append(h.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttr removes an attribute, if present.
func RemoveAttr(h *html.Node, key string) {
	for i, a := range h.Attr {
		if a.Namespace == "" && a.Key == key {
			h.Attr = append(h.Attr[:i], h.Attr[i+1:]...)
			return
		}
	}
}

// RetireID moves an `id` attribute to OriginalIDAttr, so that a copy of a node
// does not collide with the node it was copied from.
// It returns the id moved, if any.
func RetireID(h *html.Node) (string, bool) {
	id, ok := Attr(h, "id")
	if !ok {
		return "", false
	}
	SetAttr(h, OriginalIDAttr, id)
	RemoveAttr(h, "id")
	return id, true
}
