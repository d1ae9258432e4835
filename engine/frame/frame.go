package frame

import (
	"fmt"

	"github.com/npillmayer/paginate/core/dimen"
	"github.com/npillmayer/paginate/engine/dom"
	"github.com/npillmayer/paginate/engine/dom/style"
	"golang.org/x/net/html"
)

// ID identifies a frame within its tree. IDs are never re-used within a tree.
type ID int32

// NoFrame is the zero ID, used for absent links.
const NoFrame ID = 0

// GeneratedContentTag is the element name of document nodes synthesized for
// CSS generated content (`::before`, `::after`).
const GeneratedContentTag = "x-generated"

// Framer is implemented by frames and by everything wrapping a frame.
type Framer interface {
	Frame() *Frame
}

// Frame is a primitive layout node.
type Frame struct {
	Box                        // geometry of the frame
	ContainingBlock dimen.Rect // set during layout
	id              ID
	tree            *Tree
	node            *html.Node
	style           *style.Style
	parent          ID
	firstChild      ID
	lastChild       ID
	prevSibling     ID
	nextSibling     ID
	decorator       interface{}
}

// Frame returns f; it makes frames Framers.
func (f *Frame) Frame() *Frame {
	return f
}

// ID returns the ID of f within its tree.
func (f *Frame) ID() ID {
	return f.id
}

// Tree returns the arena f lives in.
func (f *Frame) Tree() *Tree {
	return f.tree
}

// Node returns the document node f is rendered from.
func (f *Frame) Node() *html.Node {
	return f.node
}

// SetNode replaces the document node of f.
func (f *Frame) SetNode(h *html.Node) {
	f.node = h
}

// Style returns the style of f. It is never nil.
func (f *Frame) Style() *style.Style {
	return f.style
}

// SetStyle replaces the style of f. A nil style is replaced by an empty one.
func (f *Frame) SetStyle(s *style.Style) {
	if s == nil {
		s = style.New()
	}
	f.style = s
}

// Position returns the top left corner of the border box of f.
func (f *Frame) Position() dimen.Point {
	return f.TopL
}

// SetPosition sets the top left corner of the border box of f.
func (f *Frame) SetPosition(p dimen.Point) {
	f.TopL = p
}

// Decorator returns the object currently decorating f, if any.
func (f *Frame) Decorator() interface{} {
	return f.decorator
}

// SetDecorator registers the object decorating f.
func (f *Frame) SetDecorator(d interface{}) {
	f.decorator = d
}

// NodeName returns the name of the document node of f.
func (f *Frame) NodeName() string {
	return dom.NodeName(f.node)
}

// IsText is true for frames of text nodes.
func (f *Frame) IsText() bool {
	return dom.IsText(f.node)
}

// IsGeneratedContent is true for frames of generated content nodes.
func (f *Frame) IsGeneratedContent() bool {
	return f.node != nil && f.node.Type == html.ElementNode && f.node.Data == GeneratedContentTag
}

// Display returns the display mode of f, derived from its style.
func (f *Frame) Display() DisplayMode {
	if f.IsText() {
		return InlineMode | FlowMode
	}
	display := f.style.GetPropertyValue("display")
	mode, err := ParseDisplay(display.String())
	if err != nil {
		tracer().Errorf("frame %d: unrecognized display property: %s", f.id, display)
		return BlockMode | FlowMode
	}
	return mode
}

var blockLevelDisplay = map[style.Property]bool{
	"block":        true,
	"inline-block": true,
	"table-cell":   true,
	"list-item":    true,
}

// IsBlockLevel is true for frames which establish a block of their own:
// display block, inline-block, table-cell and list-item.
func (f *Frame) IsBlockLevel() bool {
	if f.IsText() {
		return false
	}
	return blockLevelDisplay[f.style.GetPropertyValue("display")]
}

// IsPositioned is true for frames with position relative, absolute or fixed.
func (f *Frame) IsPositioned() bool {
	switch f.style.GetPropertyValue("position") {
	case "relative", "absolute", "fixed":
		return true
	}
	return false
}

// IsAbsolute is true for frames taken out of flow by position absolute or fixed.
func (f *Frame) IsAbsolute() bool {
	p := f.style.GetPropertyValue("position")
	return p == "absolute" || p == "fixed"
}

// IsFloating is true for floated frames.
func (f *Frame) IsFloating() bool {
	return !f.IsText() && !f.style.GetPropertyValue("float").IsNone()
}

// Reset clears everything layout has computed for f: position, containing
// block, box geometry and the computed values of its style.
func (f *Frame) Reset() {
	f.Box = Box{}
	f.ContainingBlock = dimen.Rect{}
	f.style.Reset()
}

func (f *Frame) String() string {
	if f == nil {
		return "frame<nil>"
	}
	return fmt.Sprintf("frame#%d<%s>", f.id, f.NodeName())
}
