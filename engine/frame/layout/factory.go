package layout

import (
	"github.com/npillmayer/paginate/engine/dom/style"
	"github.com/npillmayer/paginate/engine/frame"
	"github.com/npillmayer/paginate/engine/frame/decor"
)

// Factory decorates frames with the positioner and reflower matching their
// style. Strategies are looked up by the value of property `position`
// and of property `display`. It implements decor.Factory.
type Factory struct {
	positioners map[style.Property]decor.Positioner
	reflowers   map[style.Property]decor.Reflower
	text        decor.Reflower // reflower for text frames
}

var _ decor.Factory = &Factory{}

// NewFactory creates a factory with strategies for the common values of
// `position` and `display`. Further strategies may be registered.
func NewFactory() *Factory {
	fy := &Factory{
		positioners: make(map[style.Property]decor.Positioner),
		reflowers:   make(map[style.Property]decor.Reflower),
		text:        InlineReflower{},
	}
	fy.RegisterPositioner("static", StaticPositioner{})
	fy.RegisterPositioner("relative", RelativePositioner{})
	fy.RegisterPositioner("absolute", AbsolutePositioner{})
	fy.RegisterPositioner("fixed", FixedPositioner{})
	for _, d := range []style.Property{"block", "list-item", "flow-root", "inline-block",
		"table", "table-row-group", "table-header-group", "table-footer-group",
		"table-row", "table-cell", "table-caption"} {
		fy.RegisterReflower(d, BlockReflower{})
	}
	fy.RegisterReflower("inline", InlineReflower{})
	fy.RegisterReflower("none", NullReflower{})
	return fy
}

// RegisterPositioner sets the positioner for frames with position p.
func (fy *Factory) RegisterPositioner(p style.Property, pos decor.Positioner) {
	fy.positioners[p] = pos
}

// RegisterReflower sets the reflower for frames with display d.
func (fy *Factory) RegisterReflower(d style.Property, r decor.Reflower) {
	fy.reflowers[d] = r
}

// DecorateFrame wraps f into a decorated node and attaches strategies to it.
func (fy *Factory) DecorateFrame(f *frame.Frame, doc *decor.Document, root *decor.Node) *decor.Node {
	n := decor.Wrap(f, doc)
	n.SetPositioner(fy.positionerFor(f))
	n.SetReflower(fy.reflowerFor(f))
	n.SetRoot(root)
	return n
}

func (fy *Factory) positionerFor(f *frame.Frame) decor.Positioner {
	if f.IsText() {
		return fy.positioners["static"]
	}
	if pos, ok := fy.positioners[f.Style().GetPropertyValue("position")]; ok {
		return pos
	}
	return fy.positioners["static"]
}

func (fy *Factory) reflowerFor(f *frame.Frame) decor.Reflower {
	if f.IsText() {
		return fy.text
	}
	display := f.Style().GetPropertyValue("display")
	if r, ok := fy.reflowers[display]; ok {
		return r
	}
	if f.Display().Contains(frame.InlineMode) {
		tracer().Debugf("no reflower for display %q, using inline", display)
		return InlineReflower{}
	}
	tracer().Debugf("no reflower for display %q, using block", display)
	return BlockReflower{}
}
