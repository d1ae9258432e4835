package frame

import (
	"testing"

	"github.com/npillmayer/paginate/core/dimen"
	"github.com/npillmayer/paginate/engine/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxFromStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.frame")
	defer teardown()
	//
	s, err := style.Parse("margin: 10pt; padding: 5pt 0; border-width: 1pt; width: 60pt")
	require.NoError(t, err)
	box := BoxFromStyle(nil, s)
	assert.Equal(t, 10*dimen.PT, box.Margins[Left])
	assert.Equal(t, 5*dimen.PT, box.Padding[Bottom])
	assert.Equal(t, dimen.Zero, box.Padding[Right])
	assert.Equal(t, 60*dimen.PT, box.ContentWidth())
	assert.Equal(t, 62*dimen.PT, box.BorderBoxWidth())
	assert.Equal(t, 82*dimen.PT, box.TotalWidth())
	t.Log(box.DebugString())
}

func TestBoxBorderBoxSizing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.frame")
	defer teardown()
	//
	box := &Box{BorderBoxSizing: true}
	box.Padding[Left] = 20 * dimen.PT
	box.SetContentWidth(60 * dimen.PT)
	assert.Equal(t, 80*dimen.PT, box.W)
	assert.Equal(t, 60*dimen.PT, box.ContentWidth())
	assert.Equal(t, 80*dimen.PT, box.BorderBoxWidth())
	box.Margins[Top] = 5 * dimen.PT
	box.SetContentHeight(10 * dimen.PT)
	assert.Equal(t, 15*dimen.PT, box.TotalHeight())
	r := box.OuterBox()
	assert.Equal(t, -5*dimen.PT, r.TopL.Y)
}

func TestParseDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.frame")
	defer teardown()
	//
	m, err := ParseDisplay("block")
	assert.NoError(t, err)
	assert.True(t, m.Contains(BlockMode))
	assert.False(t, m.Contains(InlineMode))
	m, _ = ParseDisplay("table-cell")
	assert.True(t, m.Contains(TablePartMode))
	assert.True(t, m.Overlaps(FlowRoot|InlineMode))
	m, err = ParseDisplay("")
	assert.NoError(t, err)
	assert.Equal(t, NoMode, m)
	_, err = ParseDisplay("bogus")
	assert.ErrorIs(t, err, ErrUnknownDisplay)
	assert.Equal(t, "BlockMode", BlockMode.String())
	assert.Equal(t, "FlowMode BlockMode", (BlockMode | FlowMode).String())
}
