package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	assert.NoError(t, err)
	assert.Equal(t, 12*BP, d)
	//
	d, _, err = ParseDimen("0")
	assert.NoError(t, err)
	assert.Equal(t, Zero, d)
	//
	d, ispcnt, err := ParseDimen("20%")
	assert.NoError(t, err)
	assert.True(t, ispcnt)
	assert.Equal(t, Dimen(20), d)
	//
	d, _, err = ParseDimen("1.5pt")
	assert.NoError(t, err)
	assert.Equal(t, Dimen(97937), d) // 1.5 × 65291, rounded
	//
	_, _, err = ParseDimen("auto")
	assert.ErrorIs(t, err, ErrFormat)
	_, _, err = ParseDimen("3qq")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestRect(t *testing.T) {
	r := RectAt(Point{10 * BP, 20 * BP}, 100*BP, 50*BP)
	assert.Equal(t, 100*BP, r.Width())
	assert.Equal(t, 50*BP, r.Height())
	assert.False(t, r.IsEmpty())
	assert.True(t, Rect{}.IsEmpty())
	assert.Equal(t, 3*BP, Max(Min(3*BP, 4*BP), 2*BP))
}
