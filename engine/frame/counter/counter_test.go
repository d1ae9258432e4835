package counter

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.counter")
	defer teardown()
	//
	tab := NewTable()
	assert.False(t, tab.Has("c"))
	_, ok := tab.Get("c")
	assert.False(t, ok)
	assert.Equal(t, 1, tab.Add("c", 1))
	tab.Set("b", 5)
	assert.Equal(t, 3, tab.Add("c", 2))
	assert.Equal(t, []string{"b", "c"}, tab.IDs())
	assert.Equal(t, "{b=5, c=3}", tab.String())
	//
	c := tab.Clone()
	assert.True(t, c.Equal(tab))
	c.Add("b", 1)
	v, _ := tab.Get("b")
	assert.Equal(t, 5, v, "clone must be independent")
	assert.False(t, c.Equal(tab))
	tab.Remove("b")
	assert.Equal(t, 1, tab.Len())
	tab.Clear()
	assert.Equal(t, 0, tab.Len())
}

func TestFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.counter")
	defer teardown()
	//
	assert.Equal(t, "1", Format(1, "decimal"))
	assert.Equal(t, "01", Format(1, "decimal-leading-zero"))
	assert.Equal(t, "i", Format(1, "lower-roman"))
	assert.Equal(t, "I", Format(1, "upper-roman"))
	assert.Equal(t, "a", Format(1, "lower-alpha"))
	assert.Equal(t, "A", Format(1, "upper-alpha"))
	assert.Equal(t, "a", Format(27, "lower-latin"))
	assert.Equal(t, "A", Format(27, "upper-latin"))
	assert.Equal(t, "iv", Format(4, "lower-roman"))
	assert.Equal(t, "IV", Format(4, "upper-roman"))
	assert.Equal(t, "MCMXCIV", Format(1994, "upper-roman"))
	assert.Equal(t, "α", Format(1, "lower-greek"))
	assert.Equal(t, "Α", Format(1, "upper-greek"))
	assert.Equal(t, "12", Format(12, "no-such-style"))
	assert.Equal(t, "12", Format(12, ""))
}

func TestFormatNonPositive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.counter")
	defer teardown()
	//
	for _, st := range []string{"lower-roman", "upper-roman", "lower-alpha", "upper-latin", "lower-greek"} {
		assert.Equal(t, "0", Format(0, st), st)
		assert.Equal(t, "-3", Format(-3, st), st)
	}
	assert.Equal(t, "-1", Format(-1, "decimal"))
}

func TestParseDirectives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.counter")
	defer teardown()
	//
	assert.Nil(t, ParseResets("none"))
	assert.Nil(t, ParseIncrements("  "))
	assert.Equal(t, []Entry{{"chapter", 0}, {"section", 3}}, ParseResets("chapter section 3"))
	assert.Equal(t, []Entry{{"item", 1}, {"page", -2}}, ParseIncrements("item page -2"))
}
