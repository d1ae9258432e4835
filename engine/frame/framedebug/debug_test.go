package framedebug

import (
	"strings"
	"testing"

	"github.com/npillmayer/paginate/core/dimen"
	"github.com/npillmayer/paginate/engine/frame/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const blocks = `<html><body>` +
	`<div id="a" style="height: 100pt"></div>` +
	`<div id="b" style="height: 100pt">hello world</div>` +
	`<div id="c" style="height: 100pt"></div>` +
	`</body></html>`

func paginated(t *testing.T) *layout.Layout {
	h, err := html.Parse(strings.NewReader(blocks))
	require.NoError(t, err)
	lay, err := layout.BuildTree(h)
	require.NoError(t, err)
	pages, err := lay.Paginate(layout.NewPage(dimen.Point{X: 200 * dimen.PT, Y: 250 * dimen.PT}, 0))
	require.NoError(t, err)
	require.Len(t, pages, 2)
	return lay
}

func TestOutline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.layout")
	defer teardown()
	//
	lay := paginated(t)
	expected := `#document
  html split
    body split
      div#a
      div#b
        "hello world"
  html fragment
    body fragment
      div#c
`
	assert.Equal(t, expected, OutlineString(lay.Root))
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "paginate.layout")
	defer teardown()
	//
	lay := paginated(t)
	var b strings.Builder
	require.NoError(t, ToGraphViz(lay.Root, &b))
	dot := b.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Equal(t, 8, strings.Count(dot, " -> "), "one edge per non-root node")
	assert.Contains(t, dot, "fillcolor=gold")
	assert.Contains(t, dot, "fillcolor=khaki")
	assert.Contains(t, dot, `"T␣hello␣worl…"`)
	assert.Contains(t, dot, `"▩ div#a"`)
}
