package layout

import (
	"sync"

	"github.com/npillmayer/paginate/engine/frame/decor"
	"golang.org/x/net/html"
)

// domToNodeAssoc remembers the decorated node built for an HTML node.
// Fragments created by splits are not registered; they are reachable from
// the original node through the tree.
type domToNodeAssoc struct {
	sync.RWMutex
	m map[*html.Node]*decor.Node
}

func newAssoc() *domToNodeAssoc {
	return &domToNodeAssoc{
		m: make(map[*html.Node]*decor.Node),
	}
}

func (d2n *domToNodeAssoc) Put(h *html.Node, n *decor.Node) {
	d2n.Lock()
	defer d2n.Unlock()
	d2n.m[h] = n
}

func (d2n *domToNodeAssoc) Get(h *html.Node) (*decor.Node, bool) {
	d2n.RLock()
	defer d2n.RUnlock()
	n, ok := d2n.m[h]
	return n, ok
}

func (d2n *domToNodeAssoc) Length() int {
	d2n.RLock()
	defer d2n.RUnlock()
	return len(d2n.m)
}
