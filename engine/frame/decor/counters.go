package decor

import (
	"github.com/npillmayer/paginate/engine/frame/counter"
)

// Counters are scoped to ancestor chains. A counter lives in the table of
// the nearest ancestor which declares it; descendants read and write that
// entry.

// ResetCounter sets counter id on the table of the parent of n. An element
// declaring `counter-reset` thereby becomes the nearest ancestor for its
// following siblings and their descendants. The root has no parent and
// resets on its own table.
func (n *Node) ResetCounter(id string, value int) {
	if id == "" {
		id = counter.DefaultCounter
	}
	owner := n.Parent()
	if owner == nil {
		owner = n
	}
	tracer().Debugf("%s: reset counter %s = %d on %s", n, id, value, owner)
	owner.counters.Set(id, value)
}

// IncrementCounter adds delta to counter id in the table of the node owning
// it. If no ancestor owns the counter, the parent of n becomes its owner.
func (n *Node) IncrementCounter(id string, delta int) {
	if id == "" {
		id = counter.DefaultCounter
	}
	owner := n.LookupCounterFrame(id, true)
	if owner == nil {
		tracer().Debugf("%s: no scope for counter %s", n, id)
		return
	}
	v := owner.counters.Add(id, delta)
	tracer().Debugf("%s: counter %s = %d on %s", n, id, v, owner)
}

// DecrementCounter subtracts delta from counter id.
func (n *Node) DecrementCounter(id string, delta int) {
	n.IncrementCounter(id, -delta)
}

// LookupCounterFrame returns the nearest ancestor of n (excluding n) owning
// counter id. If there is none and autoReset is set, counter id is
// initialized to 0 on the parent of n, which is returned. Otherwise nil is
// returned, which is a regular outcome.
func (n *Node) LookupCounterFrame(id string, autoReset bool) *Node {
	if id == "" {
		id = counter.DefaultCounter
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.counters.Has(id) {
			return p
		}
	}
	if !autoReset {
		return nil
	}
	p := n.Parent()
	if p == nil {
		return nil
	}
	p.counters.Set(id, 0)
	return p
}

// CounterValue returns counter id formatted for a list style type.
// The value is taken from the table of n if n declares the counter, else
// from the nearest ancestor owning it. Counters out of scope have value 0.
func (n *Node) CounterValue(id string, styleType string) string {
	return counter.Format(n.counterValue(id), styleType)
}

func (n *Node) counterValue(id string) int {
	if id == "" {
		id = counter.DefaultCounter
	}
	if v, ok := n.counters.Get(id); ok {
		return v
	}
	if owner := n.LookupCounterFrame(id, false); owner != nil {
		v, _ := owner.counters.Get(id)
		return v
	}
	return 0
}

// counterValues returns the values of all counters id in scope of n,
// outermost first, as needed for `counters()`.
func (n *Node) counterValues(id string) []int {
	var values []int
	if v, ok := n.counters.Get(id); ok {
		values = append(values, v)
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if v, ok := p.counters.Get(id); ok {
			values = append(values, v)
		}
	}
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	return values
}
