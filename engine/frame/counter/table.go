package counter

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// DefaultCounter is the counter id used when a directive names no counter.
const DefaultCounter = "-default-counter"

// Table maps counter ids to values. Ids are kept in sorted order.
// The zero value is not usable; create tables with NewTable.
type Table struct {
	m *treemap.Map
}

// NewTable creates an empty counter table.
func NewTable() *Table {
	return &Table{m: treemap.NewWithStringComparator()}
}

// Has is true if counter id is present in the table.
func (t *Table) Has(id string) bool {
	_, found := t.m.Get(id)
	return found
}

// Get returns the value of counter id, or 0 and false if the counter is absent.
func (t *Table) Get(id string) (int, bool) {
	v, found := t.m.Get(id)
	if !found {
		return 0, false
	}
	return v.(int), true
}

// Set sets counter id to a value, creating the counter if necessary.
func (t *Table) Set(id string, value int) {
	tracer().Debugf("counter %s := %d", id, value)
	t.m.Put(id, value)
}

// Add adds delta to counter id and returns the new value. An absent counter
// starts at 0.
func (t *Table) Add(id string, delta int) int {
	v, _ := t.Get(id)
	t.Set(id, v+delta)
	return v + delta
}

// Remove deletes counter id.
func (t *Table) Remove(id string) {
	t.m.Remove(id)
}

// Clear removes all counters.
func (t *Table) Clear() {
	t.m.Clear()
}

// Len returns the number of counters in the table.
func (t *Table) Len() int {
	return t.m.Size()
}

// IDs returns the counter ids of the table in sorted order.
func (t *Table) IDs() []string {
	keys := t.m.Keys()
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.(string)
	}
	return ids
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	c := NewTable()
	it := t.m.Iterator()
	for it.Next() {
		c.m.Put(it.Key(), it.Value())
	}
	return c
}

// Equal is true if both tables hold the same counters with the same values.
func (t *Table) Equal(other *Table) bool {
	if t.Len() != other.Len() {
		return false
	}
	it := t.m.Iterator()
	for it.Next() {
		v, ok := other.Get(it.Key().(string))
		if !ok || v != it.Value().(int) {
			return false
		}
	}
	return true
}

func (t *Table) String() string {
	var b strings.Builder
	b.WriteByte('{')
	it := t.m.Iterator()
	first := true
	for it.Next() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s=%d", it.Key(), it.Value())
	}
	b.WriteByte('}')
	return b.String()
}
