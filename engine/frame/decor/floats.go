package decor

// FloatList holds the floated nodes of a tree, in order of registration.
// The root of a decorated tree owns the list of the tree.
type FloatList struct {
	floats []*Node
}

// AppendFloat registers a float, if it is not yet registered.
func (l *FloatList) AppendFloat(float *Node) {
	if !l.Contains(float) {
		l.floats = append(l.floats, float)
	}
}

// Contains is true if float is registered.
func (l *FloatList) Contains(float *Node) bool {
	for _, f := range l.floats {
		if f == float {
			return true
		}
	}
	return false
}

// Remove unregisters a float.
func (l *FloatList) Remove(float *Node) bool {
	for i, f := range l.floats {
		if f == float {
			l.floats = append(l.floats[:i], l.floats[i+1:]...)
			return true
		}
	}
	return false
}

// Floats returns a copy of the list of floats.
func (l *FloatList) Floats() []*Node {
	floats := make([]*Node, len(l.floats))
	copy(floats, l.floats)
	return floats
}

// AddFloat registers a floated node with the root of the tree of n.
func (n *Node) AddFloat(float *Node) {
	n.floatList().AppendFloat(float)
}

// RemoveFloat unregisters a floated node.
func (n *Node) RemoveFloat(float *Node) bool {
	return n.floatList().Remove(float)
}

// Floats returns the floated nodes registered with the root of the tree of n.
func (n *Node) Floats() []*Node {
	return n.floatList().Floats()
}

func (n *Node) floatList() *FloatList {
	if n.root != nil {
		return &n.root.floats
	}
	return &n.floats
}
