package tree

import "sort"

// Node is a directory: a mapping from child name to child directory.
// The zero value is an empty directory ready to use.
type Node struct {
	children map[string]*Node
}

// NewNode returns an empty directory.
func NewNode() *Node {
	return &Node{}
}

// Child returns the child stored under name.
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.children[name]
	return child, ok
}

// Has reports whether name is a child of n.
func (n *Node) Has(name string) bool {
	_, ok := n.children[name]
	return ok
}

// Len returns the number of immediate children.
func (n *Node) Len() int {
	return len(n.children)
}

// Names returns the child names in byte order.
func (n *Node) Names() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Insert attaches subtree under name. A nil subtree attaches a fresh empty
// directory. It returns false and leaves n untouched if name already exists.
func (n *Node) Insert(name string, subtree *Node) bool {
	if n.Has(name) {
		return false
	}
	if subtree == nil {
		subtree = NewNode()
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	n.children[name] = subtree
	return true
}

// Remove detaches and returns the subtree stored under name.
// The subtree keeps all of its descendants.
func (n *Node) Remove(name string) (*Node, bool) {
	child, ok := n.children[name]
	if !ok {
		return nil, false
	}
	delete(n.children, name)
	return child, true
}
