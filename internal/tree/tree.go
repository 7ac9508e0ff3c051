package tree

// Tree is a directory hierarchy with a single, permanent Root.
type Tree struct {
	root *Node
}

// New creates a tree holding only an empty Root.
func New() *Tree {
	return &Tree{root: NewNode()}
}

// Root returns the root directory.
func (t *Tree) Root() *Node {
	return t.root
}

// Location is a successfully resolved directory.
type Location struct {
	// Path is the displayed path, e.g. root\sub1.
	Path string
	Node *Node
}

// Resolve walks p from Root. It returns false if any name along p is
// missing; callers that keep their paths in sync with the tree never see that.
func (t *Tree) Resolve(p Path) (Location, bool) {
	node := t.root
	for _, name := range p {
		child, ok := node.Child(name)
		if !ok {
			return Location{}, false
		}
		node = child
	}
	return Location{Path: p.String(), Node: node}, true
}
