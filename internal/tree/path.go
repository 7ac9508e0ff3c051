package tree

import (
	"strings"

	"github.com/vvka-141/vdir/pkg/vdir"
)

// Path is the sequence of names from Root down to a directory.
// The empty Path identifies Root.
type Path []string

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Push returns a new Path extending p by name. p itself is not modified.
func (p Path) Push(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, name)
}

// Pop returns p without its last name. ok is false when p is already Root.
func (p Path) Pop() (parent Path, ok bool) {
	if len(p) == 0 {
		return p, false
	}
	return p[:len(p)-1], true
}

// IsRoot reports whether p identifies Root.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Equal reports whether p and other name the same directory.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders p the way it is displayed, e.g. root\sub1\subA.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString(vdir.RootName)
	for _, name := range p {
		b.WriteString(vdir.PathSeparator)
		b.WriteString(name)
	}
	return b.String()
}
