// Package resolver interprets move destinations against the directory tree.
package resolver

import "github.com/vvka-141/vdir/internal/tree"

// Target is where a moved directory is reattached.
type Target struct {
	// Parent identifies the directory that receives the moved subtree.
	Parent tree.Path
	// Key is the name the subtree is stored under in Parent.
	Key string
}

// Resolve walks segments starting from active, the directory that currently
// holds source. active is never modified.
//
// A final segment naming an existing directory moves source into it. A final
// segment naming nothing renames source to that segment inside the directory
// reached so far. Missing intermediate segments fail with tree.ErrNotExist.
func Resolve(t *tree.Tree, active tree.Path, source string, segments []string) (Target, error) {
	cur := active.Clone()
	key := ""

	for i, seg := range segments {
		last := i == len(segments)-1

		switch seg {
		case ".":
			continue
		case "..":
			parent, ok := cur.Pop()
			if !ok {
				return Target{}, tree.ErrAtRoot
			}
			cur = parent
			continue
		}

		// Any route through source itself would attach it under its own subtree.
		if seg == source && cur.Equal(active) {
			return Target{}, tree.ErrIllegalMove
		}

		loc, ok := t.Resolve(cur)
		if !ok {
			return Target{}, tree.ErrNotExist
		}

		child, found := loc.Node.Child(seg)
		switch {
		case found && !last:
			cur = cur.Push(seg)
		case found && last:
			if child.Has(source) {
				return Target{}, tree.ErrExists
			}
			cur = cur.Push(seg)
			key = source
		case !found && last:
			key = seg
		default:
			return Target{}, tree.ErrNotExist
		}
	}

	if key == "" {
		key = source
	}

	if cur.Equal(active) && key == source {
		return Target{}, tree.ErrIllegalMove
	}

	parent, ok := t.Resolve(cur)
	if !ok {
		return Target{}, tree.ErrNotExist
	}
	if parent.Node.Has(key) {
		return Target{}, tree.ErrExists
	}

	return Target{Parent: cur, Key: key}, nil
}
