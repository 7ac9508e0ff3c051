package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_InsertAndNames(t *testing.T) {
	n := NewNode()
	require.True(t, n.Insert("sub2", nil))
	require.True(t, n.Insert("Sub1", nil))
	require.True(t, n.Insert("sub1", nil))

	assert.Equal(t, []string{"Sub1", "sub1", "sub2"}, n.Names())
	assert.Equal(t, 3, n.Len())
}

func TestNode_InsertExistingLeavesTreeUntouched(t *testing.T) {
	n := NewNode()
	original := NewNode()
	original.Insert("keep", nil)
	require.True(t, n.Insert("a", original))

	assert.False(t, n.Insert("a", nil))

	child, ok := n.Child("a")
	require.True(t, ok)
	assert.Same(t, original, child)
	assert.True(t, child.Has("keep"))
}

func TestNode_ZeroValueIsUsable(t *testing.T) {
	var n Node
	assert.Equal(t, 0, n.Len())
	assert.Empty(t, n.Names())
	assert.False(t, n.Has("x"))
	assert.True(t, n.Insert("x", nil))
	assert.True(t, n.Has("x"))
}

func TestNode_RemoveKeepsDescendants(t *testing.T) {
	n := NewNode()
	n.Insert("a", nil)
	a, _ := n.Child("a")
	a.Insert("b", nil)
	b, _ := a.Child("b")
	b.Insert("c", nil)

	detached, ok := n.Remove("a")
	require.True(t, ok)
	assert.False(t, n.Has("a"))
	assert.Same(t, a, detached)

	b2, ok := detached.Child("b")
	require.True(t, ok)
	assert.True(t, b2.Has("c"))
}

func TestNode_RemoveMissing(t *testing.T) {
	n := NewNode()
	got, ok := n.Remove("nope")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestPath_String(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{"root", nil, `root`},
		{"one level", Path{"sub1"}, `root\sub1`},
		{"two levels", Path{"sub1", "subA"}, `root\sub1\subA`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.path.String())
		})
	}
}

func TestPath_PushDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 8)
	base[0] = "a"

	left := base.Push("b")
	right := base.Push("c")

	assert.Equal(t, Path{"a", "b"}, left)
	assert.Equal(t, Path{"a", "c"}, right)
	assert.Equal(t, Path{"a"}, base)
}

func TestPath_Pop(t *testing.T) {
	p := Path{"a", "b"}

	parent, ok := p.Pop()
	require.True(t, ok)
	assert.Equal(t, Path{"a"}, parent)

	parent, ok = parent.Pop()
	require.True(t, ok)
	assert.True(t, parent.IsRoot())

	_, ok = parent.Pop()
	assert.False(t, ok)
}

func TestPath_CloneAndEqual(t *testing.T) {
	p := Path{"a", "b"}
	c := p.Clone()
	require.True(t, p.Equal(c))

	c[1] = "x"
	assert.False(t, p.Equal(c))
	assert.Equal(t, "b", p[1])
	assert.False(t, p.Equal(Path{"a"}))
	assert.True(t, Path(nil).Equal(Path{}))
}

func TestTree_Resolve(t *testing.T) {
	tr := New()
	tr.Root().Insert("sub1", nil)
	sub1, _ := tr.Root().Child("sub1")
	sub1.Insert("subA", nil)

	loc, ok := tr.Resolve(nil)
	require.True(t, ok)
	assert.Equal(t, "root", loc.Path)
	assert.Same(t, tr.Root(), loc.Node)

	loc, ok = tr.Resolve(Path{"sub1", "subA"})
	require.True(t, ok)
	assert.Equal(t, `root\sub1\subA`, loc.Path)
	assert.Equal(t, 0, loc.Node.Len())

	_, ok = tr.Resolve(Path{"sub1", "missing"})
	assert.False(t, ok)
}
