package errtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryParent(t *testing.T) {
	r := NewRegistry("error")
	a := r.Add("pkg.ErrA")
	b := r.Add("pkg.ErrB")

	orphan := r.Add("pkg.ErrOrphan")
	assert.Same(t, r.Root(), primaryParent(r.Root(), orphan), "parentless records hang off the root")

	multi := r.Add("pkg.ErrMulti")
	multi.AddParent(b)
	multi.AddParent(a)
	assert.Same(t, b, primaryParent(r.Root(), multi), "primary parent is the first declared, not alphabetical")
}

func TestBuildChildrenOrdering(t *testing.T) {
	r := NewRegistry("error")
	// discovery order deliberately not alphabetical
	for _, name := range []string{"pkg.Zeta", "pkg.alpha", "pkg.Beta"} {
		r.Add(name).AddParent(r.Root())
	}

	children := buildChildren(r, false)
	got := make([]string, 0)
	for _, v := range children[r.Root()] {
		got = append(got, v.Name)
	}
	assert.Equal(t, []string{"pkg.alpha", "pkg.Beta", "pkg.Zeta"}, got, "siblings sort case-insensitively")
}

func TestBuildChildrenSinglePlacement(t *testing.T) {
	r := NewRegistry("error")
	a := r.Add("pkg.ErrA")
	a.AddParent(r.Root())
	b := r.Add("pkg.ErrB")
	b.AddParent(r.Root())
	multi := r.Add("pkg.ErrMulti")
	multi.AddParent(a)
	multi.AddParent(b)

	children := buildChildren(r, false)
	assert.Equal(t, []*TypeRecord{multi}, children[a])
	assert.Empty(t, children[b], "single placement keeps the record under its primary parent only")
}

func TestBuildChildrenAllPaths(t *testing.T) {
	r := NewRegistry("error")
	a := r.Add("pkg.ErrA")
	a.AddParent(r.Root())
	b := r.Add("pkg.ErrB")
	b.AddParent(r.Root())
	multi := r.Add("pkg.ErrMulti")
	multi.AddParent(a)
	multi.AddParent(b)

	children := buildChildren(r, true)
	assert.Equal(t, []*TypeRecord{multi}, children[a])
	assert.Equal(t, []*TypeRecord{multi}, children[b], "all-paths attaches the record under every parent")
}
