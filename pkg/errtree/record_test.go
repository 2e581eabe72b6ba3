package errtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryAddDedups(t *testing.T) {
	r := NewRegistry("error")
	a := r.Add("pkg.ErrA")
	b := r.Add("pkg.ErrB")
	again := r.Add("pkg.ErrA")

	assert.Same(t, a, again, "re-adding a name must return the existing record")
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []*TypeRecord{a, b}, r.Records(), "discovery order must be preserved")
}

func TestRegistryRootIsNotARecord(t *testing.T) {
	r := NewRegistry("error")
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, "error", r.Root().Name)
}

func TestAddParentDedups(t *testing.T) {
	r := NewRegistry("error")
	a := r.Add("pkg.ErrA")
	b := r.Add("pkg.ErrB")
	kid := r.Add("pkg.ErrKid")

	kid.AddParent(a)
	kid.AddParent(b)
	kid.AddParent(a)

	assert.Equal(t, []*TypeRecord{a, b}, kid.Parents, "declared order kept, duplicates dropped")
}

func TestMultiparented(t *testing.T) {
	r := NewRegistry("error")
	a := r.Add("pkg.ErrA")
	b := r.Add("pkg.ErrB")

	single := r.Add("pkg.ErrSingle")
	single.AddParent(a)

	multi := r.Add("pkg.ErrMulti")
	multi.AddParent(a)
	multi.AddParent(b)

	assert.False(t, single.Multiparented())
	assert.True(t, multi.Multiparented())
}
