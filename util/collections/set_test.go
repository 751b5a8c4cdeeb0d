package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAddContains(t *testing.T) {
	set := NewSet(1, 2)

	assert.True(t, set.Contains(1))
	assert.False(t, set.Contains(3))

	assert.True(t, set.AddNew(3))
	assert.False(t, set.AddNew(3))
	assert.Len(t, set, 3)
}

func TestSetDifferenceIntersection(t *testing.T) {
	a := NewSet("a", "b", "c")
	b := NewSet("b", "c", "d")

	assert.Equal(t, NewSet("a"), a.Difference(b))
	assert.Equal(t, NewSet("d"), b.Difference(a))
	assert.Equal(t, NewSet("b", "c"), a.Intersection(b))

	// operands are left untouched
	assert.Len(t, a, 3)
	assert.Len(t, b, 3)
}
