package freeze_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"martianoff/freezie/freeze"
)

func TestSliceView(t *testing.T) {
	src := []string{"a", "b", "c", "d"}
	s := freeze.NewSlice(src)

	t.Run("Reads", func(t *testing.T) {
		assert.Equal(t, 4, s.Len())
		assert.Equal(t, "c", s.At(2))
		assert.Panics(t, func() { s.At(4) })
		assert.Equal(t, 1, s.IndexFunc(func(v string) bool { return v == "b" }))
		assert.Equal(t, -1, s.IndexFunc(func(v string) bool { return v == "z" }))
		assert.True(t, s.ContainsFunc(func(v string) bool { return v > "c" }))
		assert.Equal(t, 3, freeze.SliceIndex(s, "d"))
		assert.True(t, freeze.SliceContains(s, "a"))
		assert.False(t, freeze.SliceContains(s, "e"))
	})

	t.Run("Iterators", func(t *testing.T) {
		assert.Equal(t, src, slices.Collect(s.Values()))

		var idx []int
		for i, v := range s.All() {
			assert.Equal(t, src[i], v)
			idx = append(idx, i)
		}
		assert.Equal(t, []int{0, 1, 2, 3}, idx)

		var back []string
		for _, v := range s.Backward() {
			back = append(back, v)
		}
		assert.Equal(t, []string{"d", "c", "b", "a"}, back)
	})

	t.Run("Sub", func(t *testing.T) {
		sub := s.Sub(1, 3)
		assert.Equal(t, 2, sub.Len())
		assert.Equal(t, []string{"b", "c"}, slices.Collect(sub.Values()))

		// The capacity of a sub-view ends at j.
		grown := append(sub.Defrost(), "x")
		assert.Equal(t, "d", src[3])
		assert.Equal(t, []string{"b", "c", "x"}, grown)
	})

	t.Run("Clone", func(t *testing.T) {
		c := s.Clone()
		c[0] = "z"
		assert.Equal(t, "a", s.At(0))
	})

	t.Run("Format", func(t *testing.T) {
		assert.Equal(t, fmt.Sprint(src), s.String())
		assert.Equal(t, fmt.Sprintf("%q", src), fmt.Sprintf("%q", s))
	})
}

func TestSliceViewAliases(t *testing.T) {
	src := []int{1, 2, 3}
	s := freeze.NewSlice(src)
	src[0] = 10
	assert.Equal(t, 10, s.At(0))
	assert.Equal(t, src, s.Defrost())
}

func TestSliceEqualCompare(t *testing.T) {
	a := freeze.NewSlice([]int{1, 2, 3})
	assert.True(t, freeze.SliceEqual(a, freeze.NewSlice([]int{1, 2, 3})))
	assert.False(t, freeze.SliceEqual(a, freeze.NewSlice([]int{1, 2})))
	assert.Equal(t, 0, freeze.SliceCompare(a, freeze.NewSlice([]int{1, 2, 3})))
	assert.Equal(t, 1, freeze.SliceCompare(a, freeze.NewSlice([]int{1, 2})))
	assert.Equal(t, -1, freeze.SliceCompare(a, freeze.NewSlice([]int{1, 3})))
}

func TestSliceZeroValue(t *testing.T) {
	var s freeze.Slice[int]
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Clone())
	assert.Empty(t, slices.Collect(s.Values()))
}
