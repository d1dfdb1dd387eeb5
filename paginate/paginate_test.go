package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	list := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3}, Slice(list, 1, 3))
	assert.Equal(t, []int{4, 5, 6}, Slice(list, 2, 3))
	assert.Equal(t, []int{7}, Slice(list, 3, 3))
}

func TestSliceOutOfRange(t *testing.T) {
	list := []int{1, 2, 3}

	assert.Nil(t, Slice(list, 0, 3))
	assert.Nil(t, Slice(list, 2, 3))
	assert.Nil(t, Slice(list, 1, 0))
	assert.Nil(t, Slice([]int{}, 1, 3))
}

func TestPages(t *testing.T) {
	assert.Equal(t, 0, Pages(0, 5))
	assert.Equal(t, 1, Pages(5, 5))
	assert.Equal(t, 2, Pages(6, 5))
	assert.Equal(t, 3, Pages(11, 5))
	assert.Equal(t, 0, Pages(10, 0))
}

func TestPageControls(t *testing.T) {
	first := PageControls(12, 1, 5)
	assert.False(t, first.BackEnabled)
	assert.True(t, first.NextEnabled)

	middle := PageControls(12, 2, 5)
	assert.True(t, middle.BackEnabled)
	assert.True(t, middle.NextEnabled)

	last := PageControls(12, 3, 5)
	assert.True(t, last.BackEnabled)
	assert.False(t, last.NextEnabled)

	only := PageControls(3, 1, 5)
	assert.False(t, only.BackEnabled)
	assert.False(t, only.NextEnabled)
}
