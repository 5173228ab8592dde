package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(1, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 2, TotalPages(10, 5))
	assert.Equal(t, 3, TotalPages(11, 5))
}

func TestClampPage(t *testing.T) {
	// Below range
	assert.Equal(t, 1, ClampPage(0, 10, 5))
	assert.Equal(t, 1, ClampPage(-3, 10, 5))

	// In range
	assert.Equal(t, 1, ClampPage(1, 10, 5))
	assert.Equal(t, 2, ClampPage(2, 10, 5))

	// Past the end lands on the last page
	assert.Equal(t, 2, ClampPage(7, 10, 5))

	// No rows at all keeps page 1
	assert.Equal(t, 1, ClampPage(7, 0, 5))
}

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(1, 5, 12)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 5, meta.PageSize)
	assert.Equal(t, int64(12), meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)

	meta = NewPageMeta(3, 5, 12)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)

	// Requested page past the end reports the page actually served
	meta = NewPageMeta(9, 5, 12)
	assert.Equal(t, 3, meta.Page)
	assert.False(t, meta.HasNext)

	// Empty result set
	meta = NewPageMeta(1, 5, 0)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)
}
