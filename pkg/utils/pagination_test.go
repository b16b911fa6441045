package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	p := GetPaginationParams(0, -1)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageLimit, p.Limit)

	p = GetPaginationParams(1, 0)
	assert.Equal(t, DefaultPageLimit, p.Limit)

	p = GetPaginationParams(2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = GetPaginationParams(1, 5000)
	assert.Equal(t, MaxPageLimit, p.Limit)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 1, Limit: 20}.CalculateOffset())
	assert.Equal(t, 40, PaginationParams{Page: 3, Limit: 20}.CalculateOffset())
	assert.Equal(t, 0, PaginationParams{Page: 3, Limit: 0}.CalculateOffset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(101, 2, 20)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, int64(101), meta.TotalCount)
	assert.Equal(t, 6, meta.TotalPages)

	noLimit := CalculateMeta(45, 3, 0)
	assert.Equal(t, 3, noLimit.Page)
	assert.Equal(t, DefaultPageLimit, noLimit.Limit)
	assert.Equal(t, 3, noLimit.TotalPages)

	empty := CalculateMeta(0, 1, 10)
	assert.Equal(t, 0, empty.TotalPages)
}
