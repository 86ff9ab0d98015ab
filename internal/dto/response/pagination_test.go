package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponseTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int
	}{
		{45, 20, 3},
		{40, 20, 2},
		{41, 20, 3},
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
	}

	for _, tt := range tests {
		resp := NewPaginatedResponse([]string{}, 1, tt.perPage, tt.total)
		assert.Equal(t, tt.want, resp.Pagination.TotalPages,
			"total=%d per_page=%d", tt.total, tt.perPage)
	}
}

func TestNewPaginatedResponseMeta(t *testing.T) {
	data := []int{1, 2, 3}
	resp := NewPaginatedResponse(data, 2, 3, 7)

	assert.Equal(t, data, resp.Data)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 3, resp.Pagination.PerPage)
	assert.Equal(t, int64(7), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}
