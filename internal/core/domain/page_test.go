package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/awidjaja/stokgate/internal/core/domain"
)

func TestPageRequest_Offset(t *testing.T) {
	tests := []struct {
		name   string
		page   int
		size   int
		offset int
	}{
		{name: "first_page_has_zero_offset", page: 1, size: 10, offset: 0},
		{name: "second_page", page: 2, size: 10, offset: 10},
		{name: "fifth_page", page: 5, size: 10, offset: 40},
		{name: "non_default_size", page: 3, size: 25, offset: 50},
		{name: "page_zero_treated_as_first", page: 0, size: 10, offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.PageRequest{Page: tt.page, Size: tt.size}
			assert.Equal(t, tt.offset, req.Offset())
		})
	}
}

func TestPageRequest_Normalize(t *testing.T) {
	req := domain.PageRequest{Page: -3, Size: 0}.Normalize()
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, domain.DefaultPageSize, req.Size)

	req = domain.PageRequest{Page: 7, Size: 20, Search: "SN-42"}.Normalize()
	assert.Equal(t, 7, req.Page)
	assert.Equal(t, 20, req.Size)
	assert.Equal(t, "SN-42", req.Search)
}

func TestPageInfo_TotalPages(t *testing.T) {
	tests := []struct {
		name  string
		count int
		size  int
		want  int
	}{
		{name: "empty_listing_still_one_page", count: 0, size: 10, want: 1},
		{name: "exact_single_page", count: 10, size: 10, want: 1},
		{name: "one_over_boundary", count: 11, size: 10, want: 2},
		{name: "exact_multiple", count: 100, size: 10, want: 10},
		{name: "partial_last_page", count: 95, size: 10, want: 10},
		{name: "single_record", count: 1, size: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := domain.PageInfo{Page: 1, Size: tt.size, TotalCount: tt.count}
			assert.Equal(t, tt.want, info.TotalPages())
		})
	}
}

func TestPageInfo_Navigation(t *testing.T) {
	first := domain.PageInfo{Page: 1, Size: 10, TotalCount: 25}
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())

	middle := domain.PageInfo{Page: 2, Size: 10, TotalCount: 25}
	assert.True(t, middle.HasPrev())
	assert.True(t, middle.HasNext())

	last := domain.PageInfo{Page: 3, Size: 10, TotalCount: 25}
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())

	// A page boundary exactly at the total must not advertise a next page.
	exact := domain.PageInfo{Page: 2, Size: 10, TotalCount: 20}
	assert.False(t, exact.HasNext())
}
