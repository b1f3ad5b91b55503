// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/wastewise/pkg/pagination"
)

/*
TestFromRequest verifies query parsing and clamping.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"Defaults", "", pagination.Params{Page: 1, Limit: 20}},
		{"Explicit", "?page=3&limit=5", pagination.Params{Page: 3, Limit: 5}},
		{"Garbage", "?page=x&limit=y", pagination.Params{Page: 1, Limit: 20}},
		{"Negative", "?page=-2&limit=0", pagination.Params{Page: 1, Limit: 20}},
		{"Above max", "?limit=1000", pagination.Params{Page: 1, Limit: 100}},
		{"Page above max", "?page=92233720368547760&limit=100", pagination.Params{Page: pagination.MaxPage, Limit: 100}},
		{"Page far above max", "?page=922337203685477590&limit=100", pagination.Params{Page: pagination.MaxPage, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/items"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(r))
		})
	}
}

func TestOffsetAndMeta(t *testing.T) {
	params := pagination.Params{Page: 2, Limit: 10}
	assert.Equal(t, 10, params.Offset())

	meta := pagination.NewMeta(params, 25)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)

	last := pagination.NewMeta(pagination.Params{Page: 3, Limit: 10}, 25)
	assert.False(t, last.HasNext)

	empty := pagination.NewMeta(pagination.Params{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

/*
TestOffset_Bounded verifies the offset stays non-negative and within int32
for the largest accepted pages.
*/
func TestOffset_Bounded(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"Overflowing page", "?page=92233720368547760&limit=100"},
		{"Wrapping page", "?page=922337203685477590&limit=100"},
		{"Max page", "?page=21474836&limit=100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/items"+tt.query, nil)
			offset := pagination.FromRequest(r).Offset()

			assert.GreaterOrEqual(t, offset, 0)
			assert.LessOrEqual(t, offset, math.MaxInt32)
			assert.Equal(t, (pagination.MaxPage-1)*pagination.MaxLimit, offset)
		})
	}

	assert.Equal(t, (pagination.MaxPage-1)*10, pagination.Params{Page: math.MaxInt, Limit: 10}.Offset())
}
