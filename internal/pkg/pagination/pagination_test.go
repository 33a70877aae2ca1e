package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Query
		want Query
	}{
		{"zero values", Query{}, Query{Page: 1, Limit: 20}},
		{"negative page", Query{Page: -3, Limit: 10}, Query{Page: 1, Limit: 10}},
		{"limit above max", Query{Page: 2, Limit: 500}, Query{Page: 2, Limit: 50}},
		{"valid passthrough", Query{Page: 4, Limit: 25}, Query{Page: 4, Limit: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		q     Query
		total int64
		want  Envelope
	}{
		{
			"first of many",
			Query{Page: 1, Limit: 20}, 45,
			Envelope{Page: 1, Limit: 20, Total: 45, TotalPages: 3, HasNextPage: true, HasPrevPage: false},
		},
		{
			"middle page",
			Query{Page: 2, Limit: 20}, 45,
			Envelope{Page: 2, Limit: 20, Total: 45, TotalPages: 3, HasNextPage: true, HasPrevPage: true},
		},
		{
			"last page",
			Query{Page: 3, Limit: 20}, 45,
			Envelope{Page: 3, Limit: 20, Total: 45, TotalPages: 3, HasNextPage: false, HasPrevPage: true},
		},
		{
			"empty collection",
			Query{Page: 1, Limit: 20}, 0,
			Envelope{Page: 1, Limit: 20, Total: 0, TotalPages: 0, HasNextPage: false, HasPrevPage: false},
		},
		{
			"exact multiple",
			Query{Page: 2, Limit: 10}, 20,
			Envelope{Page: 2, Limit: 10, Total: 20, TotalPages: 2, HasNextPage: false, HasPrevPage: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Build(tt.q, tt.total))
		})
	}
}
