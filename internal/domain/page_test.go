package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moxie-medspa/backend/internal/domain"
)

func intPtr(i int) *int { return &i }

func TestNewPaginationParams(t *testing.T) {
	cases := []struct {
		name        string
		page, limit *int
		want        domain.PaginationParams
		wantOffset  int
	}{
		{"defaults", nil, nil, domain.PaginationParams{Page: 1, Limit: domain.DefaultPageLimit}, 0},
		{"explicit", intPtr(3), intPtr(10), domain.PaginationParams{Page: 3, Limit: 10}, 20},
		{"limit clamped", intPtr(1), intPtr(500), domain.PaginationParams{Page: 1, Limit: domain.MaxPageLimit}, 0},
		{"limit at max kept", intPtr(2), intPtr(100), domain.PaginationParams{Page: 2, Limit: 100}, 100},
		{"non-positive ignored", intPtr(0), intPtr(-5), domain.PaginationParams{Page: 1, Limit: domain.DefaultPageLimit}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.NewPaginationParams(tc.page, tc.limit)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOffset, got.Offset())
		})
	}
}
