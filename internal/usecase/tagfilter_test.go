package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glowmarket/backend/internal/domain"
)

func TestApplyTagFilter(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Tags: []string{"vegan", "brightening"}},
		{ID: 2, Tags: []string{"anti-aging"}},
		{ID: 3, Tags: []string{"vegan"}},
		{ID: 4, Tags: nil},
	}

	tests := []struct {
		name    string
		tags    []string
		wantIDs []int
	}{
		{
			name:    "single tag keeps intersecting products",
			tags:    []string{"vegan"},
			wantIDs: []int{1, 3},
		},
		{
			name:    "multiple tags use OR semantics",
			tags:    []string{"vegan", "anti-aging"},
			wantIDs: []int{1, 2, 3},
		},
		{
			name:    "unknown tag keeps nothing",
			tags:    []string{"fragrance-free"},
			wantIDs: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyTagFilter(products, tt.tags)
			ids := make([]int, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestApplyTagFilter_EmptyTagSetReturnsInputUnchanged(t *testing.T) {
	products := []domain.Product{{ID: 1}, {ID: 2}}

	got := ApplyTagFilter(products, nil)
	assert.Equal(t, products, got)

	got = ApplyTagFilter(products, []string{})
	assert.Equal(t, products, got)
}

func TestApplyTagFilter_PreservesOrder(t *testing.T) {
	products := []domain.Product{
		{ID: 5, Tags: []string{"vegan"}},
		{ID: 2, Tags: []string{"vegan"}},
		{ID: 9, Tags: []string{"vegan"}},
	}

	got := ApplyTagFilter(products, []string{"vegan"})
	assert.Equal(t, []int{5, 2, 9}, []int{got[0].ID, got[1].ID, got[2].ID})
}
