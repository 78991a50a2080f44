package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowmarket/backend/internal/domain"
	"github.com/glowmarket/backend/internal/infrastructure/apper"
)

func condition(query domain.QueryDescriptor, field string) *domain.Condition {
	for i := range query.Where {
		if query.Where[i].FieldName == field {
			return &query.Where[i]
		}
	}
	return nil
}

func TestBuildProductQuery_EmptyFilter(t *testing.T) {
	query := BuildProductQuery(domain.ProductFilter{})

	assert.Empty(t, query.Where)
	assert.Empty(t, query.WhereGroups)
	assert.Len(t, query.Fields, len(apper.ProductFields))
	require.Len(t, query.OrderBy, 1)
	assert.Equal(t, apper.FieldRating, query.OrderBy[0].FieldName)
	assert.Equal(t, domain.SortDesc, query.OrderBy[0].SortType)
}

func TestBuildProductQuery_Predicates(t *testing.T) {
	min, max := 10.0, 50.0
	query := BuildProductQuery(domain.ProductFilter{
		Category:    "skincare",
		Subcategory: "serums",
		Brands:      []string{"GlowLab", "Lumi"},
		PriceMin:    &min,
		PriceMax:    &max,
		InStock:     true,
	})

	cat := condition(query, apper.FieldCategory)
	require.NotNil(t, cat)
	assert.Equal(t, domain.OpEqualTo, cat.Operator)
	assert.Equal(t, []any{"skincare"}, cat.Values)

	sub := condition(query, apper.FieldSubcategory)
	require.NotNil(t, sub)
	assert.Equal(t, []any{"serums"}, sub.Values)

	brand := condition(query, apper.FieldBrand)
	require.NotNil(t, brand)
	assert.Equal(t, domain.OpExactMatch, brand.Operator)
	assert.Equal(t, []any{"GlowLab", "Lumi"}, brand.Values)

	stock := condition(query, apper.FieldInStock)
	require.NotNil(t, stock)
	assert.Equal(t, []any{true}, stock.Values)

	var priceOps []string
	for _, cond := range query.Where {
		if cond.FieldName == apper.FieldPrice {
			priceOps = append(priceOps, cond.Operator)
		}
	}
	assert.ElementsMatch(t, []string{domain.OpGreaterThanOrEqualTo, domain.OpLessThanOrEqualTo}, priceOps)
}

func TestBuildProductQuery_AbsentOptionsAddNoPredicate(t *testing.T) {
	query := BuildProductQuery(domain.ProductFilter{InStock: false})

	assert.Nil(t, condition(query, apper.FieldInStock))
	assert.Nil(t, condition(query, apper.FieldPrice))
	assert.Nil(t, condition(query, apper.FieldCategory))
}

func TestBuildProductQuery_ZeroPriceMinIsAPredicate(t *testing.T) {
	zero := 0.0
	query := BuildProductQuery(domain.ProductFilter{PriceMin: &zero})

	cond := condition(query, apper.FieldPrice)
	require.NotNil(t, cond, "an explicit 0 bound must produce a predicate")
	assert.Equal(t, domain.OpGreaterThanOrEqualTo, cond.Operator)
	assert.Equal(t, []any{0.0}, cond.Values)
}

func TestBuildProductQuery_TagsStayLocal(t *testing.T) {
	query := BuildProductQuery(domain.ProductFilter{Tags: []string{"vegan", "cruelty-free"}})

	assert.Nil(t, condition(query, apper.FieldTags))
	assert.Empty(t, query.WhereGroups)
}

func TestBuildProductQuery_SortMapping(t *testing.T) {
	tests := []struct {
		sortBy    string
		field     string
		direction string
	}{
		{domain.SortPriceLow, apper.FieldPrice, domain.SortAsc},
		{domain.SortPriceHigh, apper.FieldPrice, domain.SortDesc},
		{domain.SortRating, apper.FieldRating, domain.SortDesc},
		{domain.SortNewest, apper.FieldID, domain.SortDesc},
		{"", apper.FieldRating, domain.SortDesc},
		{"unknown", apper.FieldRating, domain.SortDesc},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			query := BuildProductQuery(domain.ProductFilter{SortBy: tt.sortBy})
			require.Len(t, query.OrderBy, 1)
			assert.Equal(t, tt.field, query.OrderBy[0].FieldName)
			assert.Equal(t, tt.direction, query.OrderBy[0].SortType)
		})
	}
}

func TestSearchQuery(t *testing.T) {
	query := searchQuery("GlowLab")

	require.Len(t, query.WhereGroups, 1)
	group := query.WhereGroups[0]
	assert.Equal(t, "OR", group.Operator)
	require.Len(t, group.SubGroups, 3)

	fields := make([]string, 0, 3)
	for _, sub := range group.SubGroups {
		require.Len(t, sub.Conditions, 1)
		cond := sub.Conditions[0]
		assert.Equal(t, domain.OpContains, cond.Operator)
		assert.Equal(t, []any{"glowlab"}, cond.Values, "term must be lowercased")
		fields = append(fields, cond.FieldName)
	}
	assert.ElementsMatch(t, []string{apper.FieldName, apper.FieldBrand, apper.FieldDescription}, fields)
}

func TestFeaturedQuery(t *testing.T) {
	query := featuredQuery(8)

	require.NotNil(t, query.PagingInfo)
	assert.Equal(t, 8, query.PagingInfo.Limit)
	assert.Equal(t, 0, query.PagingInfo.Offset)
	require.Len(t, query.OrderBy, 1)
	assert.Equal(t, apper.FieldRating, query.OrderBy[0].FieldName)
	assert.Equal(t, domain.SortDesc, query.OrderBy[0].SortType)
}

func TestRelatedQuery(t *testing.T) {
	query := relatedQuery("skincare", 7, 4)

	cat := condition(query, apper.FieldCategory)
	require.NotNil(t, cat)
	assert.Equal(t, []any{"skincare"}, cat.Values)

	exclude := condition(query, apper.FieldID)
	require.NotNil(t, exclude)
	assert.Equal(t, domain.OpNotEqualTo, exclude.Operator)
	assert.Equal(t, []any{7}, exclude.Values)

	require.NotNil(t, query.PagingInfo)
	assert.Equal(t, 4, query.PagingInfo.Limit)
}

func TestReviewsByProductQuery(t *testing.T) {
	query := reviewsByProductQuery("7")

	cond := condition(query, apper.FieldProductID)
	require.NotNil(t, cond)
	assert.Equal(t, []any{"7"}, cond.Values)

	require.Len(t, query.OrderBy, 1)
	assert.Equal(t, apper.FieldDate, query.OrderBy[0].FieldName)
	assert.Equal(t, domain.SortDesc, query.OrderBy[0].SortType)
}
