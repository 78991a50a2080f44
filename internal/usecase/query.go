package usecase

import (
	"strings"

	"github.com/glowmarket/backend/internal/domain"
	"github.com/glowmarket/backend/internal/infrastructure/apper"
)

// Query builders produce the declarative descriptors sent to the
// record store. Options absent from the filter produce no predicate:
// an omitted price bound is not the same as a bound of zero.

func productQuery() domain.QueryDescriptor {
	return domain.QueryDescriptor{Fields: domain.Fields(apper.ProductFields...)}
}

func categoryQuery() domain.QueryDescriptor {
	return domain.QueryDescriptor{Fields: domain.Fields(apper.CategoryFields...)}
}

func collectionQuery() domain.QueryDescriptor {
	return domain.QueryDescriptor{Fields: domain.Fields(apper.CollectionFields...)}
}

func reviewQuery() domain.QueryDescriptor {
	return domain.QueryDescriptor{Fields: domain.Fields(apper.ReviewFields...)}
}

// BuildProductQuery translates a ProductFilter into a store query.
// Tags are deliberately not translated: the store cannot match inside
// serialized list fields, so tag filtering happens client-side after
// retrieval (ApplyTagFilter).
func BuildProductQuery(filter domain.ProductFilter) domain.QueryDescriptor {
	query := productQuery()

	if filter.Category != "" {
		query.Where = append(query.Where, domain.Condition{
			FieldName: apper.FieldCategory, Operator: domain.OpEqualTo, Values: []any{filter.Category},
		})
	}
	if filter.Subcategory != "" {
		query.Where = append(query.Where, domain.Condition{
			FieldName: apper.FieldSubcategory, Operator: domain.OpEqualTo, Values: []any{filter.Subcategory},
		})
	}
	if len(filter.Brands) > 0 {
		values := make([]any, 0, len(filter.Brands))
		for _, brand := range filter.Brands {
			values = append(values, brand)
		}
		query.Where = append(query.Where, domain.Condition{
			FieldName: apper.FieldBrand, Operator: domain.OpExactMatch, Values: values,
		})
	}
	if filter.PriceMin != nil {
		query.Where = append(query.Where, domain.Condition{
			FieldName: apper.FieldPrice, Operator: domain.OpGreaterThanOrEqualTo, Values: []any{*filter.PriceMin},
		})
	}
	if filter.PriceMax != nil {
		query.Where = append(query.Where, domain.Condition{
			FieldName: apper.FieldPrice, Operator: domain.OpLessThanOrEqualTo, Values: []any{*filter.PriceMax},
		})
	}
	if filter.InStock {
		query.Where = append(query.Where, domain.Condition{
			FieldName: apper.FieldInStock, Operator: domain.OpEqualTo, Values: []any{true},
		})
	}

	query.OrderBy = []domain.SortOrder{sortOrder(filter.SortBy)}
	return query
}

// sortOrder maps a sort key to its store ordering; rating descending
// is the default.
func sortOrder(sortBy string) domain.SortOrder {
	switch sortBy {
	case domain.SortPriceLow:
		return domain.SortOrder{FieldName: apper.FieldPrice, SortType: domain.SortAsc}
	case domain.SortPriceHigh:
		return domain.SortOrder{FieldName: apper.FieldPrice, SortType: domain.SortDesc}
	case domain.SortNewest:
		return domain.SortOrder{FieldName: apper.FieldID, SortType: domain.SortDesc}
	case domain.SortRating:
		return domain.SortOrder{FieldName: apper.FieldRating, SortType: domain.SortDesc}
	default:
		return domain.SortOrder{FieldName: apper.FieldRating, SortType: domain.SortDesc}
	}
}

// searchQuery matches the term case-insensitively against name, brand
// or description (OR across the three Contains checks).
func searchQuery(term string) domain.QueryDescriptor {
	term = strings.ToLower(term)
	query := productQuery()
	query.WhereGroups = []domain.WhereGroup{{
		Operator: "OR",
		SubGroups: []domain.SubGroup{
			{Conditions: []domain.GroupCondition{{FieldName: apper.FieldName, Operator: domain.OpContains, Values: []any{term}}}},
			{Conditions: []domain.GroupCondition{{FieldName: apper.FieldBrand, Operator: domain.OpContains, Values: []any{term}}}},
			{Conditions: []domain.GroupCondition{{FieldName: apper.FieldDescription, Operator: domain.OpContains, Values: []any{term}}}},
		},
	}}
	return query
}

// featuredQuery returns the top products by rating.
func featuredQuery(limit int) domain.QueryDescriptor {
	query := productQuery()
	query.OrderBy = []domain.SortOrder{{FieldName: apper.FieldRating, SortType: domain.SortDesc}}
	query.PagingInfo = &domain.PagingInfo{Limit: limit, Offset: 0}
	return query
}

// relatedQuery selects same-category products, excluding the seed
// product itself.
func relatedQuery(category string, excludeID, limit int) domain.QueryDescriptor {
	query := productQuery()
	query.Where = []domain.Condition{
		{FieldName: apper.FieldCategory, Operator: domain.OpEqualTo, Values: []any{category}},
		{FieldName: apper.FieldID, Operator: domain.OpNotEqualTo, Values: []any{excludeID}},
	}
	query.PagingInfo = &domain.PagingInfo{Limit: limit, Offset: 0}
	return query
}

// byFieldQuery adds a single equality predicate to a base query.
func byFieldQuery(base domain.QueryDescriptor, field string, value any) domain.QueryDescriptor {
	base.Where = append(base.Where, domain.Condition{
		FieldName: field, Operator: domain.OpEqualTo, Values: []any{value},
	})
	return base
}

// reviewsByProductQuery selects a product's reviews, newest first.
func reviewsByProductQuery(productID string) domain.QueryDescriptor {
	query := byFieldQuery(reviewQuery(), apper.FieldProductID, productID)
	query.OrderBy = []domain.SortOrder{{FieldName: apper.FieldDate, SortType: domain.SortDesc}}
	return query
}
