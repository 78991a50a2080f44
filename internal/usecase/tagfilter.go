package usecase

import "github.com/glowmarket/backend/internal/domain"

// ApplyTagFilter keeps products whose tag set intersects the requested
// tags (OR semantics: one shared tag is enough). An empty tag set
// returns the input unchanged.
//
// This runs after remote retrieval and sorting, because the store
// cannot match inside serialized list fields. Remote limits are
// applied before this stage, so a filtered page may be shorter than
// the requested limit.
func ApplyTagFilter(products []domain.Product, tags []string) []domain.Product {
	if len(tags) == 0 {
		return products
	}

	wanted := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		wanted[tag] = struct{}{}
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		for _, tag := range product.Tags {
			if _, ok := wanted[tag]; ok {
				filtered = append(filtered, product)
				break
			}
		}
	}
	return filtered
}
