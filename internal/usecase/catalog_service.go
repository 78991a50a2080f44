package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/glowmarket/backend/internal/domain"
	"github.com/glowmarket/backend/internal/infrastructure/apper"
)

// Default result limits for featured and related views.
const (
	DefaultFeaturedLimit = 8
	DefaultRelatedLimit  = 4
)

// CatalogService serves product browse, lookup and write operations.
//
// Failure policy: every method absorbs store failures. List operations
// degrade to an empty slice, single-entity operations to nil, and the
// failure is logged — no error crosses the service boundary. Not-found
// is a normal nil, without a failure log.
type CatalogService struct {
	store    domain.RecordStore
	cache    domain.CacheRepository
	mapper   *apper.Mapper
	cacheTTL time.Duration
}

// NewCatalogService creates a catalog service with its dependencies
// injected; nothing is constructed per call.
func NewCatalogService(store domain.RecordStore, cache domain.CacheRepository, mapper *apper.Mapper, cacheTTL time.Duration) *CatalogService {
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}
	return &CatalogService{
		store:    store,
		cache:    cache,
		mapper:   mapper,
		cacheTTL: cacheTTL,
	}
}

// GetAll returns the full product catalog.
func (s *CatalogService) GetAll(ctx context.Context) []domain.Product {
	return s.fetchProducts(ctx, productQuery(), "get all products")
}

// GetByID returns one product, or nil when it does not exist or the
// store call fails. Lookups are cache-aside: cache, then store, then
// fill.
func (s *CatalogService) GetByID(ctx context.Context, id int) *domain.Product {
	key := productCacheKey(id)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		if product, ok := productFromCache(cached); ok {
			return product
		}
	}

	resp, err := s.store.GetRecordByID(ctx, domain.KindProduct, id, productQuery())
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Errorf("get product %d: %v", id, err)
		}
		return nil
	}
	if !resp.Success || resp.Data == nil {
		return nil
	}

	product, err := s.mapper.ProductFromRecord(resp.Data)
	if err != nil {
		log.Warnf("get product %d: %v", id, err)
		return nil
	}

	if err := s.cache.Set(ctx, key, product, s.cacheTTL); err != nil {
		log.Debugf("cache product %d: %v", id, err)
	}
	return &product
}

// GetByCategory returns the products in one category.
func (s *CatalogService) GetByCategory(ctx context.Context, category string) []domain.Product {
	query := byFieldQuery(productQuery(), apper.FieldCategory, category)
	return s.fetchProducts(ctx, query, "get products by category")
}

// GetBySubcategory returns the products in one subcategory.
func (s *CatalogService) GetBySubcategory(ctx context.Context, subcategory string) []domain.Product {
	query := byFieldQuery(productQuery(), apper.FieldSubcategory, subcategory)
	return s.fetchProducts(ctx, query, "get products by subcategory")
}

// Search matches the term case-insensitively against product name,
// brand or description.
func (s *CatalogService) Search(ctx context.Context, term string) []domain.Product {
	return s.fetchProducts(ctx, searchQuery(term), "search products")
}

// GetFeatured returns the top-rated products, at most limit of them
// (default 8).
func (s *CatalogService) GetFeatured(ctx context.Context, limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return s.fetchProducts(ctx, featuredQuery(limit), "get featured products")
}

// GetRelated returns up to limit products (default 4) sharing the seed
// product's category, never including the seed itself. An unknown seed
// id yields an empty result.
func (s *CatalogService) GetRelated(ctx context.Context, productID, limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	seed := s.GetByID(ctx, productID)
	if seed == nil {
		return []domain.Product{}
	}

	query := relatedQuery(seed.Category, productID, limit)
	return s.fetchProducts(ctx, query, "get related products")
}

// Filter runs a multi-field filter/sort query, then applies the tag
// post-filter the store cannot express.
func (s *CatalogService) Filter(ctx context.Context, filter domain.ProductFilter) []domain.Product {
	products := s.fetchProducts(ctx, BuildProductQuery(filter), "filter products")
	return ApplyTagFilter(products, filter.Tags)
}

// Create inserts a product built from the patch and returns the stored
// entity, or nil on failure.
func (s *CatalogService) Create(ctx context.Context, patch domain.ProductPatch) *domain.Product {
	rec := s.mapper.ProductPatchToRecord(patch)
	payload := domain.RecordPayload{Records: []domain.RawRecord{rec}}

	resp, err := s.store.CreateRecord(ctx, domain.KindProduct, payload)
	data := writeResult(resp, err, "create product")
	if data == nil {
		return nil
	}

	product, err := s.mapper.ProductFromRecord(data)
	if err != nil {
		log.Warnf("create product: %v", err)
		return nil
	}
	return &product
}

// Update applies a partial update; fields absent from the patch keep
// their stored values. The cached copy is invalidated.
func (s *CatalogService) Update(ctx context.Context, id int, patch domain.ProductPatch) *domain.Product {
	rec := s.mapper.ProductPatchToRecord(patch)
	rec[apper.FieldID] = id
	payload := domain.RecordPayload{Records: []domain.RawRecord{rec}}

	resp, err := s.store.UpdateRecord(ctx, domain.KindProduct, payload)
	data := writeResult(resp, err, "update product")
	if data == nil {
		return nil
	}

	if err := s.cache.Delete(ctx, productCacheKey(id)); err != nil {
		log.Debugf("invalidate product %d: %v", id, err)
	}

	product, err := s.mapper.ProductFromRecord(data)
	if err != nil {
		log.Warnf("update product %d: %v", id, err)
		return nil
	}
	return &product
}

// Delete removes a product, reporting whether the store confirmed it.
func (s *CatalogService) Delete(ctx context.Context, id int) bool {
	payload := domain.DeletePayload{RecordIDs: []int{id}}

	resp, err := s.store.DeleteRecord(ctx, domain.KindProduct, payload)
	if err != nil {
		log.Errorf("delete product %d: %v", id, err)
		return false
	}
	if !resp.Success {
		log.Errorf("delete product %d: %s", id, resp.Message)
		return false
	}
	if len(resp.Results) == 0 || !resp.Results[0].Success {
		return false
	}

	if err := s.cache.Delete(ctx, productCacheKey(id)); err != nil {
		log.Debugf("invalidate product %d: %v", id, err)
	}
	return true
}

// fetchProducts runs one list query and maps the records, degrading to
// an empty slice on any failure.
func (s *CatalogService) fetchProducts(ctx context.Context, query domain.QueryDescriptor, op string) []domain.Product {
	resp, err := s.store.FetchRecords(ctx, domain.KindProduct, query)
	if err != nil {
		log.Errorf("%s: %v", op, err)
		return []domain.Product{}
	}
	if !resp.Success {
		log.Errorf("%s: %s", op, resp.Message)
		return []domain.Product{}
	}

	products := make([]domain.Product, 0, len(resp.Data))
	for _, rec := range resp.Data {
		product, err := s.mapper.ProductFromRecord(rec)
		if err != nil {
			log.Warnf("%s: skipping record: %v", op, err)
			continue
		}
		products = append(products, product)
	}
	return products
}

// writeResult unwraps a write envelope down to the stored record, or
// nil with a log on any failure along the way.
func writeResult(resp *domain.WriteResponse, err error, op string) domain.RawRecord {
	if err != nil {
		log.Errorf("%s: %v", op, err)
		return nil
	}
	if !resp.Success {
		log.Errorf("%s: %s", op, resp.Message)
		return nil
	}
	if len(resp.Results) == 0 || !resp.Results[0].Success {
		return nil
	}
	return resp.Results[0].Data
}

func productCacheKey(id int) string {
	return fmt.Sprintf("product:%d", id)
}

// productFromCache rebuilds a product from the cache's JSON-shaped
// value.
func productFromCache(value interface{}) (*domain.Product, bool) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}
	var product domain.Product
	if err := json.Unmarshal(encoded, &product); err != nil {
		return nil, false
	}
	return &product, true
}
