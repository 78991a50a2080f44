package usecase

import (
	"context"
	"errors"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/glowmarket/backend/internal/domain"
	"github.com/glowmarket/backend/internal/infrastructure/apper"
)

// CollectionService serves curated collection operations, including
// expanding a collection's product-id membership list into products.
type CollectionService struct {
	store   domain.RecordStore
	mapper  *apper.Mapper
	catalog *CatalogService
}

// NewCollectionService creates a collection service. The catalog
// service is needed to resolve collection membership into products.
func NewCollectionService(store domain.RecordStore, mapper *apper.Mapper, catalog *CatalogService) *CollectionService {
	return &CollectionService{store: store, mapper: mapper, catalog: catalog}
}

// GetAll returns every collection.
func (s *CollectionService) GetAll(ctx context.Context) []domain.Collection {
	return s.fetchCollections(ctx, collectionQuery(), "get all collections")
}

// GetByID returns one collection, or nil when absent.
func (s *CollectionService) GetByID(ctx context.Context, id int) *domain.Collection {
	resp, err := s.store.GetRecordByID(ctx, domain.KindCollection, id, collectionQuery())
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Errorf("get collection %d: %v", id, err)
		}
		return nil
	}
	if !resp.Success || resp.Data == nil {
		return nil
	}

	collection, err := s.mapper.CollectionFromRecord(resp.Data)
	if err != nil {
		log.Warnf("get collection %d: %v", id, err)
		return nil
	}
	return &collection
}

// GetBySlug returns the collection with the given slug, or nil.
func (s *CollectionService) GetBySlug(ctx context.Context, slug string) *domain.Collection {
	query := byFieldQuery(collectionQuery(), apper.FieldSlug, slug)
	collections := s.fetchCollections(ctx, query, "get collection by slug")
	if len(collections) == 0 {
		return nil
	}
	return &collections[0]
}

// GetFeatured returns the collections flagged as featured.
func (s *CollectionService) GetFeatured(ctx context.Context) []domain.Collection {
	query := byFieldQuery(collectionQuery(), apper.FieldFeatured, true)
	return s.fetchCollections(ctx, query, "get featured collections")
}

// GetCollectionProducts expands a collection into its member products:
// two ordered calls, collection lookup first, then a full catalog
// fetch filtered by membership. The full scan is acceptable at
// catalog sizes this store serves; it is a known scaling limit, not a
// shortcut to optimize away by changing semantics.
func (s *CollectionService) GetCollectionProducts(ctx context.Context, collectionID int) []domain.Product {
	collection := s.GetByID(ctx, collectionID)
	if collection == nil || len(collection.ProductIDs) == 0 {
		return []domain.Product{}
	}

	members := make(map[string]struct{}, len(collection.ProductIDs))
	for _, id := range collection.ProductIDs {
		members[id] = struct{}{}
	}

	all := s.catalog.GetAll(ctx)
	products := make([]domain.Product, 0, len(collection.ProductIDs))
	for _, product := range all {
		if _, ok := members[strconv.Itoa(product.ID)]; ok {
			products = append(products, product)
		}
	}
	return products
}

// Create inserts a collection built from the patch.
func (s *CollectionService) Create(ctx context.Context, patch domain.CollectionPatch) *domain.Collection {
	rec := s.mapper.CollectionPatchToRecord(patch)
	payload := domain.RecordPayload{Records: []domain.RawRecord{rec}}

	resp, err := s.store.CreateRecord(ctx, domain.KindCollection, payload)
	data := writeResult(resp, err, "create collection")
	if data == nil {
		return nil
	}

	collection, err := s.mapper.CollectionFromRecord(data)
	if err != nil {
		log.Warnf("create collection: %v", err)
		return nil
	}
	return &collection
}

// Update applies a partial collection update.
func (s *CollectionService) Update(ctx context.Context, id int, patch domain.CollectionPatch) *domain.Collection {
	rec := s.mapper.CollectionPatchToRecord(patch)
	rec[apper.FieldID] = id
	payload := domain.RecordPayload{Records: []domain.RawRecord{rec}}

	resp, err := s.store.UpdateRecord(ctx, domain.KindCollection, payload)
	data := writeResult(resp, err, "update collection")
	if data == nil {
		return nil
	}

	collection, err := s.mapper.CollectionFromRecord(data)
	if err != nil {
		log.Warnf("update collection %d: %v", id, err)
		return nil
	}
	return &collection
}

// Delete removes a collection. Member products are untouched; the
// membership list is a reference, not ownership.
func (s *CollectionService) Delete(ctx context.Context, id int) bool {
	payload := domain.DeletePayload{RecordIDs: []int{id}}

	resp, err := s.store.DeleteRecord(ctx, domain.KindCollection, payload)
	if err != nil {
		log.Errorf("delete collection %d: %v", id, err)
		return false
	}
	if !resp.Success {
		log.Errorf("delete collection %d: %s", id, resp.Message)
		return false
	}
	return len(resp.Results) > 0 && resp.Results[0].Success
}

func (s *CollectionService) fetchCollections(ctx context.Context, query domain.QueryDescriptor, op string) []domain.Collection {
	resp, err := s.store.FetchRecords(ctx, domain.KindCollection, query)
	if err != nil {
		log.Errorf("%s: %v", op, err)
		return []domain.Collection{}
	}
	if !resp.Success {
		log.Errorf("%s: %s", op, resp.Message)
		return []domain.Collection{}
	}

	collections := make([]domain.Collection, 0, len(resp.Data))
	for _, rec := range resp.Data {
		collection, err := s.mapper.CollectionFromRecord(rec)
		if err != nil {
			log.Warnf("%s: skipping record: %v", op, err)
			continue
		}
		collections = append(collections, collection)
	}
	return collections
}
