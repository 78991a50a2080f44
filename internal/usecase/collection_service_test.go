package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowmarket/backend/internal/domain"
	"github.com/glowmarket/backend/internal/infrastructure/apper"
)

func rawCollection(id int, name, slug string, productIDs []string, featured bool) domain.RawRecord {
	rec := domain.RawRecord{
		"Id":         float64(id),
		"name_c":     name,
		"slug_c":     slug,
		"featured_c": featured,
	}
	if productIDs != nil {
		encoded, _ := json.Marshal(productIDs)
		rec["product_ids_c"] = string(encoded)
	}
	return rec
}

func newTestCollections(store domain.RecordStore) *CollectionService {
	mapper := apper.NewMapper(apper.PolicyLenient)
	return NewCollectionService(store, mapper, newTestCatalog(store))
}

func TestCollectionGetAll(t *testing.T) {
	store := &stubStore{
		fetchFn: func(kind string, query domain.QueryDescriptor) (*domain.QueryResponse, error) {
			assert.Equal(t, domain.KindCollection, kind)
			return listResponse(rawCollection(1, "Summer Glow", "summer-glow", []string{"1", "2"}, true)), nil
		},
	}
	service := newTestCollections(store)

	collections := service.GetAll(context.Background())

	require.Len(t, collections, 1)
	assert.Equal(t, "Summer Glow", collections[0].Name)
	assert.Equal(t, []string{"1", "2"}, collections[0].ProductIDs)
}

func TestCollectionGetBySlug(t *testing.T) {
	var seen domain.QueryDescriptor
	store := &stubStore{
		fetchFn: func(kind string, query domain.QueryDescriptor) (*domain.QueryResponse, error) {
			seen = query
			return listResponse(rawCollection(1, "Summer Glow", "summer-glow", nil, false)), nil
		},
	}
	service := newTestCollections(store)

	collection := service.GetBySlug(context.Background(), "summer-glow")

	require.NotNil(t, collection)
	assert.Equal(t, 1, collection.ID)

	cond := condition(seen, apper.FieldSlug)
	require.NotNil(t, cond)
	assert.Equal(t, []any{"summer-glow"}, cond.Values)
}

func TestCollectionGetBySlug_NoMatch(t *testing.T) {
	store := &stubStore{}
	service := newTestCollections(store)

	assert.Nil(t, service.GetBySlug(context.Background(), "missing"))
}

func TestCollectionGetFeatured(t *testing.T) {
	var seen domain.QueryDescriptor
	store := &stubStore{
		fetchFn: func(kind string, query domain.QueryDescriptor) (*domain.QueryResponse, error) {
			seen = query
			return listResponse(), nil
		},
	}
	service := newTestCollections(store)

	service.GetFeatured(context.Background())

	cond := condition(seen, apper.FieldFeatured)
	require.NotNil(t, cond)
	assert.Equal(t, domain.OpEqualTo, cond.Operator)
	assert.Equal(t, []any{true}, cond.Values)
}

func TestCollectionProducts(t *testing.T) {
	store := &stubStore{
		getFn: func(kind string, id int, query domain.QueryDescriptor) (*domain.SingleResponse, error) {
			assert.Equal(t, domain.KindCollection, kind)
			return singleResponse(rawCollection(1, "Summer Glow", "summer-glow", []string{"1", "3"}, false)), nil
		},
		fetchFn: func(kind string, query domain.QueryDescriptor) (*domain.QueryResponse, error) {
			assert.Equal(t, domain.KindProduct, kind)
			return listResponse(
				rawProduct(1, "Vitamin C Serum", "skincare", 29.99),
				rawProduct(2, "Clay Mask", "skincare", 18.50),
				rawProduct(3, "Lip Balm", "makeup", 7.99),
			), nil
		},
	}
	service := newTestCollections(store)

	products := service.GetCollectionProducts(context.Background(), 1)

	require.Len(t, products, 2)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, 3, products[1].ID)
}

func TestCollectionProducts_MissingCollection(t *testing.T) {
	store := &stubStore{}
	service := newTestCollections(store)

	products := service.GetCollectionProducts(context.Background(), 999)

	assert.NotNil(t, products)
	assert.Empty(t, products)
	assert.Zero(t, store.fetchCalls, "no catalog scan without a collection")
}

func TestCollectionProducts_EmptyMembership(t *testing.T) {
	store := &stubStore{
		getFn: func(kind string, id int, query domain.QueryDescriptor) (*domain.SingleResponse, error) {
			return singleResponse(rawCollection(1, "Empty Edit", "empty-edit", []string{}, false)), nil
		},
	}
	service := newTestCollections(store)

	products := service.GetCollectionProducts(context.Background(), 1)

	assert.NotNil(t, products)
	assert.Empty(t, products)
	assert.Zero(t, store.fetchCalls)
}

func TestCollectionDelete(t *testing.T) {
	store := &stubStore{
		deleteFn: func(kind string, payload domain.DeletePayload) (*domain.WriteResponse, error) {
			assert.Equal(t, domain.KindCollection, kind)
			assert.Equal(t, []int{1}, payload.RecordIDs)
			return writeResponse(nil), nil
		},
	}
	service := newTestCollections(store)

	assert.True(t, service.Delete(context.Background(), 1))
}
