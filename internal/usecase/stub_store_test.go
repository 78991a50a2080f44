package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/glowmarket/backend/internal/domain"
	"github.com/glowmarket/backend/internal/infrastructure/apper"
	"github.com/glowmarket/backend/internal/infrastructure/cache"
)

// stubStore is a scriptable domain.RecordStore for service tests.
// Unset hooks answer with an empty success envelope.
type stubStore struct {
	fetchFn  func(kind string, query domain.QueryDescriptor) (*domain.QueryResponse, error)
	getFn    func(kind string, id int, query domain.QueryDescriptor) (*domain.SingleResponse, error)
	createFn func(kind string, payload domain.RecordPayload) (*domain.WriteResponse, error)
	updateFn func(kind string, payload domain.RecordPayload) (*domain.WriteResponse, error)
	deleteFn func(kind string, payload domain.DeletePayload) (*domain.WriteResponse, error)

	fetchCalls  int
	getCalls    int
	createCalls int
	updateCalls int
	deleteCalls int
}

func (s *stubStore) FetchRecords(ctx context.Context, kind string, query domain.QueryDescriptor) (*domain.QueryResponse, error) {
	s.fetchCalls++
	if s.fetchFn == nil {
		return &domain.QueryResponse{Success: true, Data: []domain.RawRecord{}}, nil
	}
	return s.fetchFn(kind, query)
}

func (s *stubStore) GetRecordByID(ctx context.Context, kind string, id int, query domain.QueryDescriptor) (*domain.SingleResponse, error) {
	s.getCalls++
	if s.getFn == nil {
		return nil, domain.ErrNotFound
	}
	return s.getFn(kind, id, query)
}

func (s *stubStore) CreateRecord(ctx context.Context, kind string, payload domain.RecordPayload) (*domain.WriteResponse, error) {
	s.createCalls++
	if s.createFn == nil {
		return &domain.WriteResponse{Success: true}, nil
	}
	return s.createFn(kind, payload)
}

func (s *stubStore) UpdateRecord(ctx context.Context, kind string, payload domain.RecordPayload) (*domain.WriteResponse, error) {
	s.updateCalls++
	if s.updateFn == nil {
		return &domain.WriteResponse{Success: true}, nil
	}
	return s.updateFn(kind, payload)
}

func (s *stubStore) DeleteRecord(ctx context.Context, kind string, payload domain.DeletePayload) (*domain.WriteResponse, error) {
	s.deleteCalls++
	if s.deleteFn == nil {
		return &domain.WriteResponse{Success: true}, nil
	}
	return s.deleteFn(kind, payload)
}

func newTestCatalog(store domain.RecordStore) *CatalogService {
	return NewCatalogService(store, cache.NewMemoryCache(time.Minute), apper.NewMapper(apper.PolicyLenient), time.Minute)
}

func rawProduct(id int, name, category string, price float64, tags ...string) domain.RawRecord {
	rec := domain.RawRecord{
		"Id":         float64(id),
		"name_c":     name,
		"category_c": category,
		"price_c":    price,
	}
	if len(tags) > 0 {
		encoded, _ := json.Marshal(tags)
		rec["tags_c"] = string(encoded)
	}
	return rec
}

func rawReview(id int, productID string, rating, helpful int) domain.RawRecord {
	return domain.RawRecord{
		"Id":           float64(id),
		"product_id_c": productID,
		"rating_c":     float64(rating),
		"helpful_c":    float64(helpful),
	}
}

func listResponse(records ...domain.RawRecord) *domain.QueryResponse {
	return &domain.QueryResponse{Success: true, Data: records}
}

func singleResponse(rec domain.RawRecord) *domain.SingleResponse {
	return &domain.SingleResponse{Success: true, Data: rec}
}

func writeResponse(rec domain.RawRecord) *domain.WriteResponse {
	return &domain.WriteResponse{
		Success: true,
		Results: []domain.WriteResult{{Success: true, Data: rec}},
	}
}
