package domain

import (
	"context"
	"time"
)

// RecordStore is the query/response contract with the remote record
// store. Implementations own transport, auth and retries; callers own
// interpretation of the response envelopes (a Success=false envelope
// is returned without error).
type RecordStore interface {
	FetchRecords(ctx context.Context, kind string, query QueryDescriptor) (*QueryResponse, error)
	GetRecordByID(ctx context.Context, kind string, id int, query QueryDescriptor) (*SingleResponse, error)
	CreateRecord(ctx context.Context, kind string, payload RecordPayload) (*WriteResponse, error)
	UpdateRecord(ctx context.Context, kind string, payload RecordPayload) (*WriteResponse, error)
	DeleteRecord(ctx context.Context, kind string, payload DeletePayload) (*WriteResponse, error)
}

// CacheRepository defines the interface for caching operations.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
