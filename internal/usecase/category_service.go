package usecase

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/glowmarket/backend/internal/domain"
	"github.com/glowmarket/backend/internal/infrastructure/apper"
)

// CategoryService serves category lookup and write operations. It
// follows the same absorb-and-degrade failure policy as
// CatalogService.
type CategoryService struct {
	store  domain.RecordStore
	mapper *apper.Mapper
}

// NewCategoryService creates a category service.
func NewCategoryService(store domain.RecordStore, mapper *apper.Mapper) *CategoryService {
	return &CategoryService{store: store, mapper: mapper}
}

// GetAll returns every category.
func (s *CategoryService) GetAll(ctx context.Context) []domain.Category {
	return s.fetchCategories(ctx, categoryQuery(), "get all categories")
}

// GetByID returns one category, or nil when absent.
func (s *CategoryService) GetByID(ctx context.Context, id int) *domain.Category {
	resp, err := s.store.GetRecordByID(ctx, domain.KindCategory, id, categoryQuery())
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Errorf("get category %d: %v", id, err)
		}
		return nil
	}
	if !resp.Success || resp.Data == nil {
		return nil
	}

	category, err := s.mapper.CategoryFromRecord(resp.Data)
	if err != nil {
		log.Warnf("get category %d: %v", id, err)
		return nil
	}
	return &category
}

// GetBySlug returns the category with the given slug, or nil.
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) *domain.Category {
	query := byFieldQuery(categoryQuery(), apper.FieldSlug, slug)
	categories := s.fetchCategories(ctx, query, "get category by slug")
	if len(categories) == 0 {
		return nil
	}
	return &categories[0]
}

// GetSubcategories returns a category's subcategory descriptors; an
// unknown slug yields an empty list.
func (s *CategoryService) GetSubcategories(ctx context.Context, slug string) []domain.Subcategory {
	category := s.GetBySlug(ctx, slug)
	if category == nil {
		return []domain.Subcategory{}
	}
	return category.Subcategories
}

// Create inserts a category built from the patch.
func (s *CategoryService) Create(ctx context.Context, patch domain.CategoryPatch) *domain.Category {
	rec := s.mapper.CategoryPatchToRecord(patch)
	payload := domain.RecordPayload{Records: []domain.RawRecord{rec}}

	resp, err := s.store.CreateRecord(ctx, domain.KindCategory, payload)
	data := writeResult(resp, err, "create category")
	if data == nil {
		return nil
	}

	category, err := s.mapper.CategoryFromRecord(data)
	if err != nil {
		log.Warnf("create category: %v", err)
		return nil
	}
	return &category
}

// Update applies a partial category update.
func (s *CategoryService) Update(ctx context.Context, id int, patch domain.CategoryPatch) *domain.Category {
	rec := s.mapper.CategoryPatchToRecord(patch)
	rec[apper.FieldID] = id
	payload := domain.RecordPayload{Records: []domain.RawRecord{rec}}

	resp, err := s.store.UpdateRecord(ctx, domain.KindCategory, payload)
	data := writeResult(resp, err, "update category")
	if data == nil {
		return nil
	}

	category, err := s.mapper.CategoryFromRecord(data)
	if err != nil {
		log.Warnf("update category %d: %v", id, err)
		return nil
	}
	return &category
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id int) bool {
	payload := domain.DeletePayload{RecordIDs: []int{id}}

	resp, err := s.store.DeleteRecord(ctx, domain.KindCategory, payload)
	if err != nil {
		log.Errorf("delete category %d: %v", id, err)
		return false
	}
	if !resp.Success {
		log.Errorf("delete category %d: %s", id, resp.Message)
		return false
	}
	return len(resp.Results) > 0 && resp.Results[0].Success
}

func (s *CategoryService) fetchCategories(ctx context.Context, query domain.QueryDescriptor, op string) []domain.Category {
	resp, err := s.store.FetchRecords(ctx, domain.KindCategory, query)
	if err != nil {
		log.Errorf("%s: %v", op, err)
		return []domain.Category{}
	}
	if !resp.Success {
		log.Errorf("%s: %s", op, resp.Message)
		return []domain.Category{}
	}

	categories := make([]domain.Category, 0, len(resp.Data))
	for _, rec := range resp.Data {
		category, err := s.mapper.CategoryFromRecord(rec)
		if err != nil {
			log.Warnf("%s: skipping record: %v", op, err)
			continue
		}
		categories = append(categories, category)
	}
	return categories
}
