package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/glowmarket/backend/internal/domain"
	"github.com/glowmarket/backend/internal/infrastructure/apper"
)

// ReviewService serves review operations and the derived rating
// statistics built on top of them.
type ReviewService struct {
	store  domain.RecordStore
	mapper *apper.Mapper
	now    func() time.Time
}

// NewReviewService creates a review service.
func NewReviewService(store domain.RecordStore, mapper *apper.Mapper) *ReviewService {
	return &ReviewService{store: store, mapper: mapper, now: time.Now}
}

// GetAll returns every review.
func (s *ReviewService) GetAll(ctx context.Context) []domain.Review {
	return s.fetchReviews(ctx, reviewQuery(), "get all reviews")
}

// GetByID returns one review, or nil when absent.
func (s *ReviewService) GetByID(ctx context.Context, id int) *domain.Review {
	resp, err := s.store.GetRecordByID(ctx, domain.KindReview, id, reviewQuery())
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Errorf("get review %d: %v", id, err)
		}
		return nil
	}
	if !resp.Success || resp.Data == nil {
		return nil
	}

	review, err := s.mapper.ReviewFromRecord(resp.Data)
	if err != nil {
		log.Warnf("get review %d: %v", id, err)
		return nil
	}
	return &review
}

// GetByProductID returns a product's reviews, newest first.
func (s *ReviewService) GetByProductID(ctx context.Context, productID int) []domain.Review {
	query := reviewsByProductQuery(strconv.Itoa(productID))
	return s.fetchReviews(ctx, query, "get reviews by product")
}

// Create stores a new review. The service stamps today's date and a
// zero helpful counter; callers only supply the review content.
func (s *ReviewService) Create(ctx context.Context, draft domain.NewReview) *domain.Review {
	if draft.ProductID == "" || draft.Rating < 1 || draft.Rating > 5 {
		log.Warnf("create review: %v", domain.ErrInvalidRequest)
		return nil
	}

	date := s.now().Format("2006-01-02")
	rec := s.mapper.ReviewToRecord(draft, date)
	payload := domain.RecordPayload{Records: []domain.RawRecord{rec}}

	resp, err := s.store.CreateRecord(ctx, domain.KindReview, payload)
	data := writeResult(resp, err, "create review")
	if data == nil {
		return nil
	}

	review, err := s.mapper.ReviewFromRecord(data)
	if err != nil {
		log.Warnf("create review: %v", err)
		return nil
	}
	return &review
}

// MarkHelpful increments a review's helpful-vote counter: read the
// current count, then write count+1 as a partial update. The lookup
// must complete before the write so the increment is based on the
// stored value.
func (s *ReviewService) MarkHelpful(ctx context.Context, reviewID int) *domain.Review {
	current := s.GetByID(ctx, reviewID)
	if current == nil {
		return nil
	}

	rec := domain.RawRecord{
		apper.FieldID:      reviewID,
		apper.FieldHelpful: current.Helpful + 1,
	}
	payload := domain.RecordPayload{Records: []domain.RawRecord{rec}}

	resp, err := s.store.UpdateRecord(ctx, domain.KindReview, payload)
	data := writeResult(resp, err, "mark review helpful")
	if data == nil {
		return nil
	}

	review, err := s.mapper.ReviewFromRecord(data)
	if err != nil {
		log.Warnf("mark review %d helpful: %v", reviewID, err)
		return nil
	}
	return &review
}

// AverageRating returns a product's mean review rating rounded to one
// decimal place, 0 when it has no reviews.
func (s *ReviewService) AverageRating(ctx context.Context, productID int) float64 {
	return AverageRating(s.GetByProductID(ctx, productID))
}

// RatingDistribution returns a product's review counts per star
// bucket, all five buckets always present.
func (s *ReviewService) RatingDistribution(ctx context.Context, productID int) map[int]int {
	return RatingDistribution(s.GetByProductID(ctx, productID))
}

func (s *ReviewService) fetchReviews(ctx context.Context, query domain.QueryDescriptor, op string) []domain.Review {
	resp, err := s.store.FetchRecords(ctx, domain.KindReview, query)
	if err != nil {
		log.Errorf("%s: %v", op, err)
		return []domain.Review{}
	}
	if !resp.Success {
		log.Errorf("%s: %s", op, resp.Message)
		return []domain.Review{}
	}

	reviews := make([]domain.Review, 0, len(resp.Data))
	for _, rec := range resp.Data {
		review, err := s.mapper.ReviewFromRecord(rec)
		if err != nil {
			log.Warnf("%s: skipping record: %v", op, err)
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews
}
