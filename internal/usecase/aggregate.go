package usecase

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/glowmarket/backend/internal/domain"
)

// AverageRating returns the arithmetic mean of the review ratings,
// rounded to one decimal place. An empty review set averages to 0;
// that is a defined result, not an error.
func AverageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
	}
	mean := float64(total) / float64(len(reviews))
	return math.Round(mean*10) / 10
}

// RatingDistribution counts reviews per star bucket. All five buckets
// are always present, zero included. Ratings outside 1..5 are skipped
// with a warning rather than clamped: clamping would fabricate votes.
func RatingDistribution(reviews []domain.Review) map[int]int {
	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	for _, review := range reviews {
		if review.Rating < 1 || review.Rating > 5 {
			log.WithFields(log.Fields{"review": review.ID, "rating": review.Rating}).
				Warn("review rating out of range, skipping")
			continue
		}
		distribution[review.Rating]++
	}
	return distribution
}
