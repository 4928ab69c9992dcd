package services

import (
	"context"
	"fmt"

	"github.com/DELasso/Airbnb-Project/internal/models"
)

type ReviewService struct {
	listingsRepo models.ListingsRepo
	reviewsRepo  models.ReviewsRepo
}

func NewReviewService(listingsRepo models.ListingsRepo, reviewsRepo models.ReviewsRepo) *ReviewService {
	return &ReviewService{
		listingsRepo: listingsRepo,
		reviewsRepo:  reviewsRepo,
	}
}

// GetListingReviews returns a listing's reviews (most recent first) along
// with the rating summary derived from them.
func (rs *ReviewService) GetListingReviews(ctx context.Context, listingId int) ([]models.Review, models.RatingSummary, error) {
	if listingId <= 0 {
		return nil, models.RatingSummary{}, fmt.Errorf("invalid listing ID")
	}

	listing, err := rs.listingsRepo.GetListingByID(ctx, listingId)
	if err != nil {
		return nil, models.RatingSummary{}, err
	}
	if listing == nil {
		return nil, models.RatingSummary{}, fmt.Errorf("listing not found")
	}

	reviews, err := rs.reviewsRepo.GetReviewsByListing(ctx, listingId)
	if err != nil {
		return nil, models.RatingSummary{}, err
	}

	return reviews, models.Summarize(reviews), nil
}

// SubmitReview runs the composer draft through validation and stores the
// accepted review. Author fields come from the authenticated identity and
// are treated as opaque display strings; anonymous submissions get a
// placeholder name.
func (rs *ReviewService) SubmitReview(ctx context.Context, listingId int, draft models.ReviewDraft) (*models.Review, error) {
	if listingId <= 0 {
		return nil, fmt.Errorf("invalid listing ID")
	}

	listing, err := rs.listingsRepo.GetListingByID(ctx, listingId)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("listing not found")
	}

	if draft.AuthorName == "" {
		draft.AuthorName = "Usuario Anónimo"
	}

	return rs.reviewsRepo.AddReview(ctx, listingId, draft)
}
