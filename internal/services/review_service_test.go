package services

import (
	"context"
	"testing"

	"github.com/DELasso/Airbnb-Project/internal/models"
)

func seededReviewService() *ReviewService {
	catalog := models.NewCatalogRepo(models.SeedListings(), models.SeedReviews())
	return NewReviewService(catalog, catalog)
}

func TestGetListingReviewsIncludesSummary(t *testing.T) {
	rs := seededReviewService()
	ctx := context.Background()

	reviews, summary, err := rs.GetListingReviews(ctx, 1)
	if err != nil {
		t.Fatalf("GetListingReviews failed: %v", err)
	}
	if len(reviews) == 0 {
		t.Fatal("listing 1 ships with seed reviews")
	}
	if summary.ReviewCount != len(reviews) {
		t.Errorf("summary count %d does not match %d reviews", summary.ReviewCount, len(reviews))
	}
	if !summary.HasRatings() {
		t.Error("seeded reviews carry category scores, summary should have averages")
	}
}

func TestGetListingReviewsUnknownListing(t *testing.T) {
	rs := seededReviewService()

	if _, _, err := rs.GetListingReviews(context.Background(), 999); err == nil {
		t.Error("expected an error for an unknown listing")
	}
	if _, _, err := rs.GetListingReviews(context.Background(), 0); err == nil {
		t.Error("expected an error for a non-positive id")
	}
}

func TestSubmitReviewDefaultsAuthor(t *testing.T) {
	rs := seededReviewService()
	ctx := context.Background()

	review, err := rs.SubmitReview(ctx, 3, models.ReviewDraft{
		Comment:        "Muy cómodo y bien ubicado en el centro",
		CategoryScores: map[models.RatingCategory]int{models.CategoryLocation: 5},
	})
	if err != nil {
		t.Fatalf("SubmitReview failed: %v", err)
	}
	if review.AuthorName != "Usuario Anónimo" {
		t.Errorf("expected the anonymous placeholder, got %q", review.AuthorName)
	}

	reviews, summary, err := rs.GetListingReviews(ctx, 3)
	if err != nil {
		t.Fatalf("GetListingReviews failed: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("expected the submitted review to be stored, got %d", len(reviews))
	}
	if summary.Overall != 5.0 {
		t.Errorf("expected overall 5.0 from a single five-star category, got %v", summary.Overall)
	}
}

func TestSubmitReviewPropagatesValidation(t *testing.T) {
	rs := seededReviewService()

	_, err := rs.SubmitReview(context.Background(), 1, models.ReviewDraft{Comment: ""})
	if err != models.ErrEmptyComment {
		t.Errorf("expected ErrEmptyComment to pass through untouched, got %v", err)
	}
}
