package models

import (
	"context"
	"errors"
	"testing"
)

func TestSummarizeTwoLevelAveraging(t *testing.T) {
	reviews := []Review{
		{CategoryScores: map[RatingCategory]int{CategoryCleanliness: 5, CategoryCommunication: 5}},
		{CategoryScores: map[RatingCategory]int{CategoryCleanliness: 3}},
	}

	summary := Summarize(reviews)

	if summary.ReviewCount != 2 {
		t.Errorf("expected review count 2, got %d", summary.ReviewCount)
	}
	if got := summary.Categories[CategoryCleanliness]; got != 4.0 {
		t.Errorf("cleanliness: expected 4.0, got %v", got)
	}
	if got := summary.Categories[CategoryCommunication]; got != 5.0 {
		t.Errorf("communication: expected 5.0, got %v", got)
	}
	// Overall is the mean of the category means, not of all raw scores:
	// (4.0 + 5.0) / 2, not (5+5+3) / 3.
	if summary.Overall != 4.5 {
		t.Errorf("overall: expected 4.5, got %v", summary.Overall)
	}
}

func TestSummarizeSkipsUnratedCategories(t *testing.T) {
	reviews := []Review{
		{CategoryScores: map[RatingCategory]int{CategoryLocation: 4, CategoryValue: 0}},
	}

	summary := Summarize(reviews)

	if len(summary.Categories) != 1 {
		t.Fatalf("expected only the rated category present, got %v", summary.Categories)
	}
	if _, ok := summary.Categories[CategoryValue]; ok {
		t.Error("a zero score must not surface as a rated category")
	}
	if summary.Overall != 4.0 {
		t.Errorf("overall should not be diluted by unrated categories, got %v", summary.Overall)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	if summary.HasRatings() {
		t.Error("empty input should produce no category averages")
	}
	if summary.Overall != 0 || summary.ReviewCount != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestSummarizeOrderIndependent(t *testing.T) {
	a := Review{CategoryScores: map[RatingCategory]int{CategoryCleanliness: 5, CategoryCheckin: 3}}
	b := Review{CategoryScores: map[RatingCategory]int{CategoryCleanliness: 2, CategoryAccuracy: 4}}

	first := Summarize([]Review{a, b})
	second := Summarize([]Review{b, a})

	if first.Overall != second.Overall {
		t.Errorf("overall depends on review order: %v vs %v", first.Overall, second.Overall)
	}
	for cat, avg := range first.Categories {
		if second.Categories[cat] != avg {
			t.Errorf("%s average depends on review order: %v vs %v", cat, avg, second.Categories[cat])
		}
	}
}

func TestDraftOverallScoreCountsOnlyRated(t *testing.T) {
	draft := ReviewDraft{
		CategoryScores: map[RatingCategory]int{
			CategoryCleanliness:   5,
			CategoryCommunication: 4,
		},
	}

	// Mean of the two rated categories only, the other four don't count
	// as zeros.
	if got := draft.OverallScore(); got != 4.5 {
		t.Errorf("expected 4.5, got %v", got)
	}

	empty := ReviewDraft{}
	if got := empty.OverallScore(); got != 0 {
		t.Errorf("unrated draft should score 0, got %v", got)
	}
}

func TestDraftValidationOrder(t *testing.T) {
	scores := map[RatingCategory]int{CategoryCleanliness: 5}

	draft := ReviewDraft{Comment: "   ", CategoryScores: scores}
	if err := draft.Validate(); !errors.Is(err, ErrEmptyComment) {
		t.Errorf("whitespace comment: expected ErrEmptyComment, got %v", err)
	}

	draft = ReviewDraft{Comment: "ok", CategoryScores: scores}
	if err := draft.Validate(); !errors.Is(err, ErrCommentTooShort) {
		t.Errorf("short comment: expected ErrCommentTooShort, got %v", err)
	}

	draft = ReviewDraft{Comment: "Una estadía maravillosa"}
	if err := draft.Validate(); !errors.Is(err, ErrNoRatingProvided) {
		t.Errorf("no scores: expected ErrNoRatingProvided, got %v", err)
	}

	// Empty comment wins over missing ratings when both fail.
	draft = ReviewDraft{}
	if err := draft.Validate(); !errors.Is(err, ErrEmptyComment) {
		t.Errorf("expected the comment check to run first, got %v", err)
	}

	draft = ReviewDraft{Comment: "Todo excelente, volvería sin dudarlo", CategoryScores: scores}
	if err := draft.Validate(); err != nil {
		t.Errorf("valid draft rejected: %v", err)
	}
}

func TestDraftCommentLengthCountsRunes(t *testing.T) {
	// Nine runes but more than ten bytes; must still be too short.
	draft := ReviewDraft{
		Comment:        "ñññññññññ",
		CategoryScores: map[RatingCategory]int{CategoryValue: 3},
	}
	if err := draft.Validate(); !errors.Is(err, ErrCommentTooShort) {
		t.Errorf("expected rune-based length check, got %v", err)
	}
}

func TestAppendReviewPrepends(t *testing.T) {
	existing := []Review{{ID: 1, Comment: "Primera reseña registrada"}}
	draft := ReviewDraft{
		Comment:        "  Muy buena ubicación y atención  ",
		CategoryScores: map[RatingCategory]int{CategoryLocation: 5, CategoryValue: 0},
		AuthorName:     "Laura",
	}

	updated, overall, err := AppendReview(existing, draft)
	if err != nil {
		t.Fatalf("AppendReview failed: %v", err)
	}

	if len(updated) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(updated))
	}
	if updated[0].AuthorName != "Laura" {
		t.Error("new review should be at the head of the sequence")
	}
	if updated[1].ID != 1 {
		t.Error("prior reviews should keep their order after the new one")
	}
	if updated[0].Comment != "Muy buena ubicación y atención" {
		t.Errorf("comment should be stored trimmed, got %q", updated[0].Comment)
	}
	if overall != 5.0 {
		t.Errorf("expected overall 5.0, got %v", overall)
	}
	if _, ok := updated[0].CategoryScores[CategoryValue]; ok {
		t.Error("zero scores should be stripped from the stored review")
	}
	if len(existing) != 1 {
		t.Error("the existing slice must not be mutated")
	}
}

func TestAppendReviewRejectsInvalidDraft(t *testing.T) {
	updated, _, err := AppendReview(nil, ReviewDraft{Comment: "corta"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if updated != nil {
		t.Error("a rejected draft must not produce a sequence")
	}
}

func TestCatalogRepoAddReview(t *testing.T) {
	repo := NewCatalogRepo(testCatalog(), map[int][]Review{
		1: {{ID: 7, ListingID: 1, Comment: "Reseña sembrada"}},
	})
	ctx := context.Background()

	review, err := repo.AddReview(ctx, 1, ReviewDraft{
		Comment:        "Excelente anfitrión y muy limpio todo",
		CategoryScores: map[RatingCategory]int{CategoryCleanliness: 5},
		AuthorName:     "Carlos",
	})
	if err != nil {
		t.Fatalf("AddReview failed: %v", err)
	}
	if review.ID <= 7 {
		t.Errorf("new ids must not collide with seeded ones, got %d", review.ID)
	}
	if review.ListingID != 1 {
		t.Errorf("expected listing id 1, got %d", review.ListingID)
	}

	reviews, err := repo.GetReviewsByListing(ctx, 1)
	if err != nil {
		t.Fatalf("GetReviewsByListing failed: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].AuthorName != "Carlos" {
		t.Error("most recent review should come first")
	}
}
