package models

import (
	"errors"
	"math"
	"strings"
	"time"
)

// RatingCategory is one of the six fixed evaluation dimensions.
type RatingCategory string

const (
	CategoryCleanliness   RatingCategory = "cleanliness"
	CategoryCommunication RatingCategory = "communication"
	CategoryCheckin       RatingCategory = "checkin"
	CategoryAccuracy      RatingCategory = "accuracy"
	CategoryLocation      RatingCategory = "location"
	CategoryValue         RatingCategory = "value"
)

// RatingCategories lists the fixed set in display order.
var RatingCategories = []RatingCategory{
	CategoryCleanliness,
	CategoryCommunication,
	CategoryCheckin,
	CategoryAccuracy,
	CategoryLocation,
	CategoryValue,
}

// MinCommentLength is the shortest accepted review comment after trimming.
const MinCommentLength = 10

// Review submission validation errors. Surfaced straight back to the
// submitting user; never logged as system faults.
var (
	ErrEmptyComment     = errors.New("comment cannot be empty")
	ErrCommentTooShort  = errors.New("comment must be at least 10 characters")
	ErrNoRatingProvided = errors.New("at least one category must be rated")
)

// RatingSummary holds derived averages, recomputed on demand and never
// stored. Categories that no review has rated are absent from the map
// rather than reported as zero. Overall is meaningful only when at least
// one category is present.
type RatingSummary struct {
	Categories  map[RatingCategory]float64 `json:"categories,omitempty"`
	Overall     float64                    `json:"overall,omitempty"`
	ReviewCount int                        `json:"review_count"`
}

// HasRatings reports whether any category was rated at all.
func (s RatingSummary) HasRatings() bool {
	return len(s.Categories) > 0
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Summarize computes per-category and overall averages across reviews.
// Averaging is two-level: each category is averaged over the reviews that
// rated it (score > 0), then the overall is the mean of those category
// means, so categories with more ratings do not dominate the overall
// figure. Full precision is carried until the final rounding to one
// decimal. The aggregation is order-independent; an empty input yields an
// all-absent summary.
func Summarize(reviews []Review) RatingSummary {
	summary := RatingSummary{ReviewCount: len(reviews)}

	sums := make(map[RatingCategory]int)
	counts := make(map[RatingCategory]int)
	for _, r := range reviews {
		for _, cat := range RatingCategories {
			if score, ok := r.CategoryScores[cat]; ok && score > 0 {
				sums[cat] += score
				counts[cat]++
			}
		}
	}

	if len(counts) == 0 {
		return summary
	}

	summary.Categories = make(map[RatingCategory]float64, len(counts))
	var total float64
	for cat, n := range counts {
		mean := float64(sums[cat]) / float64(n)
		total += mean
		summary.Categories[cat] = round1(mean)
	}
	summary.Overall = round1(total / float64(len(counts)))

	return summary
}

// OverallScore is the unweighted mean of only the categories the draft
// rated, rounded to one decimal. Unrated categories do not count as zero
// and do not dilute the average. Returns 0 when nothing was rated.
func (d ReviewDraft) OverallScore() float64 {
	var sum, n int
	for _, score := range d.CategoryScores {
		if score > 0 {
			sum += score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return round1(float64(sum) / float64(n))
}

// Validate checks the draft the way the composer does, in order: empty
// comment, then comment length, then missing ratings. The first failing
// check determines the reported error.
func (d ReviewDraft) Validate() error {
	comment := strings.TrimSpace(d.Comment)
	if comment == "" {
		return ErrEmptyComment
	}
	if len([]rune(comment)) < MinCommentLength {
		return ErrCommentTooShort
	}

	rated := false
	for _, score := range d.CategoryScores {
		if score > 0 {
			rated = true
			break
		}
	}
	if !rated {
		return ErrNoRatingProvided
	}

	return nil
}

// AppendReview validates the draft, builds the review and returns a new
// sequence with it at the head (most recent first), all prior reviews
// preserved in order. The existing slice is not mutated; the caller owns
// storage of the result.
func AppendReview(existing []Review, draft ReviewDraft) ([]Review, float64, error) {
	if err := draft.Validate(); err != nil {
		return nil, 0, err
	}

	overall := draft.OverallScore()

	scores := make(map[RatingCategory]int)
	for cat, score := range draft.CategoryScores {
		if score > 0 {
			scores[cat] = score
		}
	}

	review := Review{
		AuthorName:      draft.AuthorName,
		AuthorAvatarURL: draft.AuthorAvatarURL,
		CategoryScores:  scores,
		OverallScore:    overall,
		Comment:         strings.TrimSpace(draft.Comment),
		SubmittedAt:     time.Now(),
	}

	updated := make([]Review, 0, len(existing)+1)
	updated = append(updated, review)
	updated = append(updated, existing...)

	return updated, overall, nil
}
