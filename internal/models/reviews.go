package models

import "time"

// HostReply is an optional answer from the host under a guest review.
type HostReply struct {
	Date  string `json:"date"`
	Reply string `json:"reply"`
}

// Review is a guest-submitted, per-category scored evaluation of a stay.
// Reviews are append-only: there is no edit or delete. The author fields
// come from whatever identity the auth layer supplies and are treated as
// opaque display strings.
type Review struct {
	ID              int                    `json:"id"`
	ListingID       int                    `json:"listing_id"`
	AuthorID        string                 `json:"author_id,omitempty"`
	AuthorName      string                 `json:"author_name"`
	AuthorAvatarURL string                 `json:"author_avatar_url,omitempty"`
	CategoryScores  map[RatingCategory]int `json:"category_scores"`
	OverallScore    float64                `json:"overall_score"`
	Comment         string                 `json:"comment"`
	StayedAt        string                 `json:"stayed_at,omitempty"` // YYYY-MM-DD
	SubmittedAt     time.Time              `json:"submitted_at"`
	HostReply       *HostReply             `json:"host_reply,omitempty"`
	HelpfulCount    int                    `json:"helpful_count"`
}

// ReviewDraft is what the review composer submits. A zero score means the
// category was left unrated.
type ReviewDraft struct {
	Comment         string                 `json:"comment"`
	CategoryScores  map[RatingCategory]int `json:"category_scores"`
	AuthorName      string                 `json:"author_name,omitempty"`
	AuthorAvatarURL string                 `json:"author_avatar_url,omitempty"`
}
