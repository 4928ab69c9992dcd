package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ListingViewsDbName  = "stayfinder"
	ListingViewsColName = "listing_views"
)

// ListingView is one detail-page visit. Views expire via TTL index so the
// collection never grows unbounded.
type ListingView struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ListingID int                `bson:"listing_id" json:"listing_id" validate:"required"`
	UserID    *string            `bson:"user_id,omitempty" json:"user_id,omitempty"` // optional, for authenticated users
	SessionID string             `bson:"session_id" json:"session_id" validate:"required"`
	IPAddress string             `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	UserAgent string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	ViewedAt  time.Time          `bson:"viewed_at" json:"viewed_at"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"` // TTL index field
}

type ListingViewStats struct {
	ListingID     int   `json:"listing_id"`
	TotalViews    int64 `json:"total_views"`
	UniqueViews   int64 `json:"unique_views"`
	ViewsToday    int64 `json:"views_today"`
	ViewsThisWeek int64 `json:"views_this_week"`
}

type ListingViewsRepo interface {
	TrackListingView(ctx context.Context, view *ListingView) error
	GetListingViewStats(ctx context.Context, listingId int) (*ListingViewStats, error)
	EnsureViewIndexes(ctx context.Context) error
}

// EnsureViewIndexes creates the TTL and query indexes.
func (mdb *MongodbRepo) EnsureViewIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, ListingViewsDbName, ListingViewsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	indexes := []mongo.IndexModel{
		// Documents expire at the time stored in expires_at
		{
			Keys: bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().
				SetExpireAfterSeconds(0).
				SetName("expires_at_ttl"),
		},
		{
			Keys: bson.D{
				{Key: "listing_id", Value: 1},
				{Key: "session_id", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("listing_session_unique"),
		},
		{
			Keys: bson.D{
				{Key: "listing_id", Value: 1},
				{Key: "viewed_at", Value: -1},
			},
			Options: options.Index().SetName("listing_viewed_at_idx"),
		},
	}

	_, err = col.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("error creating indexes: %v", err)
	}

	return nil
}

// TrackListingView records a detail-page view, at most once per session
// per hour.
func (mdb *MongodbRepo) TrackListingView(ctx context.Context, view *ListingView) error {
	col, err := mdb.GetCollection(ctx, ListingViewsDbName, ListingViewsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	oneHourAgo := time.Now().Add(-1 * time.Hour)
	var recentView ListingView
	err = col.FindOne(ctx, bson.M{
		"listing_id": view.ListingID,
		"session_id": view.SessionID,
		"viewed_at":  bson.M{"$gte": oneHourAgo},
	}).Decode(&recentView)
	if err == nil {
		// Already viewed within the last hour, don't track again
		return nil
	}

	now := time.Now()
	view.ViewedAt = now
	view.ExpiresAt = now.Add(30 * 24 * time.Hour)

	if view.ID.IsZero() {
		view.ID = primitive.NewObjectID()
	}

	_, err = col.InsertOne(ctx, view)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil // same session, not a new view
		}
		return fmt.Errorf("error inserting listing view: %v", err)
	}

	return nil
}

// GetListingViewStats returns aggregated view counts for one listing.
func (mdb *MongodbRepo) GetListingViewStats(ctx context.Context, listingId int) (*ListingViewStats, error) {
	col, err := mdb.GetCollection(ctx, ListingViewsDbName, ListingViewsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	stats := &ListingViewStats{
		ListingID: listingId,
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))

	totalCount, err := col.CountDocuments(ctx, bson.M{"listing_id": listingId})
	if err != nil {
		return nil, fmt.Errorf("error counting total views: %v", err)
	}
	stats.TotalViews = totalCount

	uniquePipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"listing_id": listingId}}},
		{{Key: "$group", Value: bson.M{
			"_id": "$session_id",
		}}},
		{{Key: "$count", Value: "unique_sessions"}},
	}
	uniqueCursor, err := col.Aggregate(ctx, uniquePipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating unique views: %v", err)
	}
	defer uniqueCursor.Close(ctx)

	var uniqueResult []bson.M
	if err := uniqueCursor.All(ctx, &uniqueResult); err != nil {
		return nil, fmt.Errorf("error decoding unique views: %v", err)
	}
	if len(uniqueResult) > 0 {
		if count, ok := uniqueResult[0]["unique_sessions"].(int32); ok {
			stats.UniqueViews = int64(count)
		}
	}

	todayCount, err := col.CountDocuments(ctx, bson.M{
		"listing_id": listingId,
		"viewed_at":  bson.M{"$gte": startOfDay},
	})
	if err != nil {
		return nil, fmt.Errorf("error counting today's views: %v", err)
	}
	stats.ViewsToday = todayCount

	weekCount, err := col.CountDocuments(ctx, bson.M{
		"listing_id": listingId,
		"viewed_at":  bson.M{"$gte": startOfWeek},
	})
	if err != nil {
		return nil, fmt.Errorf("error counting this week's views: %v", err)
	}
	stats.ViewsThisWeek = weekCount

	return stats, nil
}
