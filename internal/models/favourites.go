package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	FavouriteDbName  = "stayfinder"
	FavouriteColName = "favourites"
)

// FavouriteItem is one saved listing inside a user's favourites document.
type FavouriteItem struct {
	ListingID int       `bson:"listing_id" json:"listing_id"`
	AddedAt   time.Time `bson:"added_at" json:"added_at"`
}

// Favourite is the per-user favourites document. Items are keyed by
// listing id so adds and removes are single field updates.
type Favourite struct {
	ID        primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	UserID    uuid.UUID                `bson:"user_id" json:"user_id" validate:"required"`
	Items     map[string]FavouriteItem `bson:"items" json:"items"`
	CreatedAt time.Time                `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time                `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type FavouriteRepo interface {
	AddToFavourites(ctx context.Context, userId uuid.UUID, listingId int) (*Favourite, error)
	RemoveFromFavourites(ctx context.Context, userId uuid.UUID, listingId int) error
	GetFavouritesByUserID(ctx context.Context, userId uuid.UUID) (*Favourite, error)
}

func (f *Favourite) BeforeCreate() error {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	return nil
}

func (mdb *MongodbRepo) AddToFavourites(ctx context.Context, userId uuid.UUID, listingId int) (*Favourite, error) {
	col, err := mdb.GetCollection(ctx, FavouriteDbName, FavouriteColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}
	now := time.Now()
	filter := bson.M{"user_id": userId}

	update := bson.M{
		"$set": bson.M{
			"updated_at": now,
			fmt.Sprintf("items.%d", listingId): FavouriteItem{
				ListingID: listingId,
				AddedAt:   now,
			},
		},
		"$setOnInsert": bson.M{
			"user_id":    userId,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result Favourite
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("error upserting favourite: %v", err)
	}

	return &result, nil
}

func (mdb *MongodbRepo) RemoveFromFavourites(ctx context.Context, userId uuid.UUID, listingId int) error {
	col, err := mdb.GetCollection(ctx, FavouriteDbName, FavouriteColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"user_id": userId}
	update := bson.M{
		"$unset": bson.M{
			fmt.Sprintf("items.%d", listingId): "",
		},
		"$set": bson.M{
			"updated_at": time.Now(),
		},
	}

	_, err = col.UpdateOne(ctx, filter, update)
	return err
}

func (mdb *MongodbRepo) GetFavouritesByUserID(ctx context.Context, userId uuid.UUID) (*Favourite, error) {
	col, err := mdb.GetCollection(ctx, FavouriteDbName, FavouriteColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"user_id": userId}
	var fav Favourite
	err = col.FindOne(ctx, filter).Decode(&fav)
	if err == mongo.ErrNoDocuments {
		// No document yet just means the user has nothing saved
		return &Favourite{UserID: userId, Items: map[string]FavouriteItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding favourites: %v", err)
	}

	return &fav, nil
}
