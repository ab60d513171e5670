package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ebelene1994/Presto-Pizza/models"
)

const profileCollectionName = "users"

// MongoProfileStore persists one profile document per user, keyed by the
// identity provider's uid. Access is read-modify-write on single documents;
// there are no cross-document transactions.
type MongoProfileStore struct {
	collection *mongo.Collection
}

func NewMongoProfileStore(db *mongo.Database) *MongoProfileStore {
	return &MongoProfileStore{collection: db.Collection(profileCollectionName)}
}

// Ensure syncs the provider's account into the document store: an existing
// document wins over the provider's fields, a missing one is created with the
// customer role.
func (s *MongoProfileStore) Ensure(ctx context.Context, uid, name, email, photoURL string) (*models.UserProfile, error) {
	existing, err := s.Get(ctx, uid)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	profile := &models.UserProfile{
		UID:       uid,
		Name:      name,
		Email:     email,
		PhotoURL:  photoURL,
		Role:      "customer",
		CreatedAt: time.Now(),
	}
	if profile.Name == "" {
		profile.Name = "Guest"
	}

	if _, err := s.collection.InsertOne(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}
	log.Printf("Created profile document for user %s", uid)
	return profile, nil
}

func (s *MongoProfileStore) Get(ctx context.Context, uid string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.collection.FindOne(ctx, bson.M{"_id": uid}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &profile, nil
}

// Update overwrites the mutable profile fields; empty values leave the field
// untouched.
func (s *MongoProfileStore) Update(ctx context.Context, uid, name, photoURL string) (*models.UserProfile, error) {
	set := bson.M{}
	if name != "" {
		set["name"] = name
	}
	if photoURL != "" {
		set["photo_url"] = photoURL
	}
	if len(set) > 0 {
		result, err := s.collection.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$set": set})
		if err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
		if result.MatchedCount == 0 {
			return nil, fmt.Errorf("profile not found")
		}
		log.Printf("Updated profile for user %s, Modified: %d", uid, result.ModifiedCount)
	}
	return s.Get(ctx, uid)
}

func (s *MongoProfileStore) Delete(ctx context.Context, uid string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": uid})
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("profile not found")
	}
	log.Printf("Deleted profile document for user %s", uid)
	return nil
}
