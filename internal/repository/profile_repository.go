package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio/internal/model"
)

// ProfileRepository reads the profile settings and content documents and
// the credential record embedded in the profile settings collection.
type ProfileRepository interface {
	FindProfile(ctx context.Context) (*model.ProfileDoc, error)
	FindContent(ctx context.Context) (*model.ProfileDoc, error)
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateProfile(ctx context.Context, doc model.ProfileDoc) error
}

type profileRepository struct {
	profile *mongo.Collection
	content *mongo.Collection
}

// NewProfileRepository builds a Mongo-backed profile repository.
func NewProfileRepository(db *mongo.Database) ProfileRepository {
	return &profileRepository{
		profile: db.Collection(CollectionProfile),
		content: db.Collection(CollectionContent),
	}
}

// FindProfile returns the profile settings document, or nil when none exists.
func (r *profileRepository) FindProfile(ctx context.Context) (*model.ProfileDoc, error) {
	return findOneDoc(ctx, r.profile)
}

// FindContent returns the content document, or nil when none exists.
func (r *profileRepository) FindContent(ctx context.Context) (*model.ProfileDoc, error) {
	return findOneDoc(ctx, r.content)
}

func findOneDoc(ctx context.Context, col *mongo.Collection) (*model.ProfileDoc, error) {
	var doc model.ProfileDoc
	err := col.FindOne(ctx, bson.D{}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	return &doc, nil
}

// FindUserByUsername returns the credential record for a username, or nil
// when no such user exists. Absence is an expected outcome, not an error.
func (r *profileRepository) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.profile.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// UpdateProfile upserts the provided fields into the profile settings
// document. Only set fields are written; the credential fields are never
// touched.
func (r *profileRepository) UpdateProfile(ctx context.Context, doc model.ProfileDoc) error {
	doc.ID = primitive.NilObjectID // never overwrite _id
	_, err := r.profile.UpdateOne(ctx, bson.D{}, bson.M{"$set": doc}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
