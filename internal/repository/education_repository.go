package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
)

// EducationRepository defines persistence operations for education entries.
type EducationRepository interface {
	List(ctx context.Context) ([]model.EducationDoc, error)
	Insert(ctx context.Context, item model.EducationItem) (string, error)
	Update(ctx context.Context, id string, item model.EducationItem) error
	Delete(ctx context.Context, id string) error
}

type educationRepository struct {
	col *mongo.Collection
}

// NewEducationRepository builds a Mongo-backed education repository.
func NewEducationRepository(db *mongo.Database) EducationRepository {
	return &educationRepository{col: db.Collection(CollectionEducation)}
}

func (r *educationRepository) List(ctx context.Context) ([]model.EducationDoc, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find education: %w", err)
	}
	var docs []model.EducationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode education: %w", err)
	}
	return docs, nil
}

func (r *educationRepository) Insert(ctx context.Context, item model.EducationItem) (string, error) {
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("insert education: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *educationRepository) Update(ctx context.Context, id string, item model.EducationItem) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": item})
	if err != nil {
		return fmt.Errorf("update education: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *educationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete education: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
