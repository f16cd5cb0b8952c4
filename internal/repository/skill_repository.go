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

// SkillRepository defines persistence operations for a named-skill
// collection. Soft and hard skills share the shape and differ only in the
// backing collection.
type SkillRepository interface {
	List(ctx context.Context) ([]model.SkillDoc, error)
	Insert(ctx context.Context, name string) (string, error)
	Delete(ctx context.Context, id string) error
}

type skillRepository struct {
	col *mongo.Collection
}

// NewSkillRepository builds a Mongo-backed skill repository over the given
// collection (CollectionSoftSkills or CollectionHardSkills).
func NewSkillRepository(db *mongo.Database, collection string) SkillRepository {
	return &skillRepository{col: db.Collection(collection)}
}

func (r *skillRepository) List(ctx context.Context) ([]model.SkillDoc, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.col.Name(), err)
	}
	var docs []model.SkillDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.col.Name(), err)
	}
	return docs, nil
}

func (r *skillRepository) Insert(ctx context.Context, name string) (string, error) {
	res, err := r.col.InsertOne(ctx, bson.M{"name": name})
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", r.col.Name(), err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *skillRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SoftwareSkillRepository defines persistence operations for software
// skills, which additionally carry an icon.
type SoftwareSkillRepository interface {
	List(ctx context.Context) ([]model.SoftwareSkillDoc, error)
	Insert(ctx context.Context, skill model.SoftwareSkill) (string, error)
	Delete(ctx context.Context, id string) error
}

type softwareSkillRepository struct {
	col *mongo.Collection
}

// NewSoftwareSkillRepository builds a Mongo-backed software skill repository.
func NewSoftwareSkillRepository(db *mongo.Database) SoftwareSkillRepository {
	return &softwareSkillRepository{col: db.Collection(CollectionSoftwareSkills)}
}

func (r *softwareSkillRepository) List(ctx context.Context) ([]model.SoftwareSkillDoc, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find software skills: %w", err)
	}
	var docs []model.SoftwareSkillDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode software skills: %w", err)
	}
	return docs, nil
}

func (r *softwareSkillRepository) Insert(ctx context.Context, skill model.SoftwareSkill) (string, error) {
	res, err := r.col.InsertOne(ctx, skill)
	if err != nil {
		return "", fmt.Errorf("insert software skill: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *softwareSkillRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete software skill: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
