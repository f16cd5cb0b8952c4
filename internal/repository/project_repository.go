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

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]model.ProjectDoc, error)
	Insert(ctx context.Context, project model.Project) (string, error)
	Update(ctx context.Context, id string, project model.Project) error
	Delete(ctx context.Context, id string) error
}

type projectRepository struct {
	col *mongo.Collection
}

// NewProjectRepository builds a Mongo-backed project repository.
func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{col: db.Collection(CollectionProjects)}
}

func (r *projectRepository) List(ctx context.Context) ([]model.ProjectDoc, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	var docs []model.ProjectDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return docs, nil
}

func (r *projectRepository) Insert(ctx context.Context, project model.Project) (string, error) {
	res, err := r.col.InsertOne(ctx, project)
	if err != nil {
		return "", fmt.Errorf("insert project: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *projectRepository) Update(ctx context.Context, id string, project model.Project) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": project})
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
