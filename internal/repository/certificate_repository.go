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

// CertificateRepository defines persistence operations for certificates.
type CertificateRepository interface {
	List(ctx context.Context) ([]model.CertificateDoc, error)
	Insert(ctx context.Context, cert model.Certificate) (string, error)
	Update(ctx context.Context, id string, cert model.Certificate) error
	Delete(ctx context.Context, id string) error
}

type certificateRepository struct {
	col *mongo.Collection
}

// NewCertificateRepository builds a Mongo-backed certificate repository.
func NewCertificateRepository(db *mongo.Database) CertificateRepository {
	return &certificateRepository{col: db.Collection(CollectionCertificates)}
}

func (r *certificateRepository) List(ctx context.Context) ([]model.CertificateDoc, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find certificates: %w", err)
	}
	var docs []model.CertificateDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode certificates: %w", err)
	}
	return docs, nil
}

func (r *certificateRepository) Insert(ctx context.Context, cert model.Certificate) (string, error) {
	res, err := r.col.InsertOne(ctx, cert)
	if err != nil {
		return "", fmt.Errorf("insert certificate: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *certificateRepository) Update(ctx context.Context, id string, cert model.Certificate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}
	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": cert})
	if err != nil {
		return fmt.Errorf("update certificate: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *certificateRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidID
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
