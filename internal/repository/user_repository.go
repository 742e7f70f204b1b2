package repository

import (
	"context"

	"github.com/google/uuid"

	"metrics-consolidation-backend/internal/model"
)

// UserRepository is identifier-keyed CRUD over the users collection.
// FindByID, Update and Delete return apperr.ErrNotFound for absent ids.
type UserRepository interface {
	Create(ctx context.Context, doc model.UserDocument) (model.UserDocument, error)
	FindAll(ctx context.Context) ([]model.UserDocument, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.UserDocument, error)
	Update(ctx context.Context, id uuid.UUID, fields model.UserDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
}
