package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"metrics-consolidation-backend/internal/apperr"
	"metrics-consolidation-backend/internal/model"
	"metrics-consolidation-backend/internal/repository"
)

// UserService is identifier-keyed CRUD over the users collection. Identifier
// format is checked here, before any store access.
type UserService interface {
	Create(ctx context.Context, doc model.UserDocument) (model.UserDocument, error)
	GetAll(ctx context.Context) ([]model.UserDocument, error)
	GetByID(ctx context.Context, id string) (model.UserDocument, error)
	Update(ctx context.Context, id string, fields model.UserDocument) error
	Delete(ctx context.Context, id string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) Create(ctx context.Context, doc model.UserDocument) (model.UserDocument, error) {
	if doc == nil {
		doc = model.UserDocument{}
	}
	created, err := s.userRepo.Create(ctx, doc)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return created, nil
}

func (s *userService) GetAll(ctx context.Context) ([]model.UserDocument, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (model.UserDocument, error) {
	parsed, err := parseUserID(id)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, parsed)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, fields model.UserDocument) error {
	parsed, err := parseUserID(id)
	if err != nil {
		return err
	}
	if fields == nil {
		fields = model.UserDocument{}
	}
	return classifyStoreError(s.userRepo.Update(ctx, parsed, fields))
}

func (s *userService) Delete(ctx context.Context, id string) error {
	parsed, err := parseUserID(id)
	if err != nil {
		return err
	}
	return classifyStoreError(s.userRepo.Delete(ctx, parsed))
}

// classifyStoreError keeps absent-document errors as-is and marks everything
// else a query failure, so a broken store surfaces as a generic 400 rather
// than an unclassified 500.
func classifyStoreError(err error) error {
	if err == nil || errors.Is(err, apperr.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", apperr.ErrQueryFailed, err)
}

func parseUserID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("%w: invalid user ID format", apperr.ErrInvalidInput)
	}
	return parsed, nil
}
