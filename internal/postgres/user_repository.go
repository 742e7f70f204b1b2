package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"metrics-consolidation-backend/internal/apperr"
	"metrics-consolidation-backend/internal/model"
	"metrics-consolidation-backend/internal/repository"
)

// querier is the slice of pgxpool.Pool the repository needs.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresUserRepository struct {
	pool querier
}

func NewPostgresUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &postgresUserRepository{pool: pool}
}

func (r *postgresUserRepository) Create(ctx context.Context, doc model.UserDocument) (model.UserDocument, error) {
	// The store owns the identifier; a caller-supplied one is discarded.
	delete(doc, model.FieldUserID)

	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user document: %w", err)
	}

	var id string
	insertSQL := fmt.Sprintf("INSERT INTO %s (doc) VALUES ($1::jsonb) RETURNING id::text", usersTableName)
	if err := r.pool.QueryRow(ctx, insertSQL, docJSON).Scan(&id); err != nil {
		log.Error().Err(err).Msg("Failed to insert user document")
		return nil, fmt.Errorf("user insert failed: %w", err)
	}

	created := model.UserDocument{}
	for k, v := range doc {
		created[k] = v
	}
	created[model.FieldUserID] = id
	return created, nil
}

func (r *postgresUserRepository) FindAll(ctx context.Context) ([]model.UserDocument, error) {
	selectSQL := fmt.Sprintf("SELECT id::text, doc FROM %s", usersTableName)
	rows, err := r.pool.Query(ctx, selectSQL)
	if err != nil {
		log.Error().Err(err).Msg("Failed to query users")
		return nil, fmt.Errorf("users query failed: %w", err)
	}
	defer rows.Close()

	users := make([]model.UserDocument, 0)
	for rows.Next() {
		var id string
		var docJSON []byte
		if err := rows.Scan(&id, &docJSON); err != nil {
			log.Error().Err(err).Msg("Failed to scan user row")
			continue
		}
		doc, err := decodeUserDocument(id, docJSON)
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("Failed to decode user document")
			continue
		}
		users = append(users, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating user rows: %w", err)
	}
	return users, nil
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id uuid.UUID) (model.UserDocument, error) {
	selectSQL := fmt.Sprintf("SELECT doc FROM %s WHERE id = $1::uuid", usersTableName)
	var docJSON []byte
	err := r.pool.QueryRow(ctx, selectSQL, id.String()).Scan(&docJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to query user by id")
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	return decodeUserDocument(id.String(), docJSON)
}

// Update merges only the supplied fields into the stored document.
func (r *postgresUserRepository) Update(ctx context.Context, id uuid.UUID, fields model.UserDocument) error {
	delete(fields, model.FieldUserID)

	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal update fields: %w", err)
	}

	updateSQL := fmt.Sprintf("UPDATE %s SET doc = doc || $2::jsonb WHERE id = $1::uuid", usersTableName)
	tag, err := r.pool.Exec(ctx, updateSQL, id.String(), fieldsJSON)
	if err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to update user")
		return fmt.Errorf("user update failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *postgresUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	deleteSQL := fmt.Sprintf("DELETE FROM %s WHERE id = $1::uuid", usersTableName)
	tag, err := r.pool.Exec(ctx, deleteSQL, id.String())
	if err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to delete user")
		return fmt.Errorf("user delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func decodeUserDocument(id string, docJSON []byte) (model.UserDocument, error) {
	var doc model.UserDocument
	if err := json.Unmarshal(docJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user document: %w", err)
	}
	if doc == nil {
		doc = model.UserDocument{}
	}
	doc[model.FieldUserID] = id
	return doc, nil
}
