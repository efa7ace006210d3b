package repository

import (
	"context"

	"github.com/google/uuid"
)

// User is a dashboard account. Roles is a flat list; "admin" unlocks the
// catalog, preset, and branding write endpoints.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Roles        []string
	CreatedAt    string
	UpdatedAt    string
}

// CreateUserParams contains data for inserting a user.
type CreateUserParams struct {
	Email        string
	PasswordHash string
	Name         string
	Roles        []string
}

// Repository defines storage operations for users.
type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}
