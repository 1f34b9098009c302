package auth

import (
	"context"

	"induparts-system/internal/database/models"
)

// UserRepository is the narrow view of the user table the login boundary
// needs. A missing user is (nil, nil), not an error.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdatePassword(ctx context.Context, userID int64, hash string) error
}
