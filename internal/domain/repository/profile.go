package repository

import (
	"context"

	"github.com/dakarmarket/backend/internal/domain/model"
)

// ProfileRepository describes persistence operations for user profiles.
type ProfileRepository interface {
	Create(ctx context.Context, email, passwordHash string, role model.Role) (*model.Profile, error)
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	GetManyByID(ctx context.Context, ids []string) (map[string]*model.Profile, error)
	Update(ctx context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error)
}
