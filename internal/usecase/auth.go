package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
	"github.com/dakarmarket/backend/internal/domain/repository"
	pkgAuth "github.com/dakarmarket/backend/internal/pkg/auth"
)

// AuthUseCase handles profile lifecycle and token management.
type AuthUseCase struct {
	profiles repository.ProfileRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(profiles repository.ProfileRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{profiles: profiles, hasher: hasher, tokens: strategy}
}

// Register creates a new profile with the given role and returns auth token.
func (u *AuthUseCase) Register(ctx context.Context, email, password string, role model.Role) (*model.Profile, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if !role.Valid() {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	profile, err := u.profiles.Create(ctx, email, hash, role)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(profile.ID)
	if err != nil {
		return nil, "", err
	}

	return profile, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.Profile, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	profile, err := u.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(profile.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(profile.ID)
	if err != nil {
		return nil, "", err
	}

	return profile, token, nil
}

// ParseToken extracts the profile ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches a profile by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	return u.profiles.GetByID(ctx, id)
}

// UpdateProfile applies partial profile changes for the owner.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error) {
	return u.profiles.Update(ctx, id, upd)
}
