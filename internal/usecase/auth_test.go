package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
	pkgAuth "github.com/dakarmarket/backend/internal/pkg/auth"
	testhelpers "github.com/dakarmarket/backend/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID string) (string, error) {
			return "token-" + userID, nil
		},
		ParseFn: func(token string) (string, error) {
			var id string
			if _, err := fmt.Sscanf(token, "token-%s", &id); err != nil {
				return "", pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewProfileRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	profile, token, err := uc.Register(ctx, "Awa@Mail.sn", "password", model.RoleClient)
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if profile.ID == "" {
		t.Fatalf("expected profile to have ID assigned")
	}
	if token != "token-"+profile.ID {
		t.Fatalf("unexpected token %q", token)
	}
	stored, err := repo.GetByEmail(ctx, "awa@mail.sn")
	if err != nil {
		t.Fatalf("expected profile in repository under lowered email: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
	if stored.Role != model.RoleClient {
		t.Fatalf("role not stored: %v", stored.Role)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	repo := testhelpers.NewProfileRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	ctx := context.Background()

	if _, _, err := uc.Register(ctx, "", "pw", model.RoleClient); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for empty email, got %v", err)
	}
	if _, _, err := uc.Register(ctx, "a@mail.sn", "", model.RoleClient); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for empty password, got %v", err)
	}
	if _, _, err := uc.Register(ctx, "a@mail.sn", "pw", model.Role("admin")); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for unknown role, got %v", err)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewProfileRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "b@mail.sn", "secret", model.RoleMerchant); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "b@mail.sn", "secret", model.RoleMerchant); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewProfileRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "c@mail.sn", "123456", model.RoleClient); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "c@mail.sn", "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "nobody@mail.sn", "123456"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "", ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for empty input, got %v", err)
	}

	profile, token, err := uc.Authenticate(ctx, "C@mail.sn", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-"+profile.ID {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseAuthenticateRepositoryError(t *testing.T) {
	repo := testhelpers.NewProfileRepositoryStub()
	repo.Err = errors.New("db down")
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	if _, _, err := uc.Authenticate(context.Background(), "a@mail.sn", "pw"); err == nil || errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewProfileRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token for empty input, got %v", err)
	}
	id, err := uc.ParseToken("token-profile-7")
	if err != nil || id != "profile-7" {
		t.Fatalf("unexpected parse result: %q err=%v", id, err)
	}
}

func TestAuthUseCaseUpdateProfile(t *testing.T) {
	repo := testhelpers.NewProfileRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())
	ctx := context.Background()

	profile, _, err := uc.Register(ctx, "d@mail.sn", "pw", model.RoleClient)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	name := "Dior"
	updated, err := uc.UpdateProfile(ctx, profile.ID, model.ProfileUpdate{DisplayName: &name})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.DisplayName == nil || *updated.DisplayName != "Dior" {
		t.Fatalf("display name not applied: %+v", updated)
	}
	if updated.Email != "d@mail.sn" {
		t.Fatalf("email must stay untouched: %+v", updated)
	}

	if _, err := uc.UpdateProfile(ctx, "missing", model.ProfileUpdate{}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
