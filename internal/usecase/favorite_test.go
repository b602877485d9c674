package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
	testhelpers "github.com/dakarmarket/backend/internal/test"
)

func TestFavoriteUseCaseAdd(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{
		Products: []model.Product{{ID: "product-1", MerchantID: "m1"}},
	}
	favorites := &testhelpers.FavoriteRepositoryStub{}
	uc := NewFavoriteUseCase(favorites, products)
	ctx := context.Background()

	if _, err := uc.Add(ctx, merchantActor("m1"), "product-1"); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for merchant, got %v", err)
	}
	if _, err := uc.Add(ctx, clientActor("c1"), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown product, got %v", err)
	}

	fav, err := uc.Add(ctx, clientActor("c1"), "product-1")
	if err != nil || fav.ProductID != "product-1" {
		t.Fatalf("unexpected result: %+v err=%v", fav, err)
	}
	if _, err := uc.Add(ctx, clientActor("c1"), "product-1"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists on duplicate save, got %v", err)
	}
}

func TestFavoriteUseCaseListAndRemove(t *testing.T) {
	favorites := &testhelpers.FavoriteRepositoryStub{
		Lines: []model.FavoriteLine{{Favorite: model.Favorite{ID: "favorite-1", ClientID: "c1", ProductID: "product-1"}}},
	}
	uc := NewFavoriteUseCase(favorites, &testhelpers.ProductRepositoryStub{})
	ctx := context.Background()

	lines, err := uc.List(ctx, clientActor("c1"))
	if err != nil || len(lines) != 1 {
		t.Fatalf("unexpected result: %v err=%v", lines, err)
	}
	if _, err := uc.List(ctx, merchantActor("m1")); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for merchant, got %v", err)
	}

	// Removing twice is fine.
	if err := uc.Remove(ctx, clientActor("c1"), "product-1"); err != nil {
		t.Fatalf("remove returned error: %v", err)
	}
	if err := uc.Remove(ctx, clientActor("c1"), "product-1"); err != nil {
		t.Fatalf("second remove returned error: %v", err)
	}
	if err := uc.Remove(ctx, merchantActor("m1"), "product-1"); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for merchant, got %v", err)
	}
}
