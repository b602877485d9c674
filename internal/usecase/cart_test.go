package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
	testhelpers "github.com/dakarmarket/backend/internal/test"
)

func TestCartUseCaseAddAggregatesQuantity(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{
		Products: []model.Product{{ID: "product-1", MerchantID: "m1", Price: 10}},
	}
	carts := &testhelpers.CartRepositoryStub{}
	uc := NewCartUseCase(carts, products)
	ctx := context.Background()
	actor := clientActor("c1")

	first, err := uc.Add(ctx, actor, "product-1", 2)
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	second, err := uc.Add(ctx, actor, "product-1", 3)
	if err != nil {
		t.Fatalf("second add returned error: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the same cart line, got %q and %q", first.ID, second.ID)
	}
	if second.Quantity != 5 {
		t.Fatalf("expected aggregated quantity 5, got %d", second.Quantity)
	}
}

func TestCartUseCaseAddValidation(t *testing.T) {
	products := &testhelpers.ProductRepositoryStub{
		Products: []model.Product{{ID: "product-1"}},
	}
	uc := NewCartUseCase(&testhelpers.CartRepositoryStub{}, products)
	ctx := context.Background()

	if _, err := uc.Add(ctx, merchantActor("m1"), "product-1", 1); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for merchant, got %v", err)
	}
	if _, err := uc.Add(ctx, clientActor("c1"), "product-1", 0); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if _, err := uc.Add(ctx, clientActor("c1"), "missing", 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown product, got %v", err)
	}
}

func TestCartUseCaseLines(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{
		LinesByClient: map[string][]model.CartLine{
			"c1": {{Item: model.CartItem{ID: "cart-1", ClientID: "c1", Quantity: 2}, Product: model.Product{ID: "product-1", Price: 10}}},
		},
	}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})
	ctx := context.Background()

	lines, err := uc.Lines(ctx, clientActor("c1"))
	if err != nil || len(lines) != 1 {
		t.Fatalf("unexpected result: %v err=%v", lines, err)
	}
	if _, err := uc.Lines(ctx, merchantActor("m1")); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for merchant, got %v", err)
	}
}

func TestCartUseCaseUpdateQuantity(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{
		Items: map[string]*model.CartItem{
			"cart-1": {ID: "cart-1", ClientID: "c1", ProductID: "product-1", Quantity: 1},
		},
	}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})
	ctx := context.Background()

	if err := uc.UpdateQuantity(ctx, clientActor("c1"), "cart-1", 4); err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if carts.Items["cart-1"].Quantity != 4 {
		t.Fatalf("quantity not applied: %+v", carts.Items["cart-1"])
	}

	if err := uc.UpdateQuantity(ctx, clientActor("c1"), "cart-1", 0); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}
	if err := uc.UpdateQuantity(ctx, clientActor("c2"), "cart-1", 2); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for foreign line, got %v", err)
	}
	if err := uc.UpdateQuantity(ctx, clientActor("c1"), "missing", 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCartUseCaseRemove(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{
		Items: map[string]*model.CartItem{
			"cart-1": {ID: "cart-1", ClientID: "c1", ProductID: "product-1", Quantity: 1},
		},
	}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})
	ctx := context.Background()

	if err := uc.Remove(ctx, clientActor("c2"), "cart-1"); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for foreign line, got %v", err)
	}
	if err := uc.Remove(ctx, clientActor("c1"), "cart-1"); err != nil {
		t.Fatalf("remove returned error: %v", err)
	}
	if len(carts.Removed) != 1 || carts.Removed[0] != "cart-1" {
		t.Fatalf("remove not recorded: %v", carts.Removed)
	}
	if err := uc.Remove(ctx, clientActor("c1"), "cart-1"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found after removal, got %v", err)
	}
}

func TestCartUseCaseClear(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{
		LinesByClient: map[string][]model.CartLine{
			"c1": {{Item: model.CartItem{ID: "cart-1", ClientID: "c1", Quantity: 2}}},
		},
	}
	uc := NewCartUseCase(carts, &testhelpers.ProductRepositoryStub{})
	ctx := context.Background()

	if err := uc.Clear(ctx, merchantActor("m1")); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for merchant, got %v", err)
	}
	if err := uc.Clear(ctx, clientActor("c1")); err != nil {
		t.Fatalf("clear returned error: %v", err)
	}
	if len(carts.Cleared) != 1 || carts.Cleared[0] != "c1" {
		t.Fatalf("clear not recorded: %v", carts.Cleared)
	}
	if lines, _ := uc.Lines(ctx, clientActor("c1")); len(lines) != 0 {
		t.Fatalf("expected empty cart after clear, got %d lines", len(lines))
	}

	failing := &testhelpers.CartRepositoryStub{ClearErr: errors.New("storage offline")}
	uc = NewCartUseCase(failing, &testhelpers.ProductRepositoryStub{})
	if err := uc.Clear(ctx, clientActor("c1")); err == nil {
		t.Fatal("expected clear error to propagate")
	}
}
