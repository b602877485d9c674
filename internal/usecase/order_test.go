package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
	testhelpers "github.com/dakarmarket/backend/internal/test"
)

func checkoutCart() map[string][]model.CartLine {
	return map[string][]model.CartLine{
		"c1": {
			{
				Item:    model.CartItem{ID: "cart-1", ClientID: "c1", ProductID: "product-1", Quantity: 2},
				Product: model.Product{ID: "product-1", MerchantID: "m1", Price: 10},
			},
			{
				Item:    model.CartItem{ID: "cart-2", ClientID: "c1", ProductID: "product-2", Quantity: 1},
				Product: model.Product{ID: "product-2", MerchantID: "m2", Price: 5},
			},
		},
	}
}

func TestOrderUseCaseCheckout(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{LinesByClient: checkoutCart()}
	orders := &testhelpers.OrderRepositoryStub{}
	uc := NewOrderUseCase(orders, carts)
	ctx := context.Background()

	created, err := uc.Checkout(ctx, clientActor("c1"))
	if err != nil {
		t.Fatalf("checkout returned error: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected one order per cart line, got %d", len(created))
	}
	if created[0].Total != 20 || created[1].Total != 5 {
		t.Fatalf("totals must be price times quantity, got %v and %v", created[0].Total, created[1].Total)
	}
	for _, o := range created {
		if o.Status != model.OrderStatusPending {
			t.Fatalf("new orders must be pending, got %v", o.Status)
		}
		if o.ClientID != "c1" {
			t.Fatalf("client not recorded: %+v", o)
		}
	}
	if created[0].MerchantID != "m1" || created[1].MerchantID != "m2" {
		t.Fatalf("merchant ownership must follow the product: %+v", created)
	}
	if len(carts.Cleared) != 1 || carts.Cleared[0] != "c1" {
		t.Fatalf("cart must be cleared after checkout: %v", carts.Cleared)
	}
}

func TestOrderUseCaseCheckoutEmptyCart(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, &testhelpers.CartRepositoryStub{})

	if _, err := uc.Checkout(context.Background(), clientActor("c1")); !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("expected empty cart error, got %v", err)
	}
}

func TestOrderUseCaseCheckoutForbiddenForMerchant(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, &testhelpers.CartRepositoryStub{})

	if _, err := uc.Checkout(context.Background(), merchantActor("m1")); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestOrderUseCaseCheckoutCreateFails(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{LinesByClient: checkoutCart()}
	orders := &testhelpers.OrderRepositoryStub{
		CreateBatchFn: func(context.Context, []model.Order) ([]model.Order, error) {
			return nil, errors.New("insert failed")
		},
	}
	uc := NewOrderUseCase(orders, carts)

	if _, err := uc.Checkout(context.Background(), clientActor("c1")); err == nil {
		t.Fatal("expected error")
	}
	if len(carts.Cleared) != 0 {
		t.Fatalf("cart must stay intact when order creation fails: %v", carts.Cleared)
	}
}

func TestOrderUseCaseCheckoutClearFails(t *testing.T) {
	carts := &testhelpers.CartRepositoryStub{
		LinesByClient: checkoutCart(),
		ClearErr:      errors.New("clear failed"),
	}
	orders := &testhelpers.OrderRepositoryStub{}
	uc := NewOrderUseCase(orders, carts)

	created, err := uc.Checkout(context.Background(), clientActor("c1"))
	if !errors.Is(err, domainErrors.ErrCartNotCleared) {
		t.Fatalf("expected cart-not-cleared error, got %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("placed orders must still be returned, got %d", len(created))
	}
}

func TestOrderUseCaseList(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{
		Orders: []model.Order{
			{ID: "order-1", ClientID: "c1", MerchantID: "m1", Status: model.OrderStatusPending},
			{ID: "order-2", ClientID: "c1", MerchantID: "m2", Status: model.OrderStatusDelivered},
			{ID: "order-3", ClientID: "c2", MerchantID: "m1", Status: model.OrderStatusPending},
		},
	}
	uc := NewOrderUseCase(orders, &testhelpers.CartRepositoryStub{})
	ctx := context.Background()

	got, err := uc.List(ctx, clientActor("c1"), "")
	if err != nil || len(got) != 2 {
		t.Fatalf("unexpected result: %v err=%v", got, err)
	}

	got, err = uc.List(ctx, merchantActor("m1"), model.OrderStatusPending)
	if err != nil || len(got) != 2 {
		t.Fatalf("unexpected merchant result: %v err=%v", got, err)
	}

	if _, err := uc.List(ctx, clientActor("c1"), model.OrderStatus("bogus")); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestOrderUseCaseStatusCounts(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{
		Orders: []model.Order{
			{ID: "order-1", ClientID: "c1", MerchantID: "m1", Status: model.OrderStatusPending},
			{ID: "order-2", ClientID: "c2", MerchantID: "m1", Status: model.OrderStatusPending},
			{ID: "order-3", ClientID: "c1", MerchantID: "m1", Status: model.OrderStatusShipped},
		},
	}
	uc := NewOrderUseCase(orders, &testhelpers.CartRepositoryStub{})

	counts, err := uc.StatusCounts(context.Background(), merchantActor("m1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts[model.OrderStatusPending] != 2 || counts[model.OrderStatusShipped] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestOrderUseCaseTransition(t *testing.T) {
	orders := &testhelpers.OrderRepositoryStub{
		Orders: []model.Order{{ID: "order-1", ClientID: "c1", MerchantID: "m1", Status: model.OrderStatusPending}},
	}
	uc := NewOrderUseCase(orders, &testhelpers.CartRepositoryStub{})
	ctx := context.Background()

	if _, err := uc.Transition(ctx, clientActor("c1"), "order-1", model.OrderStatusConfirmed); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("clients must not drive the lifecycle, got %v", err)
	}
	if _, err := uc.Transition(ctx, merchantActor("m2"), "order-1", model.OrderStatusConfirmed); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("foreign merchants must not drive the lifecycle, got %v", err)
	}
	if _, err := uc.Transition(ctx, merchantActor("m1"), "order-1", model.OrderStatus("bogus")); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
	if _, err := uc.Transition(ctx, merchantActor("m1"), "order-1", model.OrderStatusDelivered); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("pending cannot jump to delivered, got %v", err)
	}
	if _, err := uc.Transition(ctx, merchantActor("m1"), "missing", model.OrderStatusConfirmed); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	order, err := uc.Transition(ctx, merchantActor("m1"), "order-1", model.OrderStatusConfirmed)
	if err != nil || order.Status != model.OrderStatusConfirmed {
		t.Fatalf("unexpected result: %+v err=%v", order, err)
	}

	// The full legal path keeps working; terminal states stop it.
	if _, err := uc.Transition(ctx, merchantActor("m1"), "order-1", model.OrderStatusShipped); err != nil {
		t.Fatalf("confirmed to shipped failed: %v", err)
	}
	if _, err := uc.Transition(ctx, merchantActor("m1"), "order-1", model.OrderStatusDelivered); err != nil {
		t.Fatalf("shipped to delivered failed: %v", err)
	}
	if _, err := uc.Transition(ctx, merchantActor("m1"), "order-1", model.OrderStatusCancelled); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("delivered is terminal, got %v", err)
	}
}
