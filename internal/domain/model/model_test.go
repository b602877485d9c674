package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "pending"},
		{"confirmed", OrderStatusConfirmed, "confirmed"},
		{"shipped", OrderStatusShipped, "shipped"},
		{"delivered", OrderStatusDelivered, "delivered"},
		{"cancelled", OrderStatusCancelled, "cancelled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			if !tc.got.Valid() {
				t.Fatalf("expected %s to be valid", tc.got)
			}
		})
	}

	if OrderStatus("paid").Valid() {
		t.Fatal("unknown status reported valid")
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to OrderStatus
	}{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusConfirmed, OrderStatusShipped},
		{OrderStatusConfirmed, OrderStatusCancelled},
		{OrderStatusShipped, OrderStatusDelivered},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	statuses := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	}
	isAllowed := func(from, to OrderStatus) bool {
		for _, tc := range allowed {
			if tc.from == from && tc.to == to {
				return true
			}
		}
		return false
	}
	for _, from := range statuses {
		for _, to := range statuses {
			if isAllowed(from, to) {
				continue
			}
			if from.CanTransitionTo(to) {
				t.Fatalf("expected %s -> %s to be rejected", from, to)
			}
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if !OrderStatusDelivered.Terminal() || !OrderStatusCancelled.Terminal() {
		t.Fatal("delivered and cancelled must be terminal")
	}
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped} {
		if s.Terminal() {
			t.Fatalf("expected %s to be non-terminal", s)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleClient.Valid() || !RoleMerchant.Valid() {
		t.Fatal("expected known roles to be valid")
	}
	if Role("admin").Valid() {
		t.Fatal("unknown role reported valid")
	}
}

func TestMessageCounterpart(t *testing.T) {
	m := Message{FromUser: "a", ToUser: "b"}
	if got := m.Counterpart("a"); got != "b" {
		t.Fatalf("expected b, got %s", got)
	}
	if got := m.Counterpart("b"); got != "a" {
		t.Fatalf("expected a, got %s", got)
	}
}

func TestCartLineTotal(t *testing.T) {
	line := CartLine{
		Item:    CartItem{Quantity: 3},
		Product: Product{Price: 2500},
	}
	if got := line.LineTotal(); got != 7500 {
		t.Fatalf("expected 7500, got %v", got)
	}
}

func TestProductFilterEmpty(t *testing.T) {
	cases := []struct {
		name   string
		filter ProductFilter
		empty  bool
	}{
		{"zero", ProductFilter{}, true},
		{"newest sort", ProductFilter{Sort: ProductSortNewest}, true},
		{"price sort", ProductFilter{Sort: ProductSortPriceAsc}, false},
		{"search", ProductFilter{Search: "phone"}, false},
		{"category", ProductFilter{Category: "fashion"}, false},
		{"merchant", ProductFilter{MerchantID: "m1"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.filter.Empty() != tc.empty {
				t.Fatalf("expected Empty()=%v", tc.empty)
			}
		})
	}
}
