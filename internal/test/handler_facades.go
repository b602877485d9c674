package test

import (
	"context"

	"github.com/dakarmarket/backend/internal/domain/model"
)

// AuthFacadeStub simulates the auth surface for HTTP layer tests.
type AuthFacadeStub struct {
	RegisterFn      func(context.Context, string, string, model.Role) (*model.Profile, string, error)
	AuthenticateFn  func(context.Context, string, string) (*model.Profile, string, error)
	ParseFn         func(string) (string, error)
	ProfileByIDFn   func(context.Context, string) (*model.Profile, error)
	UpdateProfileFn func(context.Context, string, model.ProfileUpdate) (*model.Profile, error)
}

// Register returns a profile and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password string, role model.Role) (*model.Profile, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, role)
	}
	return &model.Profile{ID: "profile-1", Email: email, Role: role}, "token", nil
}

// Authenticate returns a profile and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.Profile, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.Profile{ID: "profile-1", Email: email, Role: model.RoleClient}, "token", nil
}

// ParseToken returns the stored identifier for the authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "profile-1", nil
}

// ProfileByID resolves a profile by identifier.
func (s AuthFacadeStub) ProfileByID(ctx context.Context, id string) (*model.Profile, error) {
	if s.ProfileByIDFn != nil {
		return s.ProfileByIDFn(ctx, id)
	}
	return &model.Profile{ID: id, Email: "user@mail.sn", Role: model.RoleClient}, nil
}

// UpdateProfile applies profile changes.
func (s AuthFacadeStub) UpdateProfile(ctx context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, id, upd)
	}
	return &model.Profile{ID: id, DisplayName: upd.DisplayName}, nil
}

// CatalogFacadeStub simulates listing operations for HTTP layer tests.
type CatalogFacadeStub struct {
	ProductsFn      func(context.Context, model.ProductFilter) ([]model.Product, error)
	ProductFn       func(context.Context, string) (*model.Product, error)
	CreateProductFn func(context.Context, *model.Profile, model.Product) (*model.Product, error)
	UpdateProductFn func(context.Context, *model.Profile, string, model.ProductUpdate) (*model.Product, error)
	DeleteProductFn func(context.Context, *model.Profile, string) error
}

func (s CatalogFacadeStub) Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	return nil, nil
}

func (s CatalogFacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id}, nil
}

func (s CatalogFacadeStub) CreateProduct(ctx context.Context, actor *model.Profile, p model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, actor, p)
	}
	p.ID = "product-1"
	return &p, nil
}

func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, actor *model.Profile, id string, upd model.ProductUpdate) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, actor, id, upd)
	}
	return &model.Product{ID: id}, nil
}

func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, actor *model.Profile, id string) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, actor, id)
	}
	return nil
}

// CartFacadeStub simulates cart operations for HTTP layer tests.
type CartFacadeStub struct {
	CartLinesFn          func(context.Context, *model.Profile) ([]model.CartLine, error)
	AddToCartFn          func(context.Context, *model.Profile, string, int) (*model.CartItem, error)
	UpdateCartQuantityFn func(context.Context, *model.Profile, string, int) error
	RemoveCartItemFn     func(context.Context, *model.Profile, string) error
	ClearCartFn          func(context.Context, *model.Profile) error
}

func (s CartFacadeStub) CartLines(ctx context.Context, actor *model.Profile) ([]model.CartLine, error) {
	if s.CartLinesFn != nil {
		return s.CartLinesFn(ctx, actor)
	}
	return nil, nil
}

func (s CartFacadeStub) AddToCart(ctx context.Context, actor *model.Profile, productID string, quantity int) (*model.CartItem, error) {
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, actor, productID, quantity)
	}
	return &model.CartItem{ID: "cart-1", ProductID: productID, Quantity: quantity}, nil
}

func (s CartFacadeStub) UpdateCartQuantity(ctx context.Context, actor *model.Profile, itemID string, quantity int) error {
	if s.UpdateCartQuantityFn != nil {
		return s.UpdateCartQuantityFn(ctx, actor, itemID, quantity)
	}
	return nil
}

func (s CartFacadeStub) RemoveCartItem(ctx context.Context, actor *model.Profile, itemID string) error {
	if s.RemoveCartItemFn != nil {
		return s.RemoveCartItemFn(ctx, actor, itemID)
	}
	return nil
}

func (s CartFacadeStub) ClearCart(ctx context.Context, actor *model.Profile) error {
	if s.ClearCartFn != nil {
		return s.ClearCartFn(ctx, actor)
	}
	return nil
}

// FavoriteFacadeStub simulates saved-product operations for HTTP layer tests.
type FavoriteFacadeStub struct {
	FavoritesFn      func(context.Context, *model.Profile) ([]model.FavoriteLine, error)
	AddFavoriteFn    func(context.Context, *model.Profile, string) (*model.Favorite, error)
	RemoveFavoriteFn func(context.Context, *model.Profile, string) error
}

func (s FavoriteFacadeStub) Favorites(ctx context.Context, actor *model.Profile) ([]model.FavoriteLine, error) {
	if s.FavoritesFn != nil {
		return s.FavoritesFn(ctx, actor)
	}
	return nil, nil
}

func (s FavoriteFacadeStub) AddFavorite(ctx context.Context, actor *model.Profile, productID string) (*model.Favorite, error) {
	if s.AddFavoriteFn != nil {
		return s.AddFavoriteFn(ctx, actor, productID)
	}
	return &model.Favorite{ID: "favorite-1", ProductID: productID}, nil
}

func (s FavoriteFacadeStub) RemoveFavorite(ctx context.Context, actor *model.Profile, productID string) error {
	if s.RemoveFavoriteFn != nil {
		return s.RemoveFavoriteFn(ctx, actor, productID)
	}
	return nil
}

// OrderFacadeStub simulates checkout and lifecycle operations for HTTP
// layer tests.
type OrderFacadeStub struct {
	CheckoutFn          func(context.Context, *model.Profile) ([]model.Order, error)
	OrdersFn            func(context.Context, *model.Profile, model.OrderStatus) ([]model.Order, error)
	OrderStatusCountsFn func(context.Context, *model.Profile) (map[model.OrderStatus]int, error)
	TransitionOrderFn   func(context.Context, *model.Profile, string, model.OrderStatus) (*model.Order, error)
}

func (s OrderFacadeStub) Checkout(ctx context.Context, actor *model.Profile) ([]model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, actor)
	}
	return nil, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, actor *model.Profile, status model.OrderStatus) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, actor, status)
	}
	return nil, nil
}

func (s OrderFacadeStub) OrderStatusCounts(ctx context.Context, actor *model.Profile) (map[model.OrderStatus]int, error) {
	if s.OrderStatusCountsFn != nil {
		return s.OrderStatusCountsFn(ctx, actor)
	}
	return map[model.OrderStatus]int{}, nil
}

func (s OrderFacadeStub) TransitionOrder(ctx context.Context, actor *model.Profile, orderID string, target model.OrderStatus) (*model.Order, error) {
	if s.TransitionOrderFn != nil {
		return s.TransitionOrderFn(ctx, actor, orderID, target)
	}
	return &model.Order{ID: orderID, Status: target}, nil
}

// MessageFacadeStub simulates messaging operations for HTTP layer tests.
type MessageFacadeStub struct {
	SendMessageFn    func(context.Context, *model.Profile, string, string) (*model.Message, error)
	ConversationFn   func(context.Context, *model.Profile, string) ([]model.Message, error)
	MarkThreadReadFn func(context.Context, *model.Profile, string) (int64, error)
	ThreadsFn        func(context.Context, *model.Profile) ([]model.ThreadSummary, error)
}

func (s MessageFacadeStub) SendMessage(ctx context.Context, actor *model.Profile, toUser, content string) (*model.Message, error) {
	if s.SendMessageFn != nil {
		return s.SendMessageFn(ctx, actor, toUser, content)
	}
	return &model.Message{ID: "message-1", ToUser: toUser, Content: content}, nil
}

func (s MessageFacadeStub) Conversation(ctx context.Context, actor *model.Profile, counterpartID string) ([]model.Message, error) {
	if s.ConversationFn != nil {
		return s.ConversationFn(ctx, actor, counterpartID)
	}
	return nil, nil
}

func (s MessageFacadeStub) MarkThreadRead(ctx context.Context, actor *model.Profile, counterpartID string) (int64, error) {
	if s.MarkThreadReadFn != nil {
		return s.MarkThreadReadFn(ctx, actor, counterpartID)
	}
	return 0, nil
}

func (s MessageFacadeStub) Threads(ctx context.Context, actor *model.Profile) ([]model.ThreadSummary, error) {
	if s.ThreadsFn != nil {
		return s.ThreadsFn(ctx, actor)
	}
	return nil, nil
}

// MarketFacadeStub aggregates facade stubs for router level tests.
type MarketFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	FavoriteFacadeStub
	OrderFacadeStub
	MessageFacadeStub
}
