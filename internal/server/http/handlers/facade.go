package handlers

import (
	"context"

	"github.com/dakarmarket/backend/internal/domain/model"
)

// AuthFacade describes authentication and profile capabilities required by
// handlers and the auth middleware.
type AuthFacade interface {
	Register(ctx context.Context, email, password string, role model.Role) (*model.Profile, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.Profile, string, error)
	ParseToken(token string) (string, error)
	ProfileByID(ctx context.Context, id string) (*model.Profile, error)
	UpdateProfile(ctx context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error)
}

// CatalogFacade encapsulates listing operations exposed via HTTP.
type CatalogFacade interface {
	Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, actor *model.Profile, p model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, actor *model.Profile, id string, upd model.ProductUpdate) (*model.Product, error)
	DeleteProduct(ctx context.Context, actor *model.Profile, id string) error
}

// CartFacade provides cart operations.
type CartFacade interface {
	CartLines(ctx context.Context, actor *model.Profile) ([]model.CartLine, error)
	AddToCart(ctx context.Context, actor *model.Profile, productID string, quantity int) (*model.CartItem, error)
	UpdateCartQuantity(ctx context.Context, actor *model.Profile, itemID string, quantity int) error
	RemoveCartItem(ctx context.Context, actor *model.Profile, itemID string) error
	ClearCart(ctx context.Context, actor *model.Profile) error
}

// FavoriteFacade provides saved-product operations.
type FavoriteFacade interface {
	Favorites(ctx context.Context, actor *model.Profile) ([]model.FavoriteLine, error)
	AddFavorite(ctx context.Context, actor *model.Profile, productID string) (*model.Favorite, error)
	RemoveFavorite(ctx context.Context, actor *model.Profile, productID string) error
}

// OrderFacade provides checkout and order lifecycle operations.
type OrderFacade interface {
	Checkout(ctx context.Context, actor *model.Profile) ([]model.Order, error)
	Orders(ctx context.Context, actor *model.Profile, status model.OrderStatus) ([]model.Order, error)
	OrderStatusCounts(ctx context.Context, actor *model.Profile) (map[model.OrderStatus]int, error)
	TransitionOrder(ctx context.Context, actor *model.Profile, orderID string, target model.OrderStatus) (*model.Order, error)
}

// MessageFacade provides direct messaging operations.
type MessageFacade interface {
	SendMessage(ctx context.Context, actor *model.Profile, toUser, content string) (*model.Message, error)
	Conversation(ctx context.Context, actor *model.Profile, counterpartID string) ([]model.Message, error)
	MarkThreadRead(ctx context.Context, actor *model.Profile, counterpartID string) (int64, error)
	Threads(ctx context.Context, actor *model.Profile) ([]model.ThreadSummary, error)
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	FavoriteFacade
	OrderFacade
	MessageFacade
}
