package app

import (
	"context"

	"github.com/dakarmarket/backend/internal/domain/model"
	"github.com/dakarmarket/backend/internal/domain/repository"
	"github.com/dakarmarket/backend/internal/usecase"
)

// MarketFacade bundles the use cases behind one surface for the HTTP layer
// and the outbox dispatcher.
type MarketFacade struct {
	auth      *usecase.AuthUseCase
	catalog   *usecase.CatalogUseCase
	carts     *usecase.CartUseCase
	favorites *usecase.FavoriteUseCase
	orders    *usecase.OrderUseCase
	messages  *usecase.MessageUseCase
	events    repository.EventRepository
}

func NewMarketFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	carts *usecase.CartUseCase,
	favorites *usecase.FavoriteUseCase,
	orders *usecase.OrderUseCase,
	messages *usecase.MessageUseCase,
	events repository.EventRepository,
) *MarketFacade {
	return &MarketFacade{
		auth:      auth,
		catalog:   catalog,
		carts:     carts,
		favorites: favorites,
		orders:    orders,
		messages:  messages,
		events:    events,
	}
}

func (f *MarketFacade) Register(ctx context.Context, email, password string, role model.Role) (*model.Profile, string, error) {
	return f.auth.Register(ctx, email, password, role)
}

func (f *MarketFacade) Authenticate(ctx context.Context, email, password string) (*model.Profile, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *MarketFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketFacade) ProfileByID(ctx context.Context, id string) (*model.Profile, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *MarketFacade) UpdateProfile(ctx context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error) {
	return f.auth.UpdateProfile(ctx, id, upd)
}

func (f *MarketFacade) Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	return f.catalog.List(ctx, filter)
}

func (f *MarketFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *MarketFacade) CreateProduct(ctx context.Context, actor *model.Profile, p model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, actor, p)
}

func (f *MarketFacade) UpdateProduct(ctx context.Context, actor *model.Profile, id string, upd model.ProductUpdate) (*model.Product, error) {
	return f.catalog.Update(ctx, actor, id, upd)
}

func (f *MarketFacade) DeleteProduct(ctx context.Context, actor *model.Profile, id string) error {
	return f.catalog.Delete(ctx, actor, id)
}

func (f *MarketFacade) CartLines(ctx context.Context, actor *model.Profile) ([]model.CartLine, error) {
	return f.carts.Lines(ctx, actor)
}

func (f *MarketFacade) AddToCart(ctx context.Context, actor *model.Profile, productID string, quantity int) (*model.CartItem, error) {
	return f.carts.Add(ctx, actor, productID, quantity)
}

func (f *MarketFacade) UpdateCartQuantity(ctx context.Context, actor *model.Profile, itemID string, quantity int) error {
	return f.carts.UpdateQuantity(ctx, actor, itemID, quantity)
}

func (f *MarketFacade) RemoveCartItem(ctx context.Context, actor *model.Profile, itemID string) error {
	return f.carts.Remove(ctx, actor, itemID)
}

func (f *MarketFacade) ClearCart(ctx context.Context, actor *model.Profile) error {
	return f.carts.Clear(ctx, actor)
}

func (f *MarketFacade) Favorites(ctx context.Context, actor *model.Profile) ([]model.FavoriteLine, error) {
	return f.favorites.List(ctx, actor)
}

func (f *MarketFacade) AddFavorite(ctx context.Context, actor *model.Profile, productID string) (*model.Favorite, error) {
	return f.favorites.Add(ctx, actor, productID)
}

func (f *MarketFacade) RemoveFavorite(ctx context.Context, actor *model.Profile, productID string) error {
	return f.favorites.Remove(ctx, actor, productID)
}

func (f *MarketFacade) Checkout(ctx context.Context, actor *model.Profile) ([]model.Order, error) {
	return f.orders.Checkout(ctx, actor)
}

func (f *MarketFacade) Orders(ctx context.Context, actor *model.Profile, status model.OrderStatus) ([]model.Order, error) {
	return f.orders.List(ctx, actor, status)
}

func (f *MarketFacade) OrderStatusCounts(ctx context.Context, actor *model.Profile) (map[model.OrderStatus]int, error) {
	return f.orders.StatusCounts(ctx, actor)
}

func (f *MarketFacade) TransitionOrder(ctx context.Context, actor *model.Profile, orderID string, target model.OrderStatus) (*model.Order, error) {
	return f.orders.Transition(ctx, actor, orderID, target)
}

func (f *MarketFacade) SendMessage(ctx context.Context, actor *model.Profile, toUser, content string) (*model.Message, error) {
	return f.messages.Send(ctx, actor, toUser, content)
}

func (f *MarketFacade) Conversation(ctx context.Context, actor *model.Profile, counterpartID string) ([]model.Message, error) {
	return f.messages.Conversation(ctx, actor, counterpartID)
}

func (f *MarketFacade) MarkThreadRead(ctx context.Context, actor *model.Profile, counterpartID string) (int64, error) {
	return f.messages.MarkThreadRead(ctx, actor, counterpartID)
}

func (f *MarketFacade) Threads(ctx context.Context, actor *model.Profile) ([]model.ThreadSummary, error) {
	return f.messages.Threads(ctx, actor)
}

func (f *MarketFacade) EventsForPublishing(ctx context.Context, limit int) ([]model.Event, error) {
	return f.events.SelectBatchForPublishing(ctx, limit)
}
