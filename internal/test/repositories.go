package test

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
)

// ProfileRepositoryStub stores profiles in-memory for tests.
type ProfileRepositoryStub struct {
	ByEmail map[string]*model.Profile
	ByID    map[string]*model.Profile
	Next    int
	Err     error
}

// NewProfileRepositoryStub constructs stub repository with initialized maps.
func NewProfileRepositoryStub() *ProfileRepositoryStub {
	return &ProfileRepositoryStub{
		ByEmail: make(map[string]*model.Profile),
		ByID:    make(map[string]*model.Profile),
		Next:    1,
	}
}

// Create registers profile unless already exists or stub has explicit error.
func (s *ProfileRepositoryStub) Create(ctx context.Context, email, passwordHash string, role model.Role) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.Profile)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.Profile)
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	profile := &model.Profile{
		ID:           fmt.Sprintf("profile-%d", s.Next),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.Next++
	s.ByEmail[email] = profile
	s.ByID[profile.ID] = profile
	return profile, nil
}

// GetByEmail fetches profile by email or returns not found.
func (s *ProfileRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if profile, ok := s.ByEmail[email]; ok {
		return profile, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches profile by identifier or returns not found.
func (s *ProfileRepositoryStub) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if profile, ok := s.ByID[id]; ok {
		return profile, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetManyByID returns the stored profiles among the requested ids.
func (s *ProfileRepositoryStub) GetManyByID(ctx context.Context, ids []string) (map[string]*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make(map[string]*model.Profile, len(ids))
	for _, id := range ids {
		if profile, ok := s.ByID[id]; ok {
			result[id] = profile
		}
	}
	return result, nil
}

// Update applies non-nil fields to the stored profile.
func (s *ProfileRepositoryStub) Update(ctx context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	profile, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if upd.DisplayName != nil {
		profile.DisplayName = upd.DisplayName
	}
	if upd.AvatarURL != nil {
		profile.AvatarURL = upd.AvatarURL
	}
	if upd.Phone != nil {
		profile.Phone = upd.Phone
	}
	if upd.WhatsAppNumber != nil {
		profile.WhatsAppNumber = upd.WhatsAppNumber
	}
	profile.UpdatedAt = time.Now()
	return profile, nil
}

// ProductRepositoryStub serves a configurable catalog.
type ProductRepositoryStub struct {
	ListFn   func(context.Context, model.ProductFilter) ([]model.Product, error)
	CreateFn func(context.Context, model.Product) (*model.Product, error)
	UpdateFn func(context.Context, string, model.ProductUpdate) (*model.Product, error)
	DeleteFn func(context.Context, string) error

	Products []model.Product
	Next     int
	Err      error

	ListCalls []model.ProductFilter
}

// List records the filter and returns the configured catalog.
func (s *ProductRepositoryStub) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	s.ListCalls = append(s.ListCalls, filter)
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Products, nil
}

// GetByID searches the configured catalog.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Create appends to the catalog with a generated identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, p)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Next++
	p.ID = fmt.Sprintf("product-%d", s.Next)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.Products = append(s.Products, p)
	return &p, nil
}

// Update applies non-nil fields to the stored product.
func (s *ProductRepositoryStub) Update(ctx context.Context, id string, upd model.ProductUpdate) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, upd)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Products {
		if s.Products[i].ID != id {
			continue
		}
		if upd.Title != nil {
			s.Products[i].Title = *upd.Title
		}
		if upd.Description != nil {
			s.Products[i].Description = upd.Description
		}
		if upd.Price != nil {
			s.Products[i].Price = *upd.Price
		}
		if upd.ImageURL != nil {
			s.Products[i].ImageURL = upd.ImageURL
		}
		if upd.Category != nil {
			s.Products[i].Category = *upd.Category
		}
		s.Products[i].UpdatedAt = time.Now()
		product := s.Products[i]
		return &product, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the product from the catalog.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Products {
		if s.Products[i].ID == id {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// CartRepositoryStub keeps cart lines per client.
type CartRepositoryStub struct {
	LinesFn func(context.Context, string) ([]model.CartLine, error)
	AddFn   func(context.Context, string, string, int) (*model.CartItem, error)

	LinesByClient map[string][]model.CartLine
	Items         map[string]*model.CartItem
	Err           error
	ClearErr      error

	Cleared     []string
	UpdateCalls []CartUpdateCall
	Removed     []string
}

// CartUpdateCall records UpdateQuantity invocations.
type CartUpdateCall struct {
	ItemID   string
	Quantity int
}

// Lines returns the configured cart for the client.
func (s *CartRepositoryStub) Lines(ctx context.Context, clientID string) ([]model.CartLine, error) {
	if s.LinesFn != nil {
		return s.LinesFn(ctx, clientID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.LinesByClient[clientID], nil
}

// Add records the call and returns a line with accumulated quantity.
func (s *CartRepositoryStub) Add(ctx context.Context, clientID, productID string, quantity int) (*model.CartItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, clientID, productID, quantity)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Items == nil {
		s.Items = make(map[string]*model.CartItem)
	}
	for _, item := range s.Items {
		if item.ClientID == clientID && item.ProductID == productID {
			item.Quantity += quantity
			return item, nil
		}
	}
	item := &model.CartItem{
		ID:        fmt.Sprintf("cart-%d", len(s.Items)+1),
		ClientID:  clientID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	s.Items[item.ID] = item
	return item, nil
}

// GetItem returns the stored cart line.
func (s *CartRepositoryStub) GetItem(ctx context.Context, itemID string) (*model.CartItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if item, ok := s.Items[itemID]; ok {
		return item, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateQuantity records the call.
func (s *CartRepositoryStub) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	s.UpdateCalls = append(s.UpdateCalls, CartUpdateCall{ItemID: itemID, Quantity: quantity})
	if item, ok := s.Items[itemID]; ok {
		item.Quantity = quantity
		return nil
	}
	return domainErrors.ErrNotFound
}

// Remove records the call.
func (s *CartRepositoryStub) Remove(ctx context.Context, itemID string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Removed = append(s.Removed, itemID)
	delete(s.Items, itemID)
	return nil
}

// Clear wipes the client's cart or fails with the configured error.
func (s *CartRepositoryStub) Clear(ctx context.Context, clientID string) error {
	if s.ClearErr != nil {
		return s.ClearErr
	}
	s.Cleared = append(s.Cleared, clientID)
	delete(s.LinesByClient, clientID)
	return nil
}

// FavoriteRepositoryStub records saved products.
type FavoriteRepositoryStub struct {
	Lines   []model.FavoriteLine
	Err     error
	Added   []model.Favorite
	Removed []string
}

// List returns configured favorites.
func (s *FavoriteRepositoryStub) List(ctx context.Context, clientID string) ([]model.FavoriteLine, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Lines, nil
}

// Add records the saved product.
func (s *FavoriteRepositoryStub) Add(ctx context.Context, clientID, productID string) (*model.Favorite, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, f := range s.Added {
		if f.ClientID == clientID && f.ProductID == productID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	fav := model.Favorite{
		ID:        fmt.Sprintf("favorite-%d", len(s.Added)+1),
		ClientID:  clientID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	s.Added = append(s.Added, fav)
	return &fav, nil
}

// Remove records the unsave.
func (s *FavoriteRepositoryStub) Remove(ctx context.Context, clientID, productID string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Removed = append(s.Removed, productID)
	return nil
}

// StatusUpdateCall stores information about UpdateStatus invocations.
type StatusUpdateCall struct {
	OrderID string
	Status  model.OrderStatus
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	CreateBatchFn  func(context.Context, []model.Order) ([]model.Order, error)
	ListFn         func(context.Context, string, model.Role, model.OrderStatus) ([]model.Order, error)
	CountsFn       func(context.Context, string, model.Role) (map[model.OrderStatus]int, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)

	Orders  []model.Order
	Err     error
	Batches [][]model.Order
	Updates []StatusUpdateCall
}

// CreateBatch records and returns the batch with generated ids.
func (s *OrderRepositoryStub) CreateBatch(ctx context.Context, orders []model.Order) ([]model.Order, error) {
	if s.CreateBatchFn != nil {
		return s.CreateBatchFn(ctx, orders)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	created := make([]model.Order, 0, len(orders))
	for i, o := range orders {
		o.ID = fmt.Sprintf("order-%d", len(s.Orders)+i+1)
		o.Status = model.OrderStatusPending
		o.CreatedAt = time.Now()
		o.UpdatedAt = o.CreatedAt
		created = append(created, o)
	}
	s.Orders = append(s.Orders, created...)
	s.Batches = append(s.Batches, created)
	return created, nil
}

// GetByID searches configured orders.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns configured orders, honouring the status filter.
func (s *OrderRepositoryStub) List(ctx context.Context, userID string, role model.Role, status model.OrderStatus) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID, role, status)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		owner := o.ClientID
		if role == model.RoleMerchant {
			owner = o.MerchantID
		}
		if owner != userID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

// StatusCounts tallies configured orders per status.
func (s *OrderRepositoryStub) StatusCounts(ctx context.Context, userID string, role model.Role) (map[model.OrderStatus]int, error) {
	if s.CountsFn != nil {
		return s.CountsFn(ctx, userID, role)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	counts := make(map[model.OrderStatus]int)
	for _, o := range s.Orders {
		owner := o.ClientID
		if role == model.RoleMerchant {
			owner = o.MerchantID
		}
		if owner == userID {
			counts[o.Status]++
		}
	}
	return counts, nil
}

// UpdateStatus records the call and mutates the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Updates = append(s.Updates, StatusUpdateCall{OrderID: orderID, Status: status})
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = status
			s.Orders[i].UpdatedAt = time.Now()
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// MarkReadCall records MarkRead invocations.
type MarkReadCall struct {
	CounterpartID string
	SelfID        string
}

// MessageRepositoryStub stores messages for tests.
type MessageRepositoryStub struct {
	CreateFn   func(context.Context, string, string, string) (*model.Message, error)
	ListFn     func(context.Context, string) ([]model.Message, error)
	MarkReadFn func(context.Context, string, string) (int64, error)

	Messages  []model.Message
	Err       error
	Next      int
	MarkCalls []MarkReadCall
}

// Create appends a message with a generated identifier.
func (s *MessageRepositoryStub) Create(ctx context.Context, fromUser, toUser, content string) (*model.Message, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, fromUser, toUser, content)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Next++
	msg := model.Message{
		ID:        fmt.Sprintf("message-%d", s.Next),
		FromUser:  fromUser,
		ToUser:    toUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
	s.Messages = append(s.Messages, msg)
	return &msg, nil
}

// ListInvolving filters stored messages by participant.
func (s *MessageRepositoryStub) ListInvolving(ctx context.Context, userID string) ([]model.Message, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Message
	for _, m := range s.Messages {
		if m.FromUser == userID || m.ToUser == userID {
			result = append(result, m)
		}
	}
	return result, nil
}

// Conversation filters stored messages by the participant pair.
func (s *MessageRepositoryStub) Conversation(ctx context.Context, userA, userB string) ([]model.Message, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Message
	for _, m := range s.Messages {
		if (m.FromUser == userA && m.ToUser == userB) || (m.FromUser == userB && m.ToUser == userA) {
			result = append(result, m)
		}
	}
	return result, nil
}

// MarkRead flips matching stored messages and counts them.
func (s *MessageRepositoryStub) MarkRead(ctx context.Context, counterpartID, selfID string) (int64, error) {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, counterpartID, selfID)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	s.MarkCalls = append(s.MarkCalls, MarkReadCall{CounterpartID: counterpartID, SelfID: selfID})
	var n int64
	for i := range s.Messages {
		m := &s.Messages[i]
		if m.FromUser == counterpartID && m.ToUser == selfID && !m.Read {
			m.Read = true
			n++
		}
	}
	return n, nil
}

// EventRepositoryStub serves outbox batches for tests.
type EventRepositoryStub struct {
	SelectFn func(context.Context, int) ([]model.Event, error)
	Events   []model.Event
	Err      error
}

// SelectBatchForPublishing returns the configured events once.
func (s *EventRepositoryStub) SelectBatchForPublishing(ctx context.Context, limit int) ([]model.Event, error) {
	if s.SelectFn != nil {
		return s.SelectFn(ctx, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	events := s.Events
	s.Events = nil
	if limit < len(events) {
		events = events[:limit]
	}
	return events, nil
}
