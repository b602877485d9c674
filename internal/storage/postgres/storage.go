package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
	"github.com/dakarmarket/backend/internal/domain/repository"
	"github.com/dakarmarket/backend/internal/notify"
)

// pgxPool is the subset of pgxpool.Pool used by the storage layer. Tests
// substitute a pgxmock pool through it.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type profileRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type favoriteRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type messageRepository struct {
	storage *Storage
}

type eventRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Profiles() repository.ProfileRepository {
	return &profileRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Favorites() repository.FavoriteRepository {
	return &favoriteRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Messages() repository.MessageRepository {
	return &messageRepository{storage: s}
}

func (s *Storage) Events() repository.EventRepository {
	return &eventRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
            id TEXT PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            display_name TEXT,
            avatar_url TEXT,
            role TEXT NOT NULL,
            phone TEXT,
            whatsapp_number TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id TEXT PRIMARY KEY,
            merchant_id TEXT NOT NULL REFERENCES profiles(id),
            title TEXT NOT NULL,
            description TEXT,
            price DOUBLE PRECISION NOT NULL,
            image_url TEXT,
            category TEXT NOT NULL DEFAULT 'general',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS cart_items (
            id TEXT PRIMARY KEY,
            client_id TEXT NOT NULL REFERENCES profiles(id),
            product_id TEXT NOT NULL REFERENCES products(id),
            quantity INT NOT NULL CHECK (quantity >= 1),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (client_id, product_id)
        )`,
		`CREATE TABLE IF NOT EXISTS favorites (
            id TEXT PRIMARY KEY,
            client_id TEXT NOT NULL REFERENCES profiles(id),
            product_id TEXT NOT NULL REFERENCES products(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (client_id, product_id)
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            client_id TEXT NOT NULL REFERENCES profiles(id),
            product_id TEXT NOT NULL REFERENCES products(id),
            merchant_id TEXT NOT NULL REFERENCES profiles(id),
            quantity INT NOT NULL CHECK (quantity >= 1),
            total DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS messages (
            id TEXT PRIMARY KEY,
            from_user TEXT NOT NULL REFERENCES profiles(id),
            to_user TEXT NOT NULL REFERENCES profiles(id),
            content TEXT NOT NULL,
            read BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS events (
            id TEXT PRIMARY KEY,
            topic TEXT NOT NULL,
            key TEXT NOT NULL,
            payload JSONB NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            published_at TIMESTAMPTZ
        )`,
		`CREATE INDEX IF NOT EXISTS idx_products_merchant ON products(merchant_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_client ON orders(client_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_merchant ON orders(merchant_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_from ON messages(from_user, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_to ON messages(to_user, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_events_unpublished ON events(created_at) WHERE published_at IS NULL`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// insertEventTx records an outbox event inside the caller's transaction.
func (s *Storage) insertEventTx(ctx context.Context, tx pgx.Tx, topic, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	const query = `INSERT INTO events (id, topic, key, payload) VALUES ($1, $2, $3, $4)`
	if _, err := tx.Exec(ctx, query, uuid.NewString(), topic, key, body); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// --- ProfileRepository implementation ---

const profileColumns = `id, email, password_hash, display_name, avatar_url, role, phone, whatsapp_number, created_at, updated_at`

func scanProfile(row pgx.Row, p *model.Profile) error {
	return row.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.DisplayName, &p.AvatarURL,
		&p.Role, &p.Phone, &p.WhatsAppNumber, &p.CreatedAt, &p.UpdatedAt)
}

func (r *profileRepository) Create(ctx context.Context, email, passwordHash string, role model.Role) (*model.Profile, error) {
	const query = `INSERT INTO profiles (id, email, password_hash, role) VALUES ($1, $2, $3, $4)
                   RETURNING created_at, updated_at`
	p := model.Profile{ID: uuid.NewString(), Email: email, PasswordHash: passwordHash, Role: role}
	err := r.storage.pool.QueryRow(ctx, query, p.ID, email, passwordHash, role).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email=$1`
	var p model.Profile
	if err := scanProfile(r.storage.pool.QueryRow(ctx, query, email), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id=$1`
	var p model.Profile
	if err := scanProfile(r.storage.pool.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) GetManyByID(ctx context.Context, ids []string) (map[string]*model.Profile, error) {
	result := make(map[string]*model.Profile, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ANY($1)`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p model.Profile
		if err := scanProfile(rows, &p); err != nil {
			return nil, err
		}
		profile := p
		result[p.ID] = &profile
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *profileRepository) Update(ctx context.Context, id string, upd model.ProfileUpdate) (*model.Profile, error) {
	query := `UPDATE profiles SET
                  display_name = COALESCE($2, display_name),
                  avatar_url = COALESCE($3, avatar_url),
                  phone = COALESCE($4, phone),
                  whatsapp_number = COALESCE($5, whatsapp_number),
                  updated_at = NOW()
              WHERE id=$1
              RETURNING ` + profileColumns
	var p model.Profile
	err := scanProfile(r.storage.pool.QueryRow(ctx, query, id, upd.DisplayName, upd.AvatarURL, upd.Phone, upd.WhatsAppNumber), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// --- ProductRepository implementation ---

const productColumns = `id, merchant_id, title, description, price, image_url, category, created_at, updated_at`

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(&p.ID, &p.MerchantID, &p.Title, &p.Description, &p.Price,
		&p.ImageURL, &p.Category, &p.CreatedAt, &p.UpdatedAt)
}

func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	var conds []string
	var args []any

	if filter.MerchantID != "" {
		args = append(args, filter.MerchantID)
		conds = append(conds, fmt.Sprintf("merchant_id=$%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category=$%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	if filter.Sort == model.ProductSortPriceAsc {
		query += " ORDER BY price ASC"
	} else {
		query += " ORDER BY created_at DESC"
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	var p model.Product
	if err := scanProduct(r.storage.pool.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, p model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (id, merchant_id, title, description, price, image_url, category)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at, updated_at`
	p.ID = uuid.NewString()
	err := r.storage.pool.QueryRow(ctx, query, p.ID, p.MerchantID, p.Title, p.Description, p.Price, p.ImageURL, p.Category).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Update(ctx context.Context, id string, upd model.ProductUpdate) (*model.Product, error) {
	query := `UPDATE products SET
                  title = COALESCE($2, title),
                  description = COALESCE($3, description),
                  price = COALESCE($4, price),
                  image_url = COALESCE($5, image_url),
                  category = COALESCE($6, category),
                  updated_at = NOW()
              WHERE id=$1
              RETURNING ` + productColumns
	var p model.Product
	err := scanProduct(r.storage.pool.QueryRow(ctx, query, id, upd.Title, upd.Description, upd.Price, upd.ImageURL, upd.Category), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- CartRepository implementation ---

func (r *cartRepository) Lines(ctx context.Context, clientID string) ([]model.CartLine, error) {
	const query = `SELECT c.id, c.client_id, c.product_id, c.quantity, c.created_at,
                          p.id, p.merchant_id, p.title, p.description, p.price, p.image_url, p.category, p.created_at, p.updated_at
                   FROM cart_items c
                   JOIN products p ON p.id = c.product_id
                   WHERE c.client_id=$1
                   ORDER BY c.created_at`
	rows, err := r.storage.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartLine
	for rows.Next() {
		var l model.CartLine
		err := rows.Scan(&l.Item.ID, &l.Item.ClientID, &l.Item.ProductID, &l.Item.Quantity, &l.Item.CreatedAt,
			&l.Product.ID, &l.Product.MerchantID, &l.Product.Title, &l.Product.Description, &l.Product.Price,
			&l.Product.ImageURL, &l.Product.Category, &l.Product.CreatedAt, &l.Product.UpdatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) Add(ctx context.Context, clientID, productID string, quantity int) (*model.CartItem, error) {
	const query = `INSERT INTO cart_items (id, client_id, product_id, quantity) VALUES ($1, $2, $3, $4)
                   ON CONFLICT (client_id, product_id)
                   DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
                   RETURNING id, quantity, created_at`
	item := model.CartItem{ClientID: clientID, ProductID: productID}
	err := r.storage.pool.QueryRow(ctx, query, uuid.NewString(), clientID, productID, quantity).
		Scan(&item.ID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) GetItem(ctx context.Context, itemID string) (*model.CartItem, error) {
	const query = `SELECT id, client_id, product_id, quantity, created_at FROM cart_items WHERE id=$1`
	var item model.CartItem
	err := r.storage.pool.QueryRow(ctx, query, itemID).
		Scan(&item.ID, &item.ClientID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE cart_items SET quantity=$1 WHERE id=$2`, quantity, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Remove(ctx context.Context, itemID string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM cart_items WHERE id=$1`, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, clientID string) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM cart_items WHERE client_id=$1`, clientID)
	return err
}

// --- FavoriteRepository implementation ---

func (r *favoriteRepository) List(ctx context.Context, clientID string) ([]model.FavoriteLine, error) {
	const query = `SELECT f.id, f.client_id, f.product_id, f.created_at,
                          p.id, p.merchant_id, p.title, p.description, p.price, p.image_url, p.category, p.created_at, p.updated_at
                   FROM favorites f
                   JOIN products p ON p.id = f.product_id
                   WHERE f.client_id=$1
                   ORDER BY f.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.FavoriteLine
	for rows.Next() {
		var l model.FavoriteLine
		err := rows.Scan(&l.Favorite.ID, &l.Favorite.ClientID, &l.Favorite.ProductID, &l.Favorite.CreatedAt,
			&l.Product.ID, &l.Product.MerchantID, &l.Product.Title, &l.Product.Description, &l.Product.Price,
			&l.Product.ImageURL, &l.Product.Category, &l.Product.CreatedAt, &l.Product.UpdatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *favoriteRepository) Add(ctx context.Context, clientID, productID string) (*model.Favorite, error) {
	const query = `INSERT INTO favorites (id, client_id, product_id) VALUES ($1, $2, $3)
                   RETURNING created_at`
	fav := model.Favorite{ID: uuid.NewString(), ClientID: clientID, ProductID: productID}
	err := r.storage.pool.QueryRow(ctx, query, fav.ID, clientID, productID).Scan(&fav.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &fav, nil
}

// Remove is idempotent: deleting an absent favorite is not an error.
func (r *favoriteRepository) Remove(ctx context.Context, clientID, productID string) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM favorites WHERE client_id=$1 AND product_id=$2`, clientID, productID)
	return err
}

// --- OrderRepository implementation ---

const orderColumns = `id, client_id, product_id, merchant_id, quantity, total, status, created_at, updated_at`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(&o.ID, &o.ClientID, &o.ProductID, &o.MerchantID, &o.Quantity,
		&o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt)
}

func (r *orderRepository) CreateBatch(ctx context.Context, orders []model.Order) ([]model.Order, error) {
	created := make([]model.Order, 0, len(orders))
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO orders (id, client_id, product_id, merchant_id, quantity, total, status)
                       VALUES ($1, $2, $3, $4, $5, $6, $7)
                       RETURNING created_at, updated_at`
		for _, o := range orders {
			o.ID = uuid.NewString()
			o.Status = model.OrderStatusPending
			if err := tx.QueryRow(ctx, query, o.ID, o.ClientID, o.ProductID, o.MerchantID, o.Quantity, o.Total, o.Status).
				Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
				return err
			}
			payload := notify.OrderCreatedPayload{
				OrderID:    o.ID,
				ClientID:   o.ClientID,
				MerchantID: o.MerchantID,
				ProductID:  o.ProductID,
				Quantity:   o.Quantity,
				Total:      o.Total,
			}
			if err := r.storage.insertEventTx(ctx, tx, model.TopicOrderCreated, o.ID, payload); err != nil {
				return err
			}
			created = append(created, o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) List(ctx context.Context, userID string, role model.Role, status model.OrderStatus) ([]model.Order, error) {
	ownerColumn := "client_id"
	if role == model.RoleMerchant {
		ownerColumn = "merchant_id"
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + ownerColumn + `=$1`
	args := []any{userID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status=$%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) StatusCounts(ctx context.Context, userID string, role model.Role) (map[model.OrderStatus]int, error) {
	ownerColumn := "client_id"
	if role == model.RoleMerchant {
		ownerColumn = "merchant_id"
	}

	query := `SELECT status, COUNT(*) FROM orders WHERE ` + ownerColumn + `=$1 GROUP BY status`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.OrderStatus]int)
	for rows.Next() {
		var status model.OrderStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	var o model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		query := `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING ` + orderColumns
		if err := scanOrder(tx.QueryRow(ctx, query, status, orderID), &o); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		payload := notify.OrderStatusChangedPayload{
			OrderID:   o.ID,
			ClientID:  o.ClientID,
			Status:    string(o.Status),
			UpdatedAt: o.UpdatedAt,
		}
		return r.storage.insertEventTx(ctx, tx, model.TopicOrderStatusChanged, o.ID, payload)
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// --- MessageRepository implementation ---

const messageColumns = `id, from_user, to_user, content, read, created_at`

func scanMessage(row pgx.Row, m *model.Message) error {
	return row.Scan(&m.ID, &m.FromUser, &m.ToUser, &m.Content, &m.Read, &m.CreatedAt)
}

func (r *messageRepository) Create(ctx context.Context, fromUser, toUser, content string) (*model.Message, error) {
	m := model.Message{ID: uuid.NewString(), FromUser: fromUser, ToUser: toUser, Content: content}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO messages (id, from_user, to_user, content) VALUES ($1, $2, $3, $4)
                       RETURNING created_at`
		if err := tx.QueryRow(ctx, query, m.ID, fromUser, toUser, content).Scan(&m.CreatedAt); err != nil {
			return err
		}
		payload := notify.MessageCreatedPayload{MessageID: m.ID, FromUser: fromUser, ToUser: toUser}
		return r.storage.insertEventTx(ctx, tx, model.TopicMessageCreated, m.ID, payload)
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *messageRepository) ListInvolving(ctx context.Context, userID string) ([]model.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages
              WHERE from_user=$1 OR to_user=$1
              ORDER BY created_at DESC`
	return r.queryMessages(ctx, query, userID)
}

func (r *messageRepository) Conversation(ctx context.Context, userA, userB string) ([]model.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages
              WHERE (from_user=$1 AND to_user=$2) OR (from_user=$2 AND to_user=$1)
              ORDER BY created_at ASC`
	return r.queryMessages(ctx, query, userA, userB)
}

func (r *messageRepository) queryMessages(ctx context.Context, query string, args ...any) ([]model.Message, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Message
	for rows.Next() {
		var m model.Message
		if err := scanMessage(rows, &m); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, counterpartID, selfID string) (int64, error) {
	const query = `UPDATE messages SET read=TRUE WHERE from_user=$1 AND to_user=$2 AND read=FALSE`
	tag, err := r.storage.pool.Exec(ctx, query, counterpartID, selfID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// --- EventRepository implementation ---

func (r *eventRepository) SelectBatchForPublishing(ctx context.Context, limit int) ([]model.Event, error) {
	const selectQuery = `SELECT id, topic, key, payload, created_at
                         FROM events
                         WHERE published_at IS NULL
                         ORDER BY created_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var events []model.Event
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var ev model.Event
			if err := rows.Scan(&ev.ID, &ev.Topic, &ev.Key, &ev.Payload, &ev.CreatedAt); err != nil {
				return err
			}
			events = append(events, ev)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		now := time.Now()
		for i := range events {
			if _, err := tx.Exec(ctx, `UPDATE events SET published_at=NOW() WHERE id=$1`, events[i].ID); err != nil {
				return err
			}
			events[i].PublishedAt = &now
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
