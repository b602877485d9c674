package usecase

import (
	"context"
	"strings"

	"github.com/dakarmarket/backend/internal/cache"
	domainErrors "github.com/dakarmarket/backend/internal/domain/errors"
	"github.com/dakarmarket/backend/internal/domain/model"
	"github.com/dakarmarket/backend/internal/domain/repository"
)

// ProductCache is the catalog cache surface used by the use case.
type ProductCache interface {
	GetCatalog(ctx context.Context) ([]model.Product, bool)
	SetCatalog(ctx context.Context, products []model.Product)
	Invalidate(ctx context.Context)
}

var _ ProductCache = (*cache.CatalogCache)(nil)

// CatalogUseCase serves product listings and merchant catalog management.
type CatalogUseCase struct {
	products repository.ProductRepository
	cache    ProductCache
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, productCache ProductCache) *CatalogUseCase {
	return &CatalogUseCase{products: products, cache: productCache}
}

// List returns products matching the filter. The unfiltered default listing
// is served from cache when possible; filtered listings always hit storage.
func (u *CatalogUseCase) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	cacheable := filter.Empty() && u.cache != nil

	if cacheable {
		if products, ok := u.cache.GetCatalog(ctx); ok {
			return products, nil
		}
	}

	products, err := u.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if cacheable {
		u.cache.SetCatalog(ctx, products)
	}
	return products, nil
}

// Get returns one product.
func (u *CatalogUseCase) Get(ctx context.Context, id string) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Create adds a listing owned by the acting merchant.
func (u *CatalogUseCase) Create(ctx context.Context, actor *model.Profile, p model.Product) (*model.Product, error) {
	if actor.Role != model.RoleMerchant {
		return nil, domainErrors.ErrForbidden
	}
	if strings.TrimSpace(p.Title) == "" {
		return nil, domainErrors.ErrEmptyTitle
	}
	if p.Price <= 0 {
		return nil, domainErrors.ErrInvalidPrice
	}
	if p.Category == "" {
		p.Category = "general"
	}
	p.MerchantID = actor.ID

	created, err := u.products.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		u.cache.Invalidate(ctx)
	}
	return created, nil
}

// Update changes a listing. Only the owning merchant may do so.
func (u *CatalogUseCase) Update(ctx context.Context, actor *model.Profile, id string, upd model.ProductUpdate) (*model.Product, error) {
	existing, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != model.RoleMerchant || existing.MerchantID != actor.ID {
		return nil, domainErrors.ErrForbidden
	}
	if upd.Price != nil && *upd.Price <= 0 {
		return nil, domainErrors.ErrInvalidPrice
	}

	updated, err := u.products.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		u.cache.Invalidate(ctx)
	}
	return updated, nil
}

// Delete removes a listing. Only the owning merchant may do so.
func (u *CatalogUseCase) Delete(ctx context.Context, actor *model.Profile, id string) error {
	existing, err := u.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleMerchant || existing.MerchantID != actor.ID {
		return domainErrors.ErrForbidden
	}

	if err := u.products.Delete(ctx, id); err != nil {
		return err
	}
	if u.cache != nil {
		u.cache.Invalidate(ctx)
	}
	return nil
}
