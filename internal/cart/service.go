// Package cart implements the per-user cart store: a mapping from product to
// quantity with the mutation contract the storefront relies on.
package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/smartcleaners/SMART-CLEANERS/internal/models"
	"github.com/smartcleaners/SMART-CLEANERS/internal/pricing"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductInactive = errors.New("product is not available")
)

// Repo persists cart lines.
type Repo interface {
	Items(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	Get(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error)
	Save(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

// ProductGetter resolves products for cart mutations.
type ProductGetter interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type Service struct {
	repo     Repo
	products ProductGetter
}

func New(repo Repo, products ProductGetter) *Service {
	return &Service{repo: repo, products: products}
}

// Summary is the cart with its pricing breakdown.
type Summary struct {
	Items     []models.CartItem `json:"items"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

// Add inserts a line with quantity 1, or increments an existing line.
// Quantities are clamped to the product's recorded stock.
func (s *Service) Add(ctx context.Context, userID, productID uuid.UUID) (*models.CartItem, error) {
	product, err := s.activeProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.Get(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item = &models.CartItem{UserID: userID, ProductID: productID}
	}

	item.Quantity = clampQuantity(item.Quantity+1, product.Stock)
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// SetQuantity replaces a line's quantity, clamped to stock. A quantity of
// zero or below removes the line.
func (s *Service) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, s.repo.Delete(ctx, userID, productID)
	}

	product, err := s.activeProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.Get(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item = &models.CartItem{UserID: userID, ProductID: productID}
	}

	item.Quantity = clampQuantity(quantity, product.Stock)
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// Remove deletes a line. Removing an absent product is a no-op.
func (s *Service) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return s.repo.Delete(ctx, userID, productID)
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.repo.Clear(ctx, userID)
}

// Items returns the raw cart lines with products attached.
func (s *Service) Items(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	return s.repo.Items(ctx, userID)
}

// Summarize prices the current cart.
func (s *Service) Summarize(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	items, err := s.repo.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Summary{Items: items, Breakdown: pricing.PriceCart(items)}, nil
}

func (s *Service) activeProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}
	return product, nil
}

// clampQuantity bounds a requested quantity by available stock. Stock of zero
// or below means the count is unknown and no upper bound applies.
func clampQuantity(quantity, stock int) int {
	if quantity < 1 {
		return 1
	}
	if stock > 0 && quantity > stock {
		return stock
	}
	return quantity
}
