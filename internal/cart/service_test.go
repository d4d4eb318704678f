package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/smartcleaners/SMART-CLEANERS/internal/models"
)

type stubRepo struct {
	items     map[uuid.UUID]*models.CartItem
	saveErr   error
	deleteErr error
	deleted   []uuid.UUID
	cleared   bool
}

func newStubRepo() *stubRepo {
	return &stubRepo{items: map[uuid.UUID]*models.CartItem{}}
}

func (s *stubRepo) Items(_ context.Context, _ uuid.UUID) ([]models.CartItem, error) {
	out := make([]models.CartItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, *item)
	}
	return out, nil
}

func (s *stubRepo) Get(_ context.Context, _, productID uuid.UUID) (*models.CartItem, error) {
	item, ok := s.items[productID]
	if !ok {
		return nil, nil
	}
	copy := *item
	return &copy, nil
}

func (s *stubRepo) Save(_ context.Context, item *models.CartItem) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copy := *item
	s.items[item.ProductID] = &copy
	return nil
}

func (s *stubRepo) Delete(_ context.Context, _, productID uuid.UUID) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, productID)
	delete(s.items, productID)
	return nil
}

func (s *stubRepo) Clear(_ context.Context, _ uuid.UUID) error {
	s.cleared = true
	s.items = map[uuid.UUID]*models.CartItem{}
	return nil
}

type stubProducts struct {
	products map[uuid.UUID]*models.Product
}

func (s *stubProducts) GetProduct(_ context.Context, id uuid.UUID) (*models.Product, error) {
	return s.products[id], nil
}

func fixture(stock int) (*Service, *stubRepo, uuid.UUID) {
	repo := newStubRepo()
	productID := uuid.New()
	products := &stubProducts{products: map[uuid.UUID]*models.Product{
		productID: {Name: "Glass Cleaner", Price: 120, Stock: stock, IsActive: true},
	}}
	return New(repo, products), repo, productID
}

func TestAddTwiceMergesIntoOneLine(t *testing.T) {
	svc, repo, productID := fixture(100)
	userID := uuid.New()

	if _, err := svc.Add(context.Background(), userID, productID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	item, err := svc.Add(context.Background(), userID, productID)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(repo.items) != 1 {
		t.Fatalf("expected one cart line, got %d", len(repo.items))
	}
	if item.Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", item.Quantity)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	svc, _, _ := fixture(10)
	_, err := svc.Add(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAddInactiveProduct(t *testing.T) {
	repo := newStubRepo()
	productID := uuid.New()
	products := &stubProducts{products: map[uuid.UUID]*models.Product{
		productID: {Name: "Discontinued", Price: 50, Stock: 5, IsActive: false},
	}}
	svc := New(repo, products)

	_, err := svc.Add(context.Background(), uuid.New(), productID)
	if !errors.Is(err, ErrProductInactive) {
		t.Fatalf("expected ErrProductInactive, got %v", err)
	}
}

func TestSetQuantityClampsToStock(t *testing.T) {
	svc, _, productID := fixture(8)
	userID := uuid.New()

	item, err := svc.SetQuantity(context.Background(), userID, productID, 20)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if item.Quantity != 8 {
		t.Fatalf("quantity = %d, want clamp to stock 8", item.Quantity)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	svc, repo, productID := fixture(10)
	userID := uuid.New()

	if _, err := svc.Add(context.Background(), userID, productID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.SetQuantity(context.Background(), userID, productID, 0); err != nil {
		t.Fatalf("set zero: %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(repo.items))
	}
}

func TestRemoveAbsentProductIsNoOp(t *testing.T) {
	svc, repo, _ := fixture(10)
	if err := svc.Remove(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected delete to be forwarded")
	}
}

func TestClearEmptiesTotals(t *testing.T) {
	svc, repo, productID := fixture(100)
	userID := uuid.New()

	if _, err := svc.SetQuantity(context.Background(), userID, productID, 12); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if err := svc.Clear(context.Background(), userID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if !repo.cleared {
		t.Fatalf("expected repo clear")
	}

	summary, err := svc.Summarize(context.Background(), userID)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.Breakdown.ItemCount != 0 || summary.Breakdown.FinalTotal != 0 {
		t.Fatalf("expected empty breakdown, got %+v", summary.Breakdown)
	}
}

func TestSummarizePricesCart(t *testing.T) {
	repo := newStubRepo()
	productID := uuid.New()
	product := &models.Product{Name: "Phenyl", Price: 100, Stock: 200, IsActive: true}
	products := &stubProducts{products: map[uuid.UUID]*models.Product{productID: product}}
	svc := New(repo, products)
	userID := uuid.New()

	item, err := svc.SetQuantity(context.Background(), userID, productID, 10)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	// the stub repo does not preload products, attach like the gorm repo would
	repo.items[productID].Product = item.Product

	summary, err := svc.Summarize(context.Background(), userID)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.Breakdown.FinalTotal != 850 {
		t.Fatalf("final total = %v, want 850", summary.Breakdown.FinalTotal)
	}
}
