package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	ErrVariantNotFound       = errors.New("product variant not found")
	ErrInsufficientInventory = errors.New("insufficient inventory for requested quantity")
)

type ProductVariant struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	Inventory int             `json:"inventory"`
	Image     string          `json:"image"`
}

type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Variants    []ProductVariant `json:"variants"`
}

type Store interface {
	GetAllProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, productID string) (*Product, error)
	GetVariantByID(ctx context.Context, variantID string) (*ProductVariant, error)
	// DecrementInventory atomically checks and reduces a variant's stock.
	// Returns ErrVariantNotFound or ErrInsufficientInventory without mutating anything.
	DecrementInventory(ctx context.Context, variantID string, quantity int) error
	SeedProduct(ctx context.Context, product Product) error
}

type store struct {
	mu       sync.RWMutex
	products []Product
}

func NewStore() Store {
	return &store{}
}

func (s *store) GetAllProducts(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]Product, len(s.products))
	for i, product := range s.products {
		products[i] = copyProduct(product)
	}
	return products, nil
}

func (s *store) GetProductByID(_ context.Context, productID string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, product := range s.products {
		if product.ID == productID {
			found := copyProduct(product)
			return &found, nil
		}
	}
	return nil, nil // Product not found
}

func (s *store) GetVariantByID(_ context.Context, variantID string) (*ProductVariant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, product := range s.products {
		for _, variant := range product.Variants {
			if variant.ID == variantID {
				found := variant
				return &found, nil
			}
		}
	}
	return nil, nil // Variant not found
}

func (s *store) DecrementInventory(_ context.Context, variantID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		for j := range s.products[i].Variants {
			variant := &s.products[i].Variants[j]
			if variant.ID != variantID {
				continue
			}
			if variant.Inventory < quantity {
				return ErrInsufficientInventory
			}
			variant.Inventory -= quantity
			return nil
		}
	}
	return ErrVariantNotFound
}

func (s *store) SeedProduct(_ context.Context, product Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.ID == product.ID {
			return nil // Already seeded, keep the existing record
		}
	}
	s.products = append(s.products, copyProduct(product))
	return nil
}

func copyProduct(product Product) Product {
	copied := product
	copied.Variants = make([]ProductVariant, len(product.Variants))
	copy(copied.Variants, product.Variants)
	return copied
}
