package services

import (
	"github.com/cyber3201/foodApp/entity"
	"github.com/cyber3201/foodApp/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catr *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: catr}
}

// Get returns the cart and its subtotal. The subtotal is recomputed on every
// read; the dataset is small and there is no concurrent writer.
func (s *CartService) Get(userID uint) (*entity.Cart, decimal.Decimal, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return c, Subtotal(c.Items), nil
}

// Add puts one unit of the product into the cart. A line that already exists
// gets its quantity bumped; there is never more than one line per product.
func (s *CartService) Add(userID, productID uint) error {
	p, err := s.CatalogRepo.GetProduct(productID)
	if err != nil {
		return err
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, p)
	})
}

func (s *CartService) ChangeQuantity(userID, productID uint, delta int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ChangeQuantity(tx, userID, productID, delta)
	})
}

func (s *CartService) RemoveItem(userID, productID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, productID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}

func Subtotal(items []entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
