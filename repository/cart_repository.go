package repository

import (
	"errors"

	"github.com/cyber3201/foodApp/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart, or an empty cart (no error)
// so callers can always render something.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		Preload("Items.Product").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// UpsertItem merges by product: an existing line gets quantity+1, otherwise
// a new line with quantity 1 and the product's price snapshot is created.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, product *entity.Product) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cartID, product.ID).First(&exist).Error
	if err == nil {
		exist.Quantity++
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row := entity.CartItem{
		CartID:    cartID,
		ProductID: product.ID,
		Quantity:  1,
		UnitPrice: product.Price,
	}
	return tx.Create(&row).Error
}

// ChangeQuantity clamps at 1; dropping a line is a separate explicit action.
// No-op when the line does not exist.
func (r *CartRepository) ChangeQuantity(tx *gorm.DB, userID, productID uint, delta int) error {
	return tx.Exec(`
		UPDATE cart_items
		   SET quantity = MAX(1, quantity + ?)
		 WHERE product_id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, delta, productID, userID).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, productID uint) error {
	return tx.
		Where("product_id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", productID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
