package repository

import (
	"time"

	"github.com/cyber3201/foodApp/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrderWithPayment(tx *gorm.DB, order *entity.Order, payment *entity.Payment) error {
	if err := tx.Create(order).Error; err != nil {
		return err
	}
	payment.OrderID = order.ID
	return tx.Create(payment).Error
}

func (r *OrderRepository) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderStatus").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("OrderStatus").
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard moves the order from -> to in one statement; zero rows
// affected means the order was not in the expected state.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, from, to uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, from).
		Update("order_status_id", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) GetPayment(id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.
		Preload("PaymentStatus").
		Preload("Order").
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *OrderRepository) UpdatePaymentStatusGuard(tx *gorm.DB, paymentID, from, to uint, paidAt *time.Time) (int64, error) {
	fields := map[string]interface{}{"payment_status_id": to}
	if paidAt != nil {
		fields["paid_at"] = paidAt
	}
	res := tx.Model(&entity.Payment{}).
		Where("id = ? AND payment_status_id = ?", paymentID, from).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) StatusIDByName(name string) (uint, error) {
	var s entity.OrderStatus
	if err := r.DB.Where("status_name = ?", name).First(&s).Error; err != nil {
		return 0, err
	}
	return s.ID, nil
}

func (r *OrderRepository) PaymentStatusIDByName(name string) (uint, error) {
	var s entity.PaymentStatus
	if err := r.DB.Where("status_name = ?", name).First(&s).Error; err != nil {
		return 0, err
	}
	return s.ID, nil
}
