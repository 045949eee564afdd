package services

import (
	"errors"
	"time"

	"github.com/cyber3201/foodApp/entity"
	"github.com/cyber3201/foodApp/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("invalid_or_conflict")
)

// Flat delivery fee applied to every order.
var DeliveryFee = decimal.NewFromInt(20)

type OrderStatusIDs struct {
	Received  uint
	Preparing uint
	OnTheWay  uint
	Delivered uint
}

type PaymentStatusIDs struct {
	Idle       uint
	Processing uint
	Succeeded  uint
}

// TransitionDelays drives the simulated payment and tracking pipelines.
// Tracking delays are measured from payment success.
type TransitionDelays struct {
	PaymentProcessing time.Duration
	Preparing         time.Duration
	OnTheWay          time.Duration
	Delivered         time.Duration
}

// EventPusher delivers events to a user's open connections; nil disables push.
type EventPusher interface {
	PushToUser(userID uint, payload any)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository

	Status    OrderStatusIDs
	PayStatus PaymentStatusIDs
	Delays    TransitionDelays
	Hub       EventPusher

	sched *transitionScheduler
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, delays TransitionDelays, hub EventPusher) (*OrderService, error) {
	s := &OrderService{
		DB:       db,
		Repo:     repo,
		CartRepo: cartRepo,
		Delays:   delays,
		Hub:      hub,
		sched:    newTransitionScheduler(),
	}

	var err error
	if s.Status.Received, err = repo.StatusIDByName(entity.OrderReceived); err != nil {
		return nil, err
	}
	if s.Status.Preparing, err = repo.StatusIDByName(entity.OrderPreparing); err != nil {
		return nil, err
	}
	if s.Status.OnTheWay, err = repo.StatusIDByName(entity.OrderOnTheWay); err != nil {
		return nil, err
	}
	if s.Status.Delivered, err = repo.StatusIDByName(entity.OrderDelivered); err != nil {
		return nil, err
	}
	if s.PayStatus.Idle, err = repo.PaymentStatusIDByName(entity.PaymentIdle); err != nil {
		return nil, err
	}
	if s.PayStatus.Processing, err = repo.PaymentStatusIDByName(entity.PaymentProcessing); err != nil {
		return nil, err
	}
	if s.PayStatus.Succeeded, err = repo.PaymentStatusIDByName(entity.PaymentSucceeded); err != nil {
		return nil, err
	}

	return s, nil
}

// Checkout snapshots the cart into an order plus an idle payment. Gated on a
// non-empty cart; the cart itself is cleared later, on payment success.
func (s *OrderService) Checkout(userID uint) (*entity.Order, *entity.Payment, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, nil, err
	}
	if len(cart.Items) == 0 {
		return nil, nil, ErrEmptyCart
	}

	subtotal := Subtotal(cart.Items)
	order := &entity.Order{
		Subtotal:      subtotal,
		DeliveryFee:   DeliveryFee,
		Total:         subtotal.Add(DeliveryFee),
		PlacedAt:      time.Now(),
		UserID:        userID,
		OrderStatusID: s.Status.Received,
	}
	payment := &entity.Payment{
		Amount:          order.Total,
		PaymentStatusID: s.PayStatus.Idle,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateOrderWithPayment(tx, order, payment)
	})
	if err != nil {
		return nil, nil, err
	}
	return order, payment, nil
}

func (s *OrderService) Get(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListByUser(userID)
}

func (s *OrderService) GetPayment(userID, paymentID uint) (*entity.Payment, error) {
	p, err := s.Repo.GetPayment(paymentID)
	if err != nil {
		return nil, err
	}
	if p.Order.UserID != userID {
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *OrderService) push(userID uint, payload any) {
	if s.Hub != nil {
		s.Hub.PushToUser(userID, payload)
	}
}
