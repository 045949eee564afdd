package services

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cyber3201/foodApp/entity"
	"gorm.io/gorm"
)

// transitionScheduler owns the timers that drive the simulated payment and
// tracking pipelines. Timers are keyed by order so a cancel or shutdown can
// stop anything still pending instead of letting it fire against torn-down
// state.
type transitionScheduler struct {
	mu      sync.Mutex
	timers  map[uint][]*time.Timer
	stopped bool
}

func newTransitionScheduler() *transitionScheduler {
	return &transitionScheduler{timers: make(map[uint][]*time.Timer)}
}

func (t *transitionScheduler) after(orderID uint, d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.timers[orderID] = append(t.timers[orderID], time.AfterFunc(d, fn))
}

func (t *transitionScheduler) cancel(orderID uint) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, timer := range t.timers[orderID] {
		timer.Stop()
	}
	delete(t.timers, orderID)
}

func (t *transitionScheduler) shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	for id, timers := range t.timers {
		for _, timer := range timers {
			timer.Stop()
		}
		delete(t.timers, id)
	}
}

type orderEvent struct {
	Type    string `json:"type"`
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
}

// ConfirmPayment moves the payment idle -> processing and schedules the
// completion. Exactly one success terminal; there is no simulated failure.
func (s *OrderService) ConfirmPayment(userID, paymentID uint) (*entity.Payment, error) {
	p, err := s.GetPayment(userID, paymentID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdatePaymentStatusGuard(tx, p.ID, s.PayStatus.Idle, s.PayStatus.Processing, nil)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sched.after(p.OrderID, s.Delays.PaymentProcessing, func() {
		s.completePayment(p.ID, p.OrderID, p.Order.UserID)
	})

	return s.Repo.GetPayment(p.ID)
}

// completePayment finishes the simulated payment: processing -> succeeded,
// clear the cart, then start order tracking.
func (s *OrderService) completePayment(paymentID, orderID, userID uint) {
	now := time.Now()
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdatePaymentStatusGuard(tx, paymentID, s.PayStatus.Processing, s.PayStatus.Succeeded, &now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return s.CartRepo.ClearCart(tx, userID)
	})
	if err != nil {
		slog.Error("payment completion failed", "paymentId", paymentID, "err", err)
		return
	}

	s.push(userID, orderEvent{Type: "payment_succeeded", OrderID: orderID, Status: entity.PaymentSucceeded})
	s.StartTracking(orderID, userID)
}

// StartTracking schedules the fixed delivery pipeline for an order already
// in the received state.
func (s *OrderService) StartTracking(orderID, userID uint) {
	s.sched.after(orderID, s.Delays.Preparing, func() {
		s.advance(orderID, userID, s.Status.Received, s.Status.Preparing, entity.OrderPreparing)
	})
	s.sched.after(orderID, s.Delays.OnTheWay, func() {
		s.advance(orderID, userID, s.Status.Preparing, s.Status.OnTheWay, entity.OrderOnTheWay)
	})
	s.sched.after(orderID, s.Delays.Delivered, func() {
		s.advance(orderID, userID, s.Status.OnTheWay, s.Status.Delivered, entity.OrderDelivered)
		s.sched.cancel(orderID) // terminal state, nothing left to fire
	})
}

func (s *OrderService) advance(orderID, userID uint, from, to uint, name string) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		slog.Error("order transition failed", "orderId", orderID, "to", name, "err", err)
		return
	}
	s.push(userID, orderEvent{Type: "order_status", OrderID: orderID, Status: name})
}

// CancelTracking stops any pending transitions for the order, leaving its
// current status in place.
func (s *OrderService) CancelTracking(orderID uint) {
	s.sched.cancel(orderID)
}

// Shutdown stops every pending transition. Used on process teardown and in
// tests.
func (s *OrderService) Shutdown() {
	s.sched.shutdown()
}
