package services

import (
	"testing"
	"time"

	"github.com/cyber3201/foodApp/entity"
	"github.com/cyber3201/foodApp/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderFixture(t *testing.T, db *gorm.DB, delays TransitionDelays) (*OrderService, *CartService) {
	t.Helper()
	seedStatuses(t, db)
	cartSvc := newCartService(t, db)

	svc, err := NewOrderService(db, repository.NewOrderRepository(db), cartSvc.CartRepo, delays, nil)
	require.NoError(t, err)
	t.Cleanup(svc.Shutdown)
	return svc, cartSvc
}

func fastDelays() TransitionDelays {
	return TransitionDelays{
		PaymentProcessing: 10 * time.Millisecond,
		Preparing:         20 * time.Millisecond,
		OnTheWay:          40 * time.Millisecond,
		Delivered:         60 * time.Millisecond,
	}
}

func TestCheckoutRequiresNonEmptyCart(t *testing.T) {
	db := setupDB(t)
	svc, _ := newOrderFixture(t, db, fastDelays())

	_, _, err := svc.Checkout(1)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutSnapshotsTotals(t *testing.T) {
	db := setupDB(t)
	svc, cartSvc := newOrderFixture(t, db, fastDelays())

	// 2x product 1 (75.00) + 1x product 2 (80.00)
	require.NoError(t, cartSvc.Add(1, 1))
	require.NoError(t, cartSvc.Add(1, 1))
	require.NoError(t, cartSvc.Add(1, 2))

	order, payment, err := svc.Checkout(1)
	require.NoError(t, err)

	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("230.00")), "subtotal %s", order.Subtotal)
	assert.True(t, order.DeliveryFee.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, order.Total.Equal(decimal.RequireFromString("250.00")), "total %s", order.Total)
	assert.True(t, payment.Amount.Equal(order.Total))

	got, err := svc.Get(1, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderReceived, got.OrderStatus.StatusName)

	// cart untouched until the payment succeeds
	cart, _, err := cartSvc.Get(1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestOrdersBelongToTheirUser(t *testing.T) {
	db := setupDB(t)
	svc, cartSvc := newOrderFixture(t, db, fastDelays())

	require.NoError(t, cartSvc.Add(1, 1))
	order, payment, err := svc.Checkout(1)
	require.NoError(t, err)

	_, err = svc.Get(2, order.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = svc.GetPayment(2, payment.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestConfirmPaymentTwiceConflicts(t *testing.T) {
	db := setupDB(t)
	// long delays so the first confirmation cannot complete mid-test
	svc, cartSvc := newOrderFixture(t, db, TransitionDelays{
		PaymentProcessing: time.Hour,
		Preparing:         time.Hour,
		OnTheWay:          time.Hour,
		Delivered:         time.Hour,
	})

	require.NoError(t, cartSvc.Add(1, 1))
	_, payment, err := svc.Checkout(1)
	require.NoError(t, err)

	p, err := svc.ConfirmPayment(1, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentProcessing, p.PaymentStatus.StatusName)

	_, err = svc.ConfirmPayment(1, payment.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPaymentSuccessClearsCartAndTracksToDelivered(t *testing.T) {
	db := setupDB(t)
	svc, cartSvc := newOrderFixture(t, db, fastDelays())

	require.NoError(t, cartSvc.Add(1, 1))
	order, payment, err := svc.Checkout(1)
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(1, payment.ID)
	require.NoError(t, err)

	// the simulated pipeline runs through to the terminal state
	require.Eventually(t, func() bool {
		o, err := svc.Get(1, order.ID)
		return err == nil && o.OrderStatus.StatusName == entity.OrderDelivered
	}, 5*time.Second, 5*time.Millisecond)

	p, err := svc.GetPayment(1, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentSucceeded, p.PaymentStatus.StatusName)
	assert.NotNil(t, p.PaidAt)

	cart, _, err := cartSvc.Get(1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCancelTrackingStopsPendingTransitions(t *testing.T) {
	db := setupDB(t)
	svc, cartSvc := newOrderFixture(t, db, TransitionDelays{
		PaymentProcessing: 5 * time.Millisecond,
		Preparing:         20 * time.Millisecond,
		OnTheWay:          time.Second,
		Delivered:         1200 * time.Millisecond,
	})

	require.NoError(t, cartSvc.Add(1, 1))
	order, payment, err := svc.Checkout(1)
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(1, payment.ID)
	require.NoError(t, err)

	// wait for the first tracking step, then cancel the rest
	require.Eventually(t, func() bool {
		o, err := svc.Get(1, order.ID)
		return err == nil && o.OrderStatus.StatusName == entity.OrderPreparing
	}, 5*time.Second, time.Millisecond)
	svc.CancelTracking(order.ID)

	time.Sleep(1500 * time.Millisecond)
	o, err := svc.Get(1, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPreparing, o.OrderStatus.StatusName)
}
