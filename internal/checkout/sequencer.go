// Package checkout drives the shipping → payment → review flow and
// turns a validated cart into a placed order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fjod/storefront/internal/cart"
	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/orderlog"
)

// DeliveryOffset is the fixed estimated-delivery window promised on a
// new order.
const DeliveryOffset = 7 * 24 * time.Hour

var (
	// ErrCartEmpty refuses to start (or finish) a checkout over an
	// empty cart.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrWrongStage rejects a submission that does not belong to the
	// current stage.
	ErrWrongStage = errors.New("operation not valid in current checkout stage")

	// ErrAlreadyPlaced rejects any further mutation once the order is
	// placed.
	ErrAlreadyPlaced = errors.New("order already placed")
)

// Sequencer is one checkout session. Stages only advance on successful
// validation; Review can step back for edits. The collected address and
// payment data live here and are never persisted until an order is
// placed — and the order only ever stores the redacted payment info.
type Sequencer struct {
	cart   *cart.Store
	orders *orderlog.Log
	logger *zap.Logger

	stage   Stage
	address domain.ShippingAddress
	payment domain.PaymentInfo
}

// Begin starts a checkout session over the given cart. An empty cart is
// a dead-end: no session is created.
func Begin(c *cart.Store, orders *orderlog.Log, logger *zap.Logger) (*Sequencer, error) {
	if c.ItemCount() == 0 {
		return nil, ErrCartEmpty
	}
	return &Sequencer{
		cart:   c,
		orders: orders,
		logger: logger,
		stage:  StageShipping,
	}, nil
}

// Stage returns the current checkout stage.
func (s *Sequencer) Stage() Stage {
	return s.stage
}

// ShippingAddress returns the address collected so far.
func (s *Sequencer) ShippingAddress() domain.ShippingAddress {
	return s.address
}

// PaymentInfo returns the redacted payment data collected so far.
func (s *Sequencer) PaymentInfo() domain.PaymentInfo {
	return s.payment.Redacted()
}

// SubmitShipping validates the address and, when clean, advances to the
// payment stage. Field errors block the transition.
func (s *Sequencer) SubmitShipping(address domain.ShippingAddress) (FieldErrors, error) {
	if s.stage.IsTerminal() {
		return nil, ErrAlreadyPlaced
	}
	if s.stage != StageShipping {
		return nil, ErrWrongStage
	}

	if errs := ValidateShipping(address); len(errs) > 0 {
		return errs, nil
	}

	s.address = address
	s.stage = StagePayment
	return nil, nil
}

// SubmitPayment validates the payment form and, when clean, advances to
// the review stage.
func (s *Sequencer) SubmitPayment(payment domain.PaymentInfo) (FieldErrors, error) {
	if s.stage.IsTerminal() {
		return nil, ErrAlreadyPlaced
	}
	if s.stage != StagePayment {
		return nil, ErrWrongStage
	}

	if errs := ValidatePayment(payment); len(errs) > 0 {
		return errs, nil
	}

	s.payment = payment
	s.stage = StageReview
	return nil, nil
}

// Back steps to the previous stage for edits. Review → Payment,
// Payment → Shipping. Already-collected form data is kept.
func (s *Sequencer) Back() error {
	switch s.stage {
	case StagePayment:
		s.stage = StageShipping
	case StageReview:
		s.stage = StagePayment
	case StagePlaced:
		return ErrAlreadyPlaced
	default:
		return ErrWrongStage
	}
	return nil
}

// BackTo jumps from Review directly to an earlier stage.
func (s *Sequencer) BackTo(stage Stage) error {
	if s.stage != StageReview {
		return ErrWrongStage
	}
	if stage != StageShipping && stage != StagePayment {
		return ErrWrongStage
	}
	s.stage = stage
	return nil
}

// PlaceOrder builds the immutable order from the cart snapshot and the
// collected forms, appends it to the order log and clears the cart.
// The append happens first: a failure between the two writes can leave
// a stale cart behind, never a paid-for order that was lost.
func (s *Sequencer) PlaceOrder(ctx context.Context) (domain.Order, error) {
	if s.stage.IsTerminal() {
		return domain.Order{}, ErrAlreadyPlaced
	}
	if s.stage != StageReview {
		return domain.Order{}, ErrWrongStage
	}

	snapshot := s.cart.Cart()
	if len(snapshot.Lines) == 0 {
		return domain.Order{}, ErrCartEmpty
	}

	now := time.Now().UTC()
	order := domain.Order{
		ID:                uuid.New().String(),
		OrderNumber:       NewOrderNumber(),
		Items:             snapshot.Lines,
		ShippingAddress:   s.address,
		PaymentInfo:       s.payment.Redacted(),
		Subtotal:          snapshot.Subtotal,
		Tax:               snapshot.Tax,
		Shipping:          snapshot.Shipping,
		Total:             snapshot.Total,
		Status:            domain.OrderStatusPending,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(DeliveryOffset),
	}

	if err := s.orders.Append(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("place order: %w", err)
	}

	s.cart.Clear(ctx)
	s.stage = StagePlaced

	s.logger.Info("order placed",
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", order.Total),
		zap.Int("items", len(order.Items)),
	)
	return order, nil
}
