package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/fjod/storefront/internal/cart"
	"github.com/fjod/storefront/internal/checkout"
	"github.com/fjod/storefront/internal/domain"
	"github.com/fjod/storefront/internal/orderlog"
)

// CheckoutHandler drives the checkout sequencer over HTTP. The store is
// a single-session storefront, so one sequencer at a time; starting a
// new checkout replaces an abandoned one.
type CheckoutHandler struct {
	mu     sync.Mutex
	seq    *checkout.Sequencer
	cart   *cart.Store
	orders *orderlog.Log
	logger *zap.Logger
}

func NewCheckoutHandler(c *cart.Store, orders *orderlog.Log, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{cart: c, orders: orders, logger: logger}
}

type CheckoutStateDTO struct {
	Stage           checkout.Stage         `json:"stage"`
	ShippingAddress domain.ShippingAddress `json:"shipping_address"`
	PaymentInfo     domain.PaymentInfo     `json:"payment_info"`
	Cart            domain.Cart            `json:"cart"`
}

type BackRequestDTO struct {
	Stage checkout.Stage `json:"stage,omitempty"`
}

// Start handles POST /api/v1/checkout. An empty cart is refused.
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	seq, err := checkout.Begin(h.cart, h.orders, h.logger)
	if errors.Is(err, checkout.ErrCartEmpty) {
		respondError(w, http.StatusConflict, "cart_empty", "cannot check out an empty cart")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to start checkout")
		return
	}

	h.seq = seq
	respondJSON(w, http.StatusCreated, h.stateLocked())
}

// State handles GET /api/v1/checkout.
func (h *CheckoutHandler) State(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.seq == nil {
		respondError(w, http.StatusNotFound, "not_found", "no checkout in progress")
		return
	}
	respondJSON(w, http.StatusOK, h.stateLocked())
}

// SubmitShipping handles POST /api/v1/checkout/shipping.
func (h *CheckoutHandler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	var address domain.ShippingAddress
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.seq == nil {
		respondError(w, http.StatusConflict, "no_checkout", "checkout not started")
		return
	}

	fieldErrs, err := h.seq.SubmitShipping(address)
	if err != nil {
		respondStageError(w, err)
		return
	}
	if len(fieldErrs) > 0 {
		respondFieldErrors(w, fieldErrs)
		return
	}
	respondJSON(w, http.StatusOK, h.stateLocked())
}

// SubmitPayment handles POST /api/v1/checkout/payment.
func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var payment domain.PaymentInfo
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.seq == nil {
		respondError(w, http.StatusConflict, "no_checkout", "checkout not started")
		return
	}

	fieldErrs, err := h.seq.SubmitPayment(payment)
	if err != nil {
		respondStageError(w, err)
		return
	}
	if len(fieldErrs) > 0 {
		respondFieldErrors(w, fieldErrs)
		return
	}
	respondJSON(w, http.StatusOK, h.stateLocked())
}

// Back handles POST /api/v1/checkout/back. Without a target stage it
// steps back one stage; with one it jumps from review to that stage.
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	var req BackRequestDTO
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
			return
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.seq == nil {
		respondError(w, http.StatusConflict, "no_checkout", "checkout not started")
		return
	}

	var err error
	if req.Stage != "" {
		err = h.seq.BackTo(req.Stage)
	} else {
		err = h.seq.Back()
	}
	if err != nil {
		respondStageError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.stateLocked())
}

// Place handles POST /api/v1/checkout/place. On success the session is
// finished and cleared.
func (h *CheckoutHandler) Place(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.seq == nil {
		respondError(w, http.StatusConflict, "no_checkout", "checkout not started")
		return
	}

	order, err := h.seq.PlaceOrder(r.Context())
	if err != nil {
		if errors.Is(err, checkout.ErrWrongStage) || errors.Is(err, checkout.ErrAlreadyPlaced) || errors.Is(err, checkout.ErrCartEmpty) {
			respondStageError(w, err)
			return
		}
		h.logger.Error("order placement failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to place order")
		return
	}

	h.seq = nil
	respondJSON(w, http.StatusCreated, order)
}

func (h *CheckoutHandler) stateLocked() CheckoutStateDTO {
	return CheckoutStateDTO{
		Stage:           h.seq.Stage(),
		ShippingAddress: h.seq.ShippingAddress(),
		PaymentInfo:     h.seq.PaymentInfo(),
		Cart:            h.cart.Cart(),
	}
}

func respondStageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrCartEmpty):
		respondError(w, http.StatusConflict, "cart_empty", "cart is empty")
	case errors.Is(err, checkout.ErrAlreadyPlaced):
		respondError(w, http.StatusConflict, "already_placed", "order already placed")
	default:
		respondError(w, http.StatusConflict, "wrong_stage", "operation not valid in current checkout stage")
	}
}
