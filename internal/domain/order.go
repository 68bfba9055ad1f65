package domain

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

type ShippingAddress struct {
	FullName     string `json:"full_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit-card"
	PaymentMethodDebitCard  PaymentMethod = "debit-card"
	PaymentMethodPayPal     PaymentMethod = "paypal"
	PaymentMethodApplePay   PaymentMethod = "apple-pay"
)

// PaymentInfo is transient checkout form state. CardNumber and CVV never
// leave the checkout sequencer; orders only carry the redacted form.
type PaymentInfo struct {
	Method     PaymentMethod `json:"method"`
	CardHolder string        `json:"card_holder"`
	CardNumber string        `json:"card_number,omitempty"`
	ExpiryDate string        `json:"expiry_date"`
	CVV        string        `json:"cvv,omitempty"`
}

// Redacted strips the sensitive card fields for persistence on an order.
func (p PaymentInfo) Redacted() PaymentInfo {
	return PaymentInfo{
		Method:     p.Method,
		CardHolder: p.CardHolder,
		ExpiryDate: p.ExpiryDate,
	}
}

// MaskCardNumber keeps only the last four digits for display.
func MaskCardNumber(cardNumber string) string {
	digits := strings.ReplaceAll(cardNumber, " ", "")
	if len(digits) < 4 {
		return "****"
	}
	return "**** **** **** " + digits[len(digits)-4:]
}

// Order is the immutable record produced by a completed checkout.
type Order struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"order_number"`
	Items             []CartLine      `json:"items"`
	ShippingAddress   ShippingAddress `json:"shipping_address"`
	PaymentInfo       PaymentInfo     `json:"payment_info"`
	Subtotal          float64         `json:"subtotal"`
	Tax               float64         `json:"tax"`
	Shipping          float64         `json:"shipping"`
	Total             float64         `json:"total"`
	Status            OrderStatus     `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
}
