package models

import (
	"time"
)

// PaymentStatus mirrors between Payment.status and Booking.payment_status
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Payment records the gateway charge for a booking
type Payment struct {
	ID                   string        `json:"id" db:"id"`
	BookingID            string        `json:"booking_id" db:"booking_id"`
	Amount               float64       `json:"amount" db:"amount"`
	Method               string        `json:"method" db:"method"`
	Reference            string        `json:"reference" db:"reference"`
	GatewayTransactionID *string       `json:"gateway_transaction_id,omitempty" db:"gateway_transaction_id"`
	AuthorizationURL     *string       `json:"authorization_url,omitempty" db:"authorization_url"`
	Status               PaymentStatus `json:"status" db:"status"`
	CreatedAt            time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at" db:"updated_at"`

	// RiderID is filled by queries that join the owning booking
	RiderID string `json:"-" db:"rider_id"`
}

// ChargeStatus is the outcome reported by the payment gateway
type ChargeStatus string

const (
	ChargeStatusPending  ChargeStatus = "pending"
	ChargeStatusSuccess  ChargeStatus = "success"
	ChargeStatusFailed   ChargeStatus = "failed"
	ChargeStatusRefunded ChargeStatus = "refunded"
)

// ChargeRequest asks the gateway to open a charge
type ChargeRequest struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Email     string  `json:"email"`
}

// ChargeResult is the gateway view of a charge
type ChargeResult struct {
	Reference            string       `json:"reference"`
	Status               ChargeStatus `json:"status"`
	Amount               float64      `json:"amount"`
	GatewayTransactionID string       `json:"gateway_transaction_id,omitempty"`
	AuthorizationURL     string       `json:"authorization_url,omitempty"`
}

// PaymentStatusFor maps a gateway outcome to the persisted payment status.
// A pending charge maps to pending.
func PaymentStatusFor(status ChargeStatus) PaymentStatus {
	switch status {
	case ChargeStatusSuccess:
		return PaymentStatusPaid
	case ChargeStatusFailed:
		return PaymentStatusFailed
	case ChargeStatusRefunded:
		return PaymentStatusRefunded
	default:
		return PaymentStatusPending
	}
}
