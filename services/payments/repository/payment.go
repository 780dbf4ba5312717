package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/database"
	"github.com/piresc/intercity/internal/pkg/models"
)

const (
	paymentColumns = `id, booking_id, amount, method, reference, gateway_transaction_id,
		authorization_url, status, created_at, updated_at`

	joinedPaymentColumns = `p.id, p.booking_id, p.amount, p.method, p.reference, p.gateway_transaction_id,
		p.authorization_url, p.status, p.created_at, p.updated_at, b.rider_id`
)

// PaymentRepo implements payments.PaymentRepo on PostgreSQL
type PaymentRepo struct {
	db *database.DB
}

// NewPaymentRepo creates a new payment repository
func NewPaymentRepo(db *database.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// UpsertPayment records a new charge attempt for a booking. A booking keeps
// one payment row; only pending or failed attempts may be replaced.
func (r *PaymentRepo) UpsertPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	query := `
		INSERT INTO payments (id, booking_id, amount, method, reference, gateway_transaction_id,
			authorization_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (booking_id) DO UPDATE
		SET amount = EXCLUDED.amount,
		    method = EXCLUDED.method,
		    reference = EXCLUDED.reference,
		    gateway_transaction_id = EXCLUDED.gateway_transaction_id,
		    authorization_url = EXCLUDED.authorization_url,
		    status = EXCLUDED.status,
		    updated_at = NOW()
		WHERE payments.status IN ('pending', 'failed')
		RETURNING ` + paymentColumns

	var saved models.Payment
	err := r.db.Get(ctx, &saved, query,
		uuid.NewString(), payment.BookingID, payment.Amount, payment.Method, payment.Reference,
		payment.GatewayTransactionID, payment.AuthorizationURL, payment.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Conflict("initializePayment", "booking already has a settled payment", nil)
		}
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("initializePayment", "payment reference already used", err)
		}
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}
	saved.RiderID = payment.RiderID
	return &saved, nil
}

// GetPaymentByReference retrieves a payment and its booking's rider
func (r *PaymentRepo) GetPaymentByReference(ctx context.Context, reference string) (*models.Payment, error) {
	return r.getPayment(ctx, "verifyPayment", `p.reference = $1`, reference)
}

// GetPaymentByBookingID retrieves the payment of a booking and its rider
func (r *PaymentRepo) GetPaymentByBookingID(ctx context.Context, bookingID string) (*models.Payment, error) {
	return r.getPayment(ctx, "payment", `p.booking_id = $1`, bookingID)
}

func (r *PaymentRepo) getPayment(ctx context.Context, op, where string, arg interface{}) (*models.Payment, error) {
	query := `
		SELECT ` + joinedPaymentColumns + `
		FROM payments p JOIN bookings b ON b.id = p.booking_id
		WHERE ` + where

	var payment models.Payment
	if err := r.db.Get(ctx, &payment, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(op, "payment")
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// ApplyChargeResult stores a gateway outcome on the payment and mirrors it
// on the booking in one transaction. A paid pending booking is confirmed.
func (r *PaymentRepo) ApplyChargeResult(ctx context.Context, paymentID string, status models.PaymentStatus, gatewayTransactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Transaction(ctx, func(tx *database.DB) error {
		err := tx.Get(ctx, &payment, `
			UPDATE payments
			SET status = $2,
			    gateway_transaction_id = COALESCE(NULLIF($3, ''), gateway_transaction_id),
			    updated_at = NOW()
			WHERE id = $1
			RETURNING `+paymentColumns, paymentID, status, gatewayTransactionID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.NotFound("applyChargeResult", "payment")
			}
			return fmt.Errorf("failed to update payment: %w", err)
		}

		err = tx.Get(ctx, &payment.RiderID, `
			UPDATE bookings
			SET payment_status = $2::text,
			    status = CASE WHEN $2::text = 'paid' AND status = 'pending' THEN 'confirmed' ELSE status END,
			    updated_at = NOW()
			WHERE id = $1
			RETURNING rider_id`, payment.BookingID, status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.NotFound("applyChargeResult", "booking")
			}
			return fmt.Errorf("failed to update booking payment status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
