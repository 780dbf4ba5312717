package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/logger"
	"github.com/piresc/intercity/internal/pkg/models"
	"github.com/piresc/intercity/internal/utils"
	"github.com/piresc/intercity/services/bookings"
	"github.com/piresc/intercity/services/notifications"
	"github.com/piresc/intercity/services/payments"
)

// ReferencePrefix starts every charge reference handed to the gateway
const ReferencePrefix = "ICT-"

var validMethods = map[string]bool{
	"card":          true,
	"bank_transfer": true,
	"wallet":        true,
}

// PaymentUC implements payments.PaymentUC
type PaymentUC struct {
	paymentRepo payments.PaymentRepo
	bookingRepo bookings.BookingRepo
	gateway     payments.PaymentGW
	publisher   notifications.EventPublisher
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	paymentRepo payments.PaymentRepo,
	bookingRepo bookings.BookingRepo,
	gateway payments.PaymentGW,
	publisher notifications.EventPublisher,
) *PaymentUC {
	return &PaymentUC{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		gateway:     gateway,
		publisher:   publisher,
	}
}

// InitializePayment opens a gateway charge for the caller's booking. The
// payment is stored as pending until the gateway reports an outcome.
func (uc *PaymentUC) InitializePayment(ctx context.Context, riderID, email, bookingID, method string) (*models.Payment, error) {
	const op = "initializePayment"

	if !validMethods[method] {
		return nil, apperrors.Validation(op, fmt.Sprintf("unsupported payment method %q", method))
	}
	booking, err := uc.riderBooking(ctx, op, riderID, bookingID)
	if err != nil {
		return nil, err
	}

	switch {
	case booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed:
		return nil, apperrors.Validation(op, fmt.Sprintf("booking is %s and cannot be paid", booking.Status))
	case booking.PaymentStatus == models.PaymentStatusPaid || booking.PaymentStatus == models.PaymentStatusRefunded:
		return nil, apperrors.Conflict(op, "booking already has a settled payment", nil)
	}

	reference := ReferencePrefix + uuid.NewString()
	result, err := uc.gateway.InitializeCharge(ctx, models.ChargeRequest{
		Reference: reference,
		Amount:    booking.TotalAmount,
		Method:    method,
		Email:     email,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Payment gateway rejected charge",
			logger.String("booking_id", bookingID),
			logger.String("reference", reference),
			logger.Err(err))
		return nil, err
	}

	payment, err := uc.paymentRepo.UpsertPayment(ctx, &models.Payment{
		BookingID:            booking.ID,
		Amount:               booking.TotalAmount,
		Method:               method,
		Reference:            reference,
		GatewayTransactionID: optional(result.GatewayTransactionID),
		AuthorizationURL:     optional(result.AuthorizationURL),
		Status:               models.PaymentStatusPending,
		RiderID:              riderID,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Payment initialized",
		logger.String("payment_id", payment.ID),
		logger.String("booking_id", booking.ID),
		logger.String("reference", reference),
		logger.Float64("amount", payment.Amount))

	// some methods settle immediately
	if status := models.PaymentStatusFor(result.Status); status != models.PaymentStatusPending {
		return uc.applyOutcome(ctx, payment, status, result.GatewayTransactionID)
	}
	return payment, nil
}

// VerifyPayment asks the gateway for the charge outcome and records it.
// Payment and booking change only when the gateway reports a new state.
func (uc *PaymentUC) VerifyPayment(ctx context.Context, riderID, reference string) (*models.Payment, error) {
	const op = "verifyPayment"

	payment, err := uc.paymentRepo.GetPaymentByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if payment.RiderID != riderID {
		return nil, apperrors.NotOwner(op, "payment")
	}
	if payment.Status == models.PaymentStatusPaid || payment.Status == models.PaymentStatusRefunded {
		return payment, nil
	}

	result, err := uc.gateway.VerifyCharge(ctx, reference)
	if err != nil {
		logger.ErrorCtx(ctx, "Payment verification failed",
			logger.String("reference", reference),
			logger.Err(err))
		return nil, err
	}

	status := models.PaymentStatusFor(result.Status)
	if status == payment.Status {
		return payment, nil
	}
	return uc.applyOutcome(ctx, payment, status, result.GatewayTransactionID)
}

// RefundPayment refunds the paid charge of a cancelled booking
func (uc *PaymentUC) RefundPayment(ctx context.Context, riderID, bookingID string) (*models.Payment, error) {
	const op = "refundPayment"

	booking, err := uc.riderBooking(ctx, op, riderID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusCancelled {
		return nil, apperrors.Validation(op, "only cancelled bookings can be refunded")
	}

	payment, err := uc.paymentRepo.GetPaymentByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentStatusPaid {
		return nil, apperrors.InvalidStateTransition(op, "payment", payment.Status, models.PaymentStatusRefunded)
	}

	result, err := uc.gateway.RefundCharge(ctx, payment.Reference)
	if err != nil {
		logger.ErrorCtx(ctx, "Payment refund failed",
			logger.String("reference", payment.Reference),
			logger.Err(err))
		return nil, err
	}
	if result.Status != models.ChargeStatusRefunded {
		return nil, apperrors.Internal(op, fmt.Errorf("gateway reported %s for refund of %s", result.Status, payment.Reference))
	}

	return uc.applyOutcome(ctx, payment, models.PaymentStatusRefunded, result.GatewayTransactionID)
}

// GetPayment returns the payment of the caller's booking
func (uc *PaymentUC) GetPayment(ctx context.Context, userID, bookingID string) (*models.Payment, error) {
	const op = "payment"

	if !utils.IsUUID(bookingID) {
		return nil, apperrors.NotFound(op, "payment")
	}
	payment, err := uc.paymentRepo.GetPaymentByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if payment.RiderID != userID {
		return nil, apperrors.NotOwner(op, "payment")
	}
	return payment, nil
}

func (uc *PaymentUC) riderBooking(ctx context.Context, op, riderID, bookingID string) (*models.Booking, error) {
	if !utils.IsUUID(bookingID) {
		return nil, apperrors.NotFound(op, "booking")
	}
	booking, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.RiderID != riderID {
		return nil, apperrors.NotOwner(op, "booking")
	}
	return booking, nil
}

func (uc *PaymentUC) applyOutcome(ctx context.Context, payment *models.Payment, status models.PaymentStatus, transactionID string) (*models.Payment, error) {
	updated, err := uc.paymentRepo.ApplyChargeResult(ctx, payment.ID, status, transactionID)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Payment status updated",
		logger.String("payment_id", updated.ID),
		logger.String("from", string(payment.Status)),
		logger.String("to", string(status)))

	var event *models.NotificationEvent
	switch status {
	case models.PaymentStatusPaid:
		event = &models.NotificationEvent{
			Title:   "Payment received",
			Message: fmt.Sprintf("Your payment of %.2f was received and your booking is confirmed.", updated.Amount),
			Type:    models.NotificationPaymentVerified,
		}
	case models.PaymentStatusRefunded:
		event = &models.NotificationEvent{
			Title:   "Payment refunded",
			Message: fmt.Sprintf("Your payment of %.2f was refunded.", updated.Amount),
			Type:    models.NotificationPaymentRefunded,
		}
	}
	if event != nil {
		event.UserID = updated.RiderID
		event.Metadata = map[string]interface{}{
			"booking_id": updated.BookingID,
			"reference":  updated.Reference,
		}
		notifications.Notify(ctx, uc.publisher, *event)
	}
	return updated, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
