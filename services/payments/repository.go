package payments

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// PaymentRepo defines the interface for payment data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/intercity/services/payments PaymentRepo
type PaymentRepo interface {
	UpsertPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	GetPaymentByReference(ctx context.Context, reference string) (*models.Payment, error)
	GetPaymentByBookingID(ctx context.Context, bookingID string) (*models.Payment, error)
	ApplyChargeResult(ctx context.Context, paymentID string, status models.PaymentStatus, gatewayTransactionID string) (*models.Payment, error)
}
