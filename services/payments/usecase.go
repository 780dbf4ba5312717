package payments

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// PaymentUC defines the interface for payment business logic
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/intercity/services/payments PaymentUC
type PaymentUC interface {
	InitializePayment(ctx context.Context, riderID, email, bookingID, method string) (*models.Payment, error)
	VerifyPayment(ctx context.Context, riderID, reference string) (*models.Payment, error)
	RefundPayment(ctx context.Context, riderID, bookingID string) (*models.Payment, error)
	GetPayment(ctx context.Context, userID, bookingID string) (*models.Payment, error)
}
