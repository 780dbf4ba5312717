package payments

import (
	"context"

	"github.com/piresc/intercity/internal/pkg/models"
)

// PaymentGW is the external payment gateway
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/intercity/services/payments PaymentGW
type PaymentGW interface {
	InitializeCharge(ctx context.Context, req models.ChargeRequest) (*models.ChargeResult, error)
	VerifyCharge(ctx context.Context, reference string) (*models.ChargeResult, error)
	RefundCharge(ctx context.Context, reference string) (*models.ChargeResult, error)
}
