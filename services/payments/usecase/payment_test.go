package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/intercity/internal/pkg/apperrors"
	"github.com/piresc/intercity/internal/pkg/models"
	bookingmocks "github.com/piresc/intercity/services/bookings/mocks"
	notificationmocks "github.com/piresc/intercity/services/notifications/mocks"
	"github.com/piresc/intercity/services/payments/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	bookingID = "9c1e2d3f-4a5b-4c6d-8e7f-0a1b2c3d4e5f"
	paymentID = "1f2e3d4c-5b6a-4978-8a9b-0c1d2e3f4a5b"
	riderID   = "rider-1"
	reference = "ICT-0001"
)

type testDeps struct {
	payments *mocks.MockPaymentRepo
	bookings *bookingmocks.MockBookingRepo
	gateway  *mocks.MockPaymentGW
	pub      *notificationmocks.MockEventPublisher
}

func newTestUC(ctrl *gomock.Controller) (*PaymentUC, testDeps) {
	d := testDeps{
		payments: mocks.NewMockPaymentRepo(ctrl),
		bookings: bookingmocks.NewMockBookingRepo(ctrl),
		gateway:  mocks.NewMockPaymentGW(ctrl),
		pub:      notificationmocks.NewMockEventPublisher(ctrl),
	}
	return NewPaymentUC(d.payments, d.bookings, d.gateway, d.pub), d
}

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:            bookingID,
		RiderID:       riderID,
		TotalAmount:   300000,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusPending,
	}
}

func TestInitializePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, d := newTestUC(ctrl)

	d.bookings.EXPECT().GetBooking(gomock.Any(), bookingID).Return(pendingBooking(), nil)
	d.gateway.EXPECT().InitializeCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ChargeRequest) (*models.ChargeResult, error) {
			assert.True(t, strings.HasPrefix(req.Reference, ReferencePrefix))
			assert.Equal(t, 300000.0, req.Amount)
			assert.Equal(t, "card", req.Method)
			assert.Equal(t, "rider@example.com", req.Email)
			return &models.ChargeResult{
				Reference: req.Reference, Status: models.ChargeStatusPending, Amount: req.Amount,
				GatewayTransactionID: "txn_1", AuthorizationURL: "http://pay/checkout",
			}, nil
		})
	d.payments.EXPECT().UpsertPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Payment) (*models.Payment, error) {
			assert.Equal(t, models.PaymentStatusPending, p.Status)
			require.NotNil(t, p.GatewayTransactionID)
			assert.Equal(t, "txn_1", *p.GatewayTransactionID)
			saved := *p
			saved.ID = paymentID
			return &saved, nil
		})

	payment, err := uc.InitializePayment(context.Background(), riderID, "rider@example.com", bookingID, "card")

	require.NoError(t, err)
	assert.Equal(t, paymentID, payment.ID)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
}

func TestInitializePayment_ImmediateSettlement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, d := newTestUC(ctrl)

	d.bookings.EXPECT().GetBooking(gomock.Any(), bookingID).Return(pendingBooking(), nil)
	d.gateway.EXPECT().InitializeCharge(gomock.Any(), gomock.Any()).
		Return(&models.ChargeResult{Status: models.ChargeStatusSuccess, GatewayTransactionID: "txn_2"}, nil)
	d.payments.EXPECT().UpsertPayment(gomock.Any(), gomock.Any()).
		Return(&models.Payment{ID: paymentID, BookingID: bookingID, Status: models.PaymentStatusPending, RiderID: riderID}, nil)
	d.payments.EXPECT().ApplyChargeResult(gomock.Any(), paymentID, models.PaymentStatusPaid, "txn_2").
		Return(&models.Payment{ID: paymentID, BookingID: bookingID, Status: models.PaymentStatusPaid, RiderID: riderID}, nil)
	d.pub.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).Return(nil)

	payment, err := uc.InitializePayment(context.Background(), riderID, "", bookingID, "wallet")

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
}

func TestInitializePayment_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		booking *models.Booking
		caller  string
		id      string
		want    error
	}{
		{name: "unknown method", method: "cash", want: apperrors.ErrValidation},
		{name: "malformed booking id", method: "card", id: "nope", want: apperrors.ErrNotFound},
		{name: "other rider", method: "card", booking: pendingBooking(), caller: "rider-2", want: apperrors.ErrNotOwner},
		{
			name: "cancelled booking", method: "card", want: apperrors.ErrValidation,
			booking: &models.Booking{ID: bookingID, RiderID: riderID, Status: models.BookingStatusCancelled},
		},
		{
			name: "already paid", method: "card", want: apperrors.ErrConflict,
			booking: &models.Booking{ID: bookingID, RiderID: riderID, Status: models.BookingStatusConfirmed, PaymentStatus: models.PaymentStatusPaid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, d := newTestUC(ctrl)

			id := bookingID
			if tt.id != "" {
				id = tt.id
			}
			caller := riderID
			if tt.caller != "" {
				caller = tt.caller
			}
			if tt.booking != nil {
				d.bookings.EXPECT().GetBooking(gomock.Any(), bookingID).Return(tt.booking, nil)
			}

			_, err := uc.InitializePayment(context.Background(), caller, "", id, tt.method)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestInitializePayment_GatewayFailureStoresNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, d := newTestUC(ctrl)

	d.bookings.EXPECT().GetBooking(gomock.Any(), bookingID).Return(pendingBooking(), nil)
	d.gateway.EXPECT().InitializeCharge(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Internal("initializeCharge", assert.AnError))

	_, err := uc.InitializePayment(context.Background(), riderID, "", bookingID, "card")
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}

func TestVerifyPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, d := newTestUC(ctrl)

	pending := &models.Payment{ID: paymentID, BookingID: bookingID, Reference: reference, Status: models.PaymentStatusPending, RiderID: riderID}
	d.payments.EXPECT().GetPaymentByReference(gomock.Any(), reference).Return(pending, nil)
	d.gateway.EXPECT().VerifyCharge(gomock.Any(), reference).
		Return(&models.ChargeResult{Reference: reference, Status: models.ChargeStatusSuccess, GatewayTransactionID: "txn_1"}, nil)
	d.payments.EXPECT().ApplyChargeResult(gomock.Any(), paymentID, models.PaymentStatusPaid, "txn_1").
		Return(&models.Payment{ID: paymentID, BookingID: bookingID, Reference: reference, Status: models.PaymentStatusPaid, RiderID: riderID}, nil)
	d.pub.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.NotificationEvent) error {
			assert.Equal(t, riderID, e.UserID)
			assert.Equal(t, models.NotificationPaymentVerified, e.Type)
			return nil
		})

	payment, err := uc.VerifyPayment(context.Background(), riderID, reference)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
}

func TestVerifyPayment_StillPendingChangesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, d := newTestUC(ctrl)

	pending := &models.Payment{ID: paymentID, Reference: reference, Status: models.PaymentStatusPending, RiderID: riderID}
	d.payments.EXPECT().GetPaymentByReference(gomock.Any(), reference).Return(pending, nil)
	d.gateway.EXPECT().VerifyCharge(gomock.Any(), reference).
		Return(&models.ChargeResult{Reference: reference, Status: models.ChargeStatusPending}, nil)

	payment, err := uc.VerifyPayment(context.Background(), riderID, reference)

	require.NoError(t, err)
	assert.Same(t, pending, payment)
}

func TestVerifyPayment_AlreadyPaidSkipsGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, d := newTestUC(ctrl)

	paid := &models.Payment{ID: paymentID, Reference: reference, Status: models.PaymentStatusPaid, RiderID: riderID}
	d.payments.EXPECT().GetPaymentByReference(gomock.Any(), reference).Return(paid, nil)

	payment, err := uc.VerifyPayment(context.Background(), riderID, reference)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
}

func TestVerifyPayment_OtherRiderLooksMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, d := newTestUC(ctrl)

	d.payments.EXPECT().GetPaymentByReference(gomock.Any(), reference).
		Return(&models.Payment{ID: paymentID, Reference: reference, RiderID: riderID}, nil)
	d.payments.EXPECT().GetPaymentByReference(gomock.Any(), "ICT-missing").
		Return(nil, apperrors.NotFound("verifyPayment", "payment"))

	_, notOwner := uc.VerifyPayment(context.Background(), "rider-2", reference)
	_, missing := uc.VerifyPayment(context.Background(), "rider-2", "ICT-missing")

	assert.ErrorIs(t, notOwner, apperrors.ErrNotOwner)
	assert.Equal(t, apperrors.Classify(missing, true), apperrors.Classify(notOwner, true))
}

func TestRefundPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, d := newTestUC(ctrl)

	cancelled := &models.Booking{ID: bookingID, RiderID: riderID, Status: models.BookingStatusCancelled, PaymentStatus: models.PaymentStatusPaid}
	paid := &models.Payment{ID: paymentID, BookingID: bookingID, Reference: reference, Status: models.PaymentStatusPaid, RiderID: riderID}

	d.bookings.EXPECT().GetBooking(gomock.Any(), bookingID).Return(cancelled, nil)
	d.payments.EXPECT().GetPaymentByBookingID(gomock.Any(), bookingID).Return(paid, nil)
	d.gateway.EXPECT().RefundCharge(gomock.Any(), reference).
		Return(&models.ChargeResult{Reference: reference, Status: models.ChargeStatusRefunded}, nil)
	d.payments.EXPECT().ApplyChargeResult(gomock.Any(), paymentID, models.PaymentStatusRefunded, "").
		Return(&models.Payment{ID: paymentID, BookingID: bookingID, Status: models.PaymentStatusRefunded, RiderID: riderID}, nil)
	d.pub.EXPECT().PublishNotification(gomock.Any(), gomock.Any()).Return(nil)

	payment, err := uc.RefundPayment(context.Background(), riderID, bookingID)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, payment.Status)
}

func TestRefundPayment_Rejections(t *testing.T) {
	t.Run("booking not cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newTestUC(ctrl)

		d.bookings.EXPECT().GetBooking(gomock.Any(), bookingID).Return(pendingBooking(), nil)

		_, err := uc.RefundPayment(context.Background(), riderID, bookingID)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("payment not paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newTestUC(ctrl)

		d.bookings.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(&models.Booking{ID: bookingID, RiderID: riderID, Status: models.BookingStatusCancelled}, nil)
		d.payments.EXPECT().GetPaymentByBookingID(gomock.Any(), bookingID).
			Return(&models.Payment{ID: paymentID, Status: models.PaymentStatusPending, RiderID: riderID}, nil)

		_, err := uc.RefundPayment(context.Background(), riderID, bookingID)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
	})

	t.Run("gateway did not refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newTestUC(ctrl)

		d.bookings.EXPECT().GetBooking(gomock.Any(), bookingID).
			Return(&models.Booking{ID: bookingID, RiderID: riderID, Status: models.BookingStatusCancelled}, nil)
		d.payments.EXPECT().GetPaymentByBookingID(gomock.Any(), bookingID).
			Return(&models.Payment{ID: paymentID, Reference: reference, Status: models.PaymentStatusPaid, RiderID: riderID}, nil)
		d.gateway.EXPECT().RefundCharge(gomock.Any(), reference).
			Return(&models.ChargeResult{Reference: reference, Status: models.ChargeStatusSuccess}, nil)

		_, err := uc.RefundPayment(context.Background(), riderID, bookingID)
		assert.ErrorIs(t, err, apperrors.ErrInternal)
	})
}

func TestGetPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, d := newTestUC(ctrl)

	d.payments.EXPECT().GetPaymentByBookingID(gomock.Any(), bookingID).
		Return(&models.Payment{ID: paymentID, RiderID: riderID}, nil).Times(2)

	payment, err := uc.GetPayment(context.Background(), riderID, bookingID)
	require.NoError(t, err)
	assert.Equal(t, paymentID, payment.ID)

	_, err = uc.GetPayment(context.Background(), "driver-1", bookingID)
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)

	_, err = uc.GetPayment(context.Background(), riderID, "bad-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
