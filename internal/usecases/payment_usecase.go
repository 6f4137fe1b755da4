package usecases

import (
	"context"
	"errors"

	"growline.backend/internal/domain/entities"
	domainerrors "growline.backend/internal/domain/errors"
	"growline.backend/internal/domain/repositories"
)

// PaymentUsecase handles member payment records
type PaymentUsecase struct {
	userRepo         repositories.UserRepository
	paymentRepo      repositories.PaymentRepository
	adminPaymentRepo repositories.AdminPaymentRepository
}

// NewPaymentUsecase creates a new payment usecase
func NewPaymentUsecase(
	userRepo repositories.UserRepository,
	paymentRepo repositories.PaymentRepository,
	adminPaymentRepo repositories.AdminPaymentRepository,
) *PaymentUsecase {
	return &PaymentUsecase{
		userRepo:         userRepo,
		paymentRepo:      paymentRepo,
		adminPaymentRepo: adminPaymentRepo,
	}
}

// GetPayments returns a member's payment record, creating it on first
// read. A record created here is seeded with whatever admin-side entries
// exist for the member at that moment.
func (u *PaymentUsecase) GetPayments(ctx context.Context, firebaseUID string) (*entities.PaymentRecord, error) {
	if _, err := u.userRepo.GetByUID(ctx, firebaseUID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, err
	}

	seed, err := u.adminPaymentRepo.ListByUID(ctx, firebaseUID)
	if err != nil {
		return nil, err
	}

	return u.paymentRepo.GetOrCreate(ctx, firebaseUID, seed)
}
