package usecases

import (
	"context"
	"errors"
	"time"

	"growline.backend/internal/domain/entities"
	domainerrors "growline.backend/internal/domain/errors"
	"growline.backend/internal/domain/repositories"
	"growline.backend/pkg/utils"
)

// WithdrawalUsecase handles payout requests
type WithdrawalUsecase struct {
	userRepo       repositories.UserRepository
	withdrawalRepo repositories.WithdrawalRepository
}

// NewWithdrawalUsecase creates a new withdrawal usecase
func NewWithdrawalUsecase(
	userRepo repositories.UserRepository,
	withdrawalRepo repositories.WithdrawalRepository,
) *WithdrawalUsecase {
	return &WithdrawalUsecase{
		userRepo:       userRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

// RequestWithdrawal appends a payout request for the member. The
// member's name is snapshotted onto the request so the admin list stays
// readable even if the profile changes later.
func (u *WithdrawalUsecase) RequestWithdrawal(ctx context.Context, input *entities.CreateWithdrawalInput) (*entities.WithdrawalRequest, error) {
	user, err := u.userRepo.GetByUID(ctx, input.FirebaseUID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, err
	}

	req := &entities.WithdrawalRequest{
		FirebaseUID: user.FirebaseUID,
		Name:        user.Name,
		Amount:      input.Amount,
		RequestedAt: time.Now().UTC(),
	}

	if err := u.withdrawalRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListWithdrawals returns a page of the member's payout requests,
// newest first, and the total count
func (u *WithdrawalUsecase) ListWithdrawals(ctx context.Context, firebaseUID string, pagination utils.PaginationParams) ([]*entities.WithdrawalRequest, int64, error) {
	if _, err := u.userRepo.GetByUID(ctx, firebaseUID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, 0, domainerrors.ErrUserNotFound
		}
		return nil, 0, err
	}

	return u.withdrawalRepo.ListByUID(ctx, firebaseUID, pagination)
}
