package usecases

import (
	"context"
	"errors"

	"growline.backend/internal/domain/entities"
	domainerrors "growline.backend/internal/domain/errors"
	"growline.backend/internal/domain/repositories"
)

// CodeGenerator produces candidate referral codes.
type CodeGenerator func() (string, error)

// UserUsecase handles member sign-up and profile logic
type UserUsecase struct {
	userRepo     repositories.UserRepository
	generateCode CodeGenerator
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository, gen CodeGenerator) *UserUsecase {
	return &UserUsecase{
		userRepo:     userRepo,
		generateCode: gen,
	}
}

// UpsertUser creates or updates a member profile. New members get a
// unique referral code and, when a reference code is supplied, a link to
// their referrer. Existing members keep their referral code, payment
// status and referrer regardless of the payload.
func (u *UserUsecase) UpsertUser(ctx context.Context, input *entities.UpsertUserInput) (*entities.UpsertUserResult, error) {
	existing, err := u.userRepo.GetByUID(ctx, input.FirebaseUID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	var defaults entities.UserDefaults
	created := existing == nil

	if created {
		code, err := u.uniqueReferralCode(ctx)
		if err != nil {
			return nil, err
		}
		defaults = entities.UserDefaults{
			ReferralCode:  code,
			PaymentStatus: false,
		}

		if input.ReferenceCode != nil && *input.ReferenceCode != "" {
			referrer, err := u.userRepo.GetByReferralCode(ctx, *input.ReferenceCode)
			if err != nil {
				if errors.Is(err, domainerrors.ErrNotFound) {
					return nil, domainerrors.ErrInvalidReferenceCode
				}
				return nil, err
			}
			defaults.ReferredBy = &referrer.ReferralCode
		}
	} else {
		defaults = entities.UserDefaults{
			ReferralCode:  existing.ReferralCode,
			PaymentStatus: existing.PaymentStatus,
			ReferredBy:    existing.ReferredBy,
		}
	}

	if err := u.userRepo.Upsert(ctx, input, &defaults); err != nil {
		return nil, err
	}

	result := &entities.UpsertUserResult{
		Created:      created,
		Message:      "User updated",
		ReferralCode: defaults.ReferralCode,
		ReferredBy:   defaults.ReferredBy,
	}
	if created {
		result.Message = "User created"
	}
	return result, nil
}

// GetUser returns a member's profile
func (u *UserUsecase) GetUser(ctx context.Context, firebaseUID string) (*entities.User, error) {
	user, err := u.userRepo.GetByUID(ctx, firebaseUID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// uniqueReferralCode draws codes until one is free. The code space is
// large enough that collisions are rare; the loop exists for the day
// they are not.
func (u *UserUsecase) uniqueReferralCode(ctx context.Context) (string, error) {
	for {
		code, err := u.generateCode()
		if err != nil {
			return "", err
		}
		exists, err := u.userRepo.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}
