package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"growline.backend/internal/domain/entities"
	"growline.backend/pkg/utils"
)

func strPtr(s string) *string {
	return &s
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByUID(ctx context.Context, firebaseUID string) (*entities.User, error) {
	args := m.Called(ctx, firebaseUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByReferralCode(ctx context.Context, code string) (*entities.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, input *entities.UpsertUserInput, defaults *entities.UserDefaults) error {
	args := m.Called(ctx, input, defaults)
	return args.Error(0)
}

func (m *MockUserRepository) ListByReferredBy(ctx context.Context, codes []string) ([]*entities.User, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// Mock PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) GetOrCreate(ctx context.Context, firebaseUID string, seed []entities.Transaction) (*entities.PaymentRecord, error) {
	args := m.Called(ctx, firebaseUID, seed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaymentRecord), args.Error(1)
}

// Mock AdminPaymentRepository
type MockAdminPaymentRepository struct {
	mock.Mock
}

func (m *MockAdminPaymentRepository) ListByUID(ctx context.Context, firebaseUID string) ([]entities.Transaction, error) {
	args := m.Called(ctx, firebaseUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Transaction), args.Error(1)
}

// Mock WithdrawalRepository
type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) Create(ctx context.Context, req *entities.WithdrawalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockWithdrawalRepository) ListByUID(ctx context.Context, firebaseUID string, pagination utils.PaginationParams) ([]*entities.WithdrawalRequest, int64, error) {
	args := m.Called(ctx, firebaseUID, pagination)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.WithdrawalRequest), args.Get(1).(int64), args.Error(2)
}
