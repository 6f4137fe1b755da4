package handlers

import (
	"context"
	"sort"
	"time"

	"growline.backend/internal/domain/entities"
	domainerrors "growline.backend/internal/domain/errors"
	"growline.backend/pkg/utils"
)

// userRepoStub keeps users in memory, keyed by firebase uid.
type userRepoStub struct {
	byUID map[string]*entities.User
}

func newUserRepoStub(users ...*entities.User) *userRepoStub {
	s := &userRepoStub{byUID: map[string]*entities.User{}}
	for _, u := range users {
		s.byUID[u.FirebaseUID] = u
	}
	return s
}

func (s *userRepoStub) GetByUID(_ context.Context, uid string) (*entities.User, error) {
	u, ok := s.byUID[uid]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) GetByReferralCode(_ context.Context, code string) (*entities.User, error) {
	for _, u := range s.byUID {
		if u.ReferralCode == code {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) ReferralCodeExists(_ context.Context, code string) (bool, error) {
	_, err := s.GetByReferralCode(context.Background(), code)
	return err == nil, nil
}

func (s *userRepoStub) Upsert(_ context.Context, input *entities.UpsertUserInput, defaults *entities.UserDefaults) error {
	u, ok := s.byUID[input.FirebaseUID]
	if !ok {
		u = &entities.User{FirebaseUID: input.FirebaseUID, CreatedAt: time.Now()}
		s.byUID[input.FirebaseUID] = u
	}
	u.Name = input.Name
	u.Email = input.Email
	u.Sex = input.Sex
	u.State = input.State
	u.District = input.District
	u.PinCode = input.PinCode
	u.BankDetails = input.BankDetails
	u.ReferralCode = defaults.ReferralCode
	u.PaymentStatus = defaults.PaymentStatus
	u.ReferredBy = defaults.ReferredBy
	u.UpdatedAt = time.Now()
	return nil
}

func (s *userRepoStub) ListByReferredBy(_ context.Context, codes []string) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range s.byUID {
		if u.ReferredBy == nil {
			continue
		}
		for _, code := range codes {
			if *u.ReferredBy == code {
				out = append(out, u)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// paymentRepoStub mimics the lazy create semantics of the real store.
type paymentRepoStub struct {
	records map[string]*entities.PaymentRecord
}

func newPaymentRepoStub() *paymentRepoStub {
	return &paymentRepoStub{records: map[string]*entities.PaymentRecord{}}
}

func (s *paymentRepoStub) GetOrCreate(_ context.Context, uid string, seed []entities.Transaction) (*entities.PaymentRecord, error) {
	if rec, ok := s.records[uid]; ok {
		return rec, nil
	}
	rec := &entities.PaymentRecord{
		FirebaseUID:  uid,
		Transactions: append([]entities.Transaction{}, seed...),
		LastUpdated:  time.Now(),
	}
	s.records[uid] = rec
	return rec, nil
}

type adminPaymentRepoStub struct {
	byUID map[string][]entities.Transaction
}

func (s *adminPaymentRepoStub) ListByUID(_ context.Context, uid string) ([]entities.Transaction, error) {
	return append([]entities.Transaction{}, s.byUID[uid]...), nil
}

// withdrawalRepoStub appends requests and lists them newest first.
type withdrawalRepoStub struct {
	byUID map[string][]*entities.WithdrawalRequest
	next  int
}

func newWithdrawalRepoStub() *withdrawalRepoStub {
	return &withdrawalRepoStub{byUID: map[string][]*entities.WithdrawalRequest{}}
}

func (s *withdrawalRepoStub) Create(_ context.Context, req *entities.WithdrawalRequest) error {
	s.next++
	req.ID = "wr-" + string(rune('0'+s.next))
	s.byUID[req.FirebaseUID] = append(s.byUID[req.FirebaseUID], req)
	return nil
}

func (s *withdrawalRepoStub) ListByUID(_ context.Context, uid string, pagination utils.PaginationParams) ([]*entities.WithdrawalRequest, int64, error) {
	stored := s.byUID[uid]
	out := make([]*entities.WithdrawalRequest, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}
	total := int64(len(out))
	if pagination.Limit > 0 {
		start := pagination.CalculateOffset()
		if start > len(out) {
			start = len(out)
		}
		end := start + pagination.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, total, nil
}

func strPtr(s string) *string {
	return &s
}
