package repositories

import (
	"context"

	"growline.backend/internal/domain/entities"
)

// UserRepository defines member document operations against user_data.
type UserRepository interface {
	// GetByUID returns the member keyed by firebase uid, or ErrNotFound.
	GetByUID(ctx context.Context, firebaseUID string) (*entities.User, error)
	// GetByReferralCode resolves a referral code to its owner, or
	// ErrNotFound when no member carries that code.
	GetByReferralCode(ctx context.Context, code string) (*entities.User, error)
	// ReferralCodeExists reports whether any member already owns code.
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
	// Upsert applies the payload with a document-level upsert: payload
	// fields are $set, defaults are $setOnInsert. Atomicity is whatever
	// the store natively provides for upserts.
	Upsert(ctx context.Context, input *entities.UpsertUserInput, defaults *entities.UserDefaults) error
	// ListByReferredBy returns every member whose referred_by matches
	// one of the given referral codes, oldest first.
	ListByReferredBy(ctx context.Context, codes []string) ([]*entities.User, error)
}
