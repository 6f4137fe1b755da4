package repositories

import (
	"context"

	"growline.backend/internal/domain/entities"
)

// PaymentRepository defines operations against user_payments.
type PaymentRepository interface {
	// GetOrCreate returns the member's payment record. When the record
	// does not exist yet it is created atomically with the given seed
	// transactions; a concurrent first read yields one document either
	// way.
	GetOrCreate(ctx context.Context, firebaseUID string, seed []entities.Transaction) (*entities.PaymentRecord, error)
}

// AdminPaymentRepository reads the admin-side payment ledger
// (admin_payments). Entries are written by the admin application; this
// service only consumes them when seeding a member's payment record.
type AdminPaymentRepository interface {
	// ListByUID returns the admin-recorded entries for a member, oldest
	// first. An unknown uid yields an empty list.
	ListByUID(ctx context.Context, firebaseUID string) ([]entities.Transaction, error)
}
