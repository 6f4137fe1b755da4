package repositories

import (
	"context"

	"growline.backend/internal/domain/entities"
	"growline.backend/pkg/utils"
)

// WithdrawalRepository defines operations against
// admin_withdrawal_requests. The collection is append-only from this
// service's point of view.
type WithdrawalRepository interface {
	// Create appends the request and fills in its generated ID.
	Create(ctx context.Context, req *entities.WithdrawalRequest) error
	// ListByUID returns a page of the member's submitted requests,
	// newest first, along with the total count. A zero limit returns
	// everything.
	ListByUID(ctx context.Context, firebaseUID string, pagination utils.PaginationParams) ([]*entities.WithdrawalRequest, int64, error)
}
