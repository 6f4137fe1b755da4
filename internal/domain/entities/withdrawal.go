package entities

import "time"

// WithdrawalRequest is an append-only payout request. Name is a
// snapshot of the member's name at submission time; the record has no
// lifecycle beyond creation in this service.
type WithdrawalRequest struct {
	ID          string    `json:"id"`
	FirebaseUID string    `json:"firebase_uid"`
	Name        *string   `json:"name"`
	Amount      float64   `json:"amount"`
	RequestedAt time.Time `json:"requested_at"`
}

// CreateWithdrawalInput is the submission payload.
type CreateWithdrawalInput struct {
	FirebaseUID string  `json:"firebase_uid" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}
