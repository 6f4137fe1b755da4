package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WithdrawalCollection holds withdrawal requests in the admin database.
const WithdrawalCollection = "admin_withdrawal_requests"

// Withdrawal is the persistence shape of a withdrawal request. Requests
// are append-only; processing happens out of band.
type Withdrawal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FirebaseUID string             `bson:"firebase_uid"`
	Name        *string            `bson:"name"`
	Amount      float64            `bson:"amount"`
	RequestedAt time.Time          `bson:"requested_at"`
}
