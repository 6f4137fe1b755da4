package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentCollection holds per-user payment records in the users database.
const PaymentCollection = "user_payments"

// AdminPaymentCollection holds admin-recorded payment entries in the
// admin database.
const AdminPaymentCollection = "admin_payments"

// Transaction is a single payment entry inside a user's record.
type Transaction struct {
	Amount     float64   `bson:"amount"`
	Note       string    `bson:"note"`
	RecordedAt time.Time `bson:"recorded_at"`
	RecordedBy string    `bson:"recorded_by"`
}

// PaymentRecord is the persistence shape of a user's payment document.
type PaymentRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirebaseUID  string             `bson:"firebase_uid"`
	Transactions []Transaction      `bson:"transactions"`
	LastUpdated  time.Time          `bson:"last_updated"`
}

// AdminPayment is a payment entry recorded by an admin against a user.
type AdminPayment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FirebaseUID string             `bson:"firebase_uid"`
	Amount      float64            `bson:"amount"`
	Note        string             `bson:"note"`
	RecordedAt  time.Time          `bson:"recorded_at"`
	RecordedBy  string             `bson:"recorded_by"`
}
