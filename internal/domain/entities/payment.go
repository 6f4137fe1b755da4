package entities

import "time"

// Transaction is a single credited payment entry. Entries originate on
// the admin side and are denormalized into the member's payment record.
type Transaction struct {
	Amount     float64   `json:"amount"`
	Note       string    `json:"note"`
	RecordedAt time.Time `json:"recorded_at"`
	RecordedBy string    `json:"recorded_by"`
}

// PaymentRecord is a member's payment document. It is created lazily on
// the first read; Transactions holds the ordered entries known at that
// time plus anything stored since.
type PaymentRecord struct {
	FirebaseUID  string        `json:"firebase_uid"`
	Transactions []Transaction `json:"transactions"`
	LastUpdated  time.Time     `json:"last_updated"`
}
