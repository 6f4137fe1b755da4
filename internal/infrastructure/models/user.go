package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCollection is the collection holding user profiles.
const UserCollection = "user_data"

// BankDetails mirrors the bank_details subdocument.
type BankDetails struct {
	BankName      *string `bson:"bank_name"`
	AccountNumber *string `bson:"account_number"`
	IFSCCode      *string `bson:"ifsc_code"`
	BranchName    *string `bson:"branch_name"`
}

// User is the persistence shape of a user profile document.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FirebaseUID   string             `bson:"firebase_uid"`
	Name          *string            `bson:"name"`
	Email         *string            `bson:"email"`
	Sex           *string            `bson:"sex"`
	State         *string            `bson:"state"`
	District      *string            `bson:"district"`
	PinCode       *string            `bson:"pin_code"`
	ReferralCode  string             `bson:"referral_code"`
	ReferredBy    *string            `bson:"referred_by"`
	BankDetails   *BankDetails       `bson:"bank_details"`
	PaymentStatus bool               `bson:"payment_status"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}
