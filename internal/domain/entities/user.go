package entities

import "time"

// BankDetails holds a member's payout account information.
type BankDetails struct {
	BankName      *string `json:"bank_name"`
	AccountNumber *string `json:"account_number"`
	IFSCCode      *string `json:"ifsc_code"`
	BranchName    *string `json:"branch_name"`
}

// User represents a registered member. FirebaseUID is the primary key;
// ReferralCode is system-generated and immutable after creation.
// ReferredBy holds the referral code of the member who recruited this
// one, or nil for members who joined without a reference.
type User struct {
	FirebaseUID   string       `json:"firebase_uid"`
	Name          *string      `json:"name"`
	Email         *string      `json:"email"`
	Sex           *string      `json:"sex"`
	State         *string      `json:"state"`
	District      *string      `json:"district"`
	PinCode       *string      `json:"pin_code"`
	ReferralCode  string       `json:"referral_code"`
	ReferredBy    *string      `json:"referred_by"`
	BankDetails   *BankDetails `json:"bank_details"`
	PaymentStatus bool         `json:"payment_status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// UpsertUserInput is the registration/update payload. Profile fields
// are optional; absent fields overwrite as null, matching the
// document-level upsert the API has always performed. ReferenceCode is
// consumed during first registration only and never stored verbatim.
type UpsertUserInput struct {
	FirebaseUID   string       `json:"firebase_uid" binding:"required"`
	Name          *string      `json:"name"`
	Email         *string      `json:"email" binding:"omitempty,email"`
	ReferenceCode *string      `json:"reference_code"`
	Sex           *string      `json:"sex"`
	State         *string      `json:"state"`
	District      *string      `json:"district"`
	PinCode       *string      `json:"pin_code"`
	BankDetails   *BankDetails `json:"bank_details"`
}

// UserDefaults carries the set-on-insert values for an upsert: the
// generated referral code, the payment flag, and the resolved referrer
// code. For an existing user these echo the stored values so an update
// can never overwrite them.
type UserDefaults struct {
	ReferralCode  string
	PaymentStatus bool
	ReferredBy    *string
}

// UpsertUserResult is returned to the client after an upsert.
type UpsertUserResult struct {
	Created      bool    `json:"-"`
	Message      string  `json:"message"`
	ReferralCode string  `json:"referral_code"`
	ReferredBy   *string `json:"referred_by"`
}
