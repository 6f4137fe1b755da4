package referral

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet is the character set referral codes are drawn from.
// Uppercase plus digits keeps codes readable when shared over chat or voice.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the number of characters in a referral code.
const Length = 10

// NewCode generates a random referral code. Uniqueness is not guaranteed
// here; callers must check the store and retry on collision.
func NewCode() (string, error) {
	return gonanoid.Generate(Alphabet, Length)
}
