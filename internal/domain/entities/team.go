package entities

import "time"

// TeamMember is the compact member shape returned by the team lookup.
type TeamMember struct {
	FirebaseUID   string    `json:"firebase_uid"`
	Name          *string   `json:"name"`
	ReferralCode  string    `json:"referral_code"`
	PaymentStatus bool      `json:"payment_status"`
	JoinedAt      time.Time `json:"joined_at"`
}

// Team holds up to three levels of downstream referrals. Level 1 are
// members recruited directly with the root member's referral code;
// level 2 were recruited by level 1; level 3 by level 2. Levels with no
// members are empty lists, never null.
type Team struct {
	FirebaseUID  string       `json:"firebase_uid"`
	ReferralCode string       `json:"referral_code"`
	Level1       []TeamMember `json:"level1"`
	Level2       []TeamMember `json:"level2"`
	Level3       []TeamMember `json:"level3"`
	Counts       TeamCounts   `json:"counts"`
}

// TeamCounts summarizes the size of each level.
type TeamCounts struct {
	Level1 int `json:"level1"`
	Level2 int `json:"level2"`
	Level3 int `json:"level3"`
	Total  int `json:"total"`
}
