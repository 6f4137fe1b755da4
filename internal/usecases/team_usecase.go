package usecases

import (
	"context"
	"errors"

	"growline.backend/internal/domain/entities"
	domainerrors "growline.backend/internal/domain/errors"
	"growline.backend/internal/domain/repositories"
)

// TeamUsecase assembles a member's downline
type TeamUsecase struct {
	userRepo repositories.UserRepository
}

// NewTeamUsecase creates a new team usecase
func NewTeamUsecase(userRepo repositories.UserRepository) *TeamUsecase {
	return &TeamUsecase{userRepo: userRepo}
}

// GetTeam walks the referral tree three levels down, one query per
// level. Each level is looked up by the referral codes collected from
// the level above; an empty level short-circuits the levels below it.
func (u *TeamUsecase) GetTeam(ctx context.Context, firebaseUID string) (*entities.Team, error) {
	root, err := u.userRepo.GetByUID(ctx, firebaseUID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, err
	}

	team := &entities.Team{
		FirebaseUID:  root.FirebaseUID,
		ReferralCode: root.ReferralCode,
		Level1:       []entities.TeamMember{},
		Level2:       []entities.TeamMember{},
		Level3:       []entities.TeamMember{},
	}

	codes := []string{root.ReferralCode}
	levels := []*[]entities.TeamMember{&team.Level1, &team.Level2, &team.Level3}

	for _, level := range levels {
		members, err := u.userRepo.ListByReferredBy(ctx, codes)
		if err != nil {
			return nil, err
		}
		if len(members) == 0 {
			break
		}

		codes = make([]string, 0, len(members))
		for _, m := range members {
			*level = append(*level, entities.TeamMember{
				FirebaseUID:   m.FirebaseUID,
				Name:          m.Name,
				ReferralCode:  m.ReferralCode,
				PaymentStatus: m.PaymentStatus,
				JoinedAt:      m.CreatedAt,
			})
			codes = append(codes, m.ReferralCode)
		}
	}

	team.Counts = entities.TeamCounts{
		Level1: len(team.Level1),
		Level2: len(team.Level2),
		Level3: len(team.Level3),
	}
	team.Counts.Total = team.Counts.Level1 + team.Counts.Level2 + team.Counts.Level3

	return team, nil
}
