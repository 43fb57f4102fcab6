package achievement_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/propelhq/propel-be/internal/domain"
	"github.com/propelhq/propel-be/internal/mocks"
	"github.com/propelhq/propel-be/internal/repository"
	"github.com/propelhq/propel-be/internal/service/achievement"
)

func proposalBadges() []domain.Badge {
	return []domain.Badge{
		{ID: 1, Name: "First Proposal", Category: domain.ActivityProposalCreation, RequiredCount: 1},
		{ID: 2, Name: "Proposal Pro", Category: domain.ActivityProposalCreation, RequiredCount: 5},
		{ID: 3, Name: "Proposal Master", Category: domain.ActivityProposalCreation, RequiredCount: 10},
	}
}

func upsertResult(userID, badgeID, count int64, inserted bool) *repository.UpsertResult {
	return &repository.UpsertResult{
		Achievement: domain.UserAchievement{
			UserID:  userID,
			BadgeID: badgeID,
			Count:   count,
		},
		Inserted: inserted,
	}
}

func TestCheckAchievements_ThresholdCrossing(t *testing.T) {
	badgeRepo := new(mocks.BadgeRepository)
	activityRepo := new(mocks.ActivityRepository)
	achievementRepo := new(mocks.AchievementRepository)
	svc := achievement.NewService(badgeRepo, activityRepo, achievementRepo, new(mocks.UserRepository))

	ctx := context.Background()
	userID := int64(7)

	// Fifth proposal: badge 1 already earned, badge 2 unlocks, badge 3 stays
	// out of reach.
	badgeRepo.On("GetByCategory", ctx, domain.ActivityProposalCreation).Return(proposalBadges(), nil).Once()
	activityRepo.On("CountByUserAndType", ctx, userID, domain.ActivityProposalCreation).Return(int64(5), nil).Once()
	achievementRepo.On("GetByUser", ctx, userID).Return([]domain.UserAchievement{
		{UserID: userID, BadgeID: 1, Count: 4},
	}, nil).Once()
	achievementRepo.On("Upsert", ctx, userID, int64(1), int64(5)).Return(upsertResult(userID, 1, 5, false), nil).Once()
	achievementRepo.On("Upsert", ctx, userID, int64(2), int64(5)).Return(upsertResult(userID, 2, 5, true), nil).Once()

	unlocked, err := svc.CheckAchievements(ctx, userID, domain.ActivityProposalCreation)

	assert.NoError(t, err)
	assert.Len(t, unlocked, 1)
	assert.Equal(t, int64(2), unlocked[0].ID)
	achievementRepo.AssertNotCalled(t, "Upsert", ctx, userID, int64(3), mock.Anything)
	badgeRepo.AssertExpectations(t)
	achievementRepo.AssertExpectations(t)
}

func TestCheckAchievements_MultiTierUnlock(t *testing.T) {
	badgeRepo := new(mocks.BadgeRepository)
	activityRepo := new(mocks.ActivityRepository)
	achievementRepo := new(mocks.AchievementRepository)
	svc := achievement.NewService(badgeRepo, activityRepo, achievementRepo, new(mocks.UserRepository))

	ctx := context.Background()
	userID := int64(7)

	// Backfilled log: first evaluation sees count 10 with nothing earned yet,
	// so every tier unlocks at once.
	badgeRepo.On("GetByCategory", ctx, domain.ActivityProposalCreation).Return(proposalBadges(), nil).Once()
	activityRepo.On("CountByUserAndType", ctx, userID, domain.ActivityProposalCreation).Return(int64(10), nil).Once()
	achievementRepo.On("GetByUser", ctx, userID).Return([]domain.UserAchievement{}, nil).Once()
	for _, badgeID := range []int64{1, 2, 3} {
		achievementRepo.On("Upsert", ctx, userID, badgeID, int64(10)).Return(upsertResult(userID, badgeID, 10, true), nil).Once()
	}

	unlocked, err := svc.CheckAchievements(ctx, userID, domain.ActivityProposalCreation)

	assert.NoError(t, err)
	assert.Len(t, unlocked, 3)
	assert.Equal(t, int64(1), unlocked[0].ID)
	assert.Equal(t, int64(2), unlocked[1].ID)
	assert.Equal(t, int64(3), unlocked[2].ID)
	achievementRepo.AssertExpectations(t)
}

func TestCheckAchievements_Idempotent(t *testing.T) {
	badgeRepo := new(mocks.BadgeRepository)
	activityRepo := new(mocks.ActivityRepository)
	achievementRepo := new(mocks.AchievementRepository)
	svc := achievement.NewService(badgeRepo, activityRepo, achievementRepo, new(mocks.UserRepository))

	ctx := context.Background()
	userID := int64(7)

	// Re-running with an unchanged log refreshes the earned row but reports
	// nothing new.
	badges := proposalBadges()[:1]
	badgeRepo.On("GetByCategory", ctx, domain.ActivityProposalCreation).Return(badges, nil).Twice()
	activityRepo.On("CountByUserAndType", ctx, userID, domain.ActivityProposalCreation).Return(int64(1), nil).Twice()

	achievementRepo.On("GetByUser", ctx, userID).Return([]domain.UserAchievement{}, nil).Once()
	achievementRepo.On("Upsert", ctx, userID, int64(1), int64(1)).Return(upsertResult(userID, 1, 1, true), nil).Once()

	first, err := svc.CheckAchievements(ctx, userID, domain.ActivityProposalCreation)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	achievementRepo.On("GetByUser", ctx, userID).Return([]domain.UserAchievement{
		{UserID: userID, BadgeID: 1, Count: 1},
	}, nil).Once()
	achievementRepo.On("Upsert", ctx, userID, int64(1), int64(1)).Return(upsertResult(userID, 1, 1, false), nil).Once()

	second, err := svc.CheckAchievements(ctx, userID, domain.ActivityProposalCreation)
	assert.NoError(t, err)
	assert.Empty(t, second)
	achievementRepo.AssertExpectations(t)
}

func TestCheckAchievements_ConcurrentInsertNotReported(t *testing.T) {
	badgeRepo := new(mocks.BadgeRepository)
	activityRepo := new(mocks.ActivityRepository)
	achievementRepo := new(mocks.AchievementRepository)
	svc := achievement.NewService(badgeRepo, activityRepo, achievementRepo, new(mocks.UserRepository))

	ctx := context.Background()
	userID := int64(7)

	// Another evaluation won the insert between our read and our upsert: the
	// row comes back as an update, so this caller must not announce it.
	badgeRepo.On("GetByCategory", ctx, domain.ActivityProposalCreation).Return(proposalBadges()[:1], nil).Once()
	activityRepo.On("CountByUserAndType", ctx, userID, domain.ActivityProposalCreation).Return(int64(1), nil).Once()
	achievementRepo.On("GetByUser", ctx, userID).Return([]domain.UserAchievement{}, nil).Once()
	achievementRepo.On("Upsert", ctx, userID, int64(1), int64(1)).Return(upsertResult(userID, 1, 1, false), nil).Once()

	unlocked, err := svc.CheckAchievements(ctx, userID, domain.ActivityProposalCreation)

	assert.NoError(t, err)
	assert.Empty(t, unlocked)
}

func TestCheckAchievements_EmptyCategory(t *testing.T) {
	badgeRepo := new(mocks.BadgeRepository)
	activityRepo := new(mocks.ActivityRepository)
	achievementRepo := new(mocks.AchievementRepository)
	svc := achievement.NewService(badgeRepo, activityRepo, achievementRepo, new(mocks.UserRepository))

	ctx := context.Background()

	badgeRepo.On("GetByCategory", ctx, domain.ActivityCRMIntegration).Return([]domain.Badge{}, nil).Once()

	unlocked, err := svc.CheckAchievements(ctx, int64(7), domain.ActivityCRMIntegration)

	assert.NoError(t, err)
	assert.Empty(t, unlocked)
	activityRepo.AssertNotCalled(t, "CountByUserAndType", mock.Anything, mock.Anything, mock.Anything)
	achievementRepo.AssertNotCalled(t, "GetByUser", mock.Anything, mock.Anything)
}

func TestCheckAchievements_RepoError(t *testing.T) {
	badgeRepo := new(mocks.BadgeRepository)
	activityRepo := new(mocks.ActivityRepository)
	achievementRepo := new(mocks.AchievementRepository)
	svc := achievement.NewService(badgeRepo, activityRepo, achievementRepo, new(mocks.UserRepository))

	ctx := context.Background()
	badgeRepo.On("GetByCategory", ctx, domain.ActivityProposalCreation).Return(nil, errors.New("db down")).Once()

	unlocked, err := svc.CheckAchievements(ctx, int64(7), domain.ActivityProposalCreation)

	assert.Error(t, err)
	assert.Nil(t, unlocked)
}

func TestListUserAchievements_UnknownUser(t *testing.T) {
	badgeRepo := new(mocks.BadgeRepository)
	activityRepo := new(mocks.ActivityRepository)
	achievementRepo := new(mocks.AchievementRepository)
	userRepo := new(mocks.UserRepository)
	svc := achievement.NewService(badgeRepo, activityRepo, achievementRepo, userRepo)

	ctx := context.Background()
	userRepo.On("GetByID", ctx, int64(99)).Return(nil, nil).Once()

	achievements, err := svc.ListUserAchievements(ctx, int64(99))

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, achievements)
	achievementRepo.AssertNotCalled(t, "GetByUserWithBadges", mock.Anything, mock.Anything)
}

func TestListUserAchievements(t *testing.T) {
	badgeRepo := new(mocks.BadgeRepository)
	activityRepo := new(mocks.ActivityRepository)
	achievementRepo := new(mocks.AchievementRepository)
	userRepo := new(mocks.UserRepository)
	svc := achievement.NewService(badgeRepo, activityRepo, achievementRepo, userRepo)

	ctx := context.Background()
	userRepo.On("GetByID", ctx, int64(7)).Return(&domain.User{ID: 7, Username: "demo"}, nil).Once()
	achievementRepo.On("GetByUserWithBadges", ctx, int64(7)).Return([]domain.UserAchievementWithBadge{
		{UserAchievement: domain.UserAchievement{UserID: 7, BadgeID: 1, Count: 3}},
	}, nil).Once()

	achievements, err := svc.ListUserAchievements(ctx, int64(7))

	assert.NoError(t, err)
	assert.Len(t, achievements, 1)
}

func TestProgressPercentCap(t *testing.T) {
	a := domain.UserAchievementWithBadge{
		UserAchievement: domain.UserAchievement{Count: 25},
		Badge:           domain.Badge{RequiredCount: 10},
	}
	assert.Equal(t, int64(100), a.ProgressPercent())

	a.Count = 5
	assert.Equal(t, int64(50), a.ProgressPercent())
}
