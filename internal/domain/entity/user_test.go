package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	coremocks "github.com/rewardly-app/rewards-processor/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("user-1", "rewardly-prod01", "ABCD1234", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.UID)
		assert.Equal(t, "rewardly-prod01", user.ProjectID)
		assert.Equal(t, "ABCD1234", user.ReferralCode)
		assert.Equal(t, int64(0), user.Coins())
		assert.Equal(t, DefaultFreeSpinsPerDay, user.SpinWheelFreeSpinsToday)
		assert.False(t, user.ReferralBonusAwarded)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Empty UID should return error", func(t *testing.T) {
		user, err := NewUser("", "rewardly-prod01", "ABCD1234", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, user)
	})

	t.Run("Empty project ID should return error", func(t *testing.T) {
		user, err := NewUser("user-1", "", "ABCD1234", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, user)
	})
}

func TestUserCoins(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("ApplyCredit adds to balance", func(t *testing.T) {
		user := &User{UID: "user-1"}
		user.SetCoins(100)

		user.ApplyCredit(500, mockTime)

		assert.Equal(t, int64(600), user.Coins())
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("ApplyDebit subtracts from balance", func(t *testing.T) {
		user := &User{UID: "user-1"}
		user.SetCoins(1000)

		err := user.ApplyDebit(400, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(600), user.Coins())
	})

	t.Run("ApplyDebit rejects overdraw", func(t *testing.T) {
		user := &User{UID: "user-1"}
		user.SetCoins(300)

		err := user.ApplyDebit(900, mockTime)

		assert.ErrorIs(t, err, errs.ErrInsufficientCoins)
		assert.Equal(t, int64(300), user.Coins(), "balance must be untouched on rejection")
	})

	t.Run("CanDeduct boundary", func(t *testing.T) {
		user := &User{UID: "user-1"}
		user.SetCoins(400)

		assert.True(t, user.CanDeduct(400))
		assert.False(t, user.CanDeduct(401))
	})
}

func TestUserRecordAdWatch(t *testing.T) {
	fixedTime := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("New day starts counter at one", func(t *testing.T) {
		user := &User{
			UID:             "user-1",
			AdsWatchedToday: 7,
			LastAdWatchDate: "2025-06-01",
		}

		user.RecordAdWatch("2025-06-02", mockTime)

		assert.Equal(t, 1, user.AdsWatchedToday, "stale count must not carry over")
		assert.Equal(t, "2025-06-02", user.LastAdWatchDate)
	})

	t.Run("Same day increments", func(t *testing.T) {
		user := &User{
			UID:             "user-1",
			AdsWatchedToday: 3,
			LastAdWatchDate: "2025-06-02",
		}

		user.RecordAdWatch("2025-06-02", mockTime)

		assert.Equal(t, 4, user.AdsWatchedToday)
	})

	t.Run("First ever watch", func(t *testing.T) {
		user := &User{UID: "user-1"}

		user.RecordAdWatch("2025-06-02", mockTime)

		assert.Equal(t, 1, user.AdsWatchedToday)
		assert.Equal(t, "2025-06-02", user.LastAdWatchDate)
	})
}

func TestUserResetSpinWheel(t *testing.T) {
	fixedTime := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("New day resets counters", func(t *testing.T) {
		user := &User{
			UID:                     "user-1",
			SpinWheelFreeSpinsToday: 0,
			SpinWheelAdSpinsToday:   5,
			LastSpinWheelDate:       "2025-06-01",
		}

		reset := user.ResetSpinWheel("2025-06-02", 3, mockTime)

		assert.True(t, reset)
		assert.Equal(t, 3, user.SpinWheelFreeSpinsToday)
		assert.Equal(t, 0, user.SpinWheelAdSpinsToday)
		assert.Equal(t, "2025-06-02", user.LastSpinWheelDate)
	})

	t.Run("Same day is a no-op", func(t *testing.T) {
		user := &User{
			UID:                     "user-1",
			SpinWheelFreeSpinsToday: 1,
			SpinWheelAdSpinsToday:   2,
			LastSpinWheelDate:       "2025-06-02",
		}

		reset := user.ResetSpinWheel("2025-06-02", 3, mockTime)

		assert.False(t, reset)
		assert.Equal(t, 1, user.SpinWheelFreeSpinsToday, "spent spins must survive repeated calls")
		assert.Equal(t, 2, user.SpinWheelAdSpinsToday)
	})

	t.Run("Reset fires at most once per day", func(t *testing.T) {
		user := &User{
			UID:               "user-1",
			LastSpinWheelDate: "2025-06-01",
		}

		assert.True(t, user.ResetSpinWheel("2025-06-02", 3, mockTime))
		user.SpinWheelFreeSpinsToday = 2 // one spin spent

		assert.False(t, user.ResetSpinWheel("2025-06-02", 3, mockTime))
		assert.Equal(t, 2, user.SpinWheelFreeSpinsToday)
	})
}

func TestUserAwardReferralBonus(t *testing.T) {
	fixedTime := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Awards once and flips flag", func(t *testing.T) {
		user := &User{UID: "user-1", ReferredBy: "ABCD1234"}
		user.SetCoins(100)

		err := user.AwardReferralBonus(5000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(5100), user.Coins())
		assert.True(t, user.ReferralBonusAwarded)
	})

	t.Run("Second award is rejected", func(t *testing.T) {
		user := &User{UID: "user-1", ReferredBy: "ABCD1234"}
		user.SetCoins(0)

		require.NoError(t, user.AwardReferralBonus(5000, mockTime))
		err := user.AwardReferralBonus(5000, mockTime)

		assert.ErrorIs(t, err, errs.ErrAlreadyAwarded)
		assert.Equal(t, int64(5000), user.Coins(), "bonus must never double-pay")
	})
}

func TestUserWithinSyncWindow(t *testing.T) {
	window := 12 * time.Hour
	start := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	t.Run("Inside window", func(t *testing.T) {
		user := &User{
			UID:                "user-1",
			FCMToken:           "token-1",
			DailySyncStartTime: start.UnixMilli(),
		}

		assert.True(t, user.WithinSyncWindow(start.Add(6*time.Hour), window))
	})

	t.Run("Window boundary is exclusive", func(t *testing.T) {
		user := &User{
			UID:                "user-1",
			FCMToken:           "token-1",
			DailySyncStartTime: start.UnixMilli(),
		}

		assert.True(t, user.WithinSyncWindow(start, window))
		assert.False(t, user.WithinSyncWindow(start.Add(window), window))
	})

	t.Run("Start in the future", func(t *testing.T) {
		user := &User{
			UID:                "user-1",
			FCMToken:           "token-1",
			DailySyncStartTime: start.UnixMilli(),
		}

		assert.False(t, user.WithinSyncWindow(start.Add(-time.Minute), window))
	})

	t.Run("No token or no start time", func(t *testing.T) {
		noToken := &User{UID: "user-1", DailySyncStartTime: start.UnixMilli()}
		noStart := &User{UID: "user-2", FCMToken: "token-2"}

		assert.False(t, noToken.WithinSyncWindow(start.Add(time.Hour), window))
		assert.False(t, noStart.WithinSyncWindow(start.Add(time.Hour), window))
	})
}
