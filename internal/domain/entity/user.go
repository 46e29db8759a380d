package entity

import (
	"time"

	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
)

// ReferralCodeLength is the fixed length of user referral codes
const ReferralCodeLength = 8

// DefaultFreeSpinsPerDay is the number of free spin-wheel spins granted on a new day
const DefaultFreeSpinsPerDay = 3

// User represents a rewards-app user stored in one shard's users collection
type User struct {
	UID                     string // Shard-local document identifier
	coins                   int64  // Coin balance, never negative (private)
	ReferralCode            string // 8-character token, unique within the shard
	ReferredBy              string // Referral code of the referrer, empty if none
	ReferralBonusAwarded    bool   // Transitions false -> true exactly once
	AdsWatchedToday         int
	LastAdWatchDate         string // Server-side calendar date, YYYY-MM-DD
	SpinWheelFreeSpinsToday int
	SpinWheelAdSpinsToday   int
	LastSpinWheelDate       string // Server-side calendar date, YYYY-MM-DD
	IsAdmin                 bool
	FCMToken                string // Notification token, empty when unregistered
	ProjectID               string // Identifier of the user's home shard
	DailySyncStartTime      int64  // Epoch millis marking the sync window start, 0 if unset
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// NewUser creates a new user homed in the given shard
func NewUser(uid, projectID, referralCode string, timeProvider coreport.TimeProvider) (*User, error) {
	if uid == "" {
		return nil, errs.ErrInvalidRequest
	}
	if projectID == "" {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &User{
		UID:                     uid,
		ProjectID:               projectID,
		ReferralCode:            referralCode,
		SpinWheelFreeSpinsToday: DefaultFreeSpinsPerDay,
		CreatedAt:               now,
		UpdatedAt:               now,
	}, nil
}

// Coins returns the current coin balance
func (u *User) Coins() int64 {
	return u.coins
}

// SetCoins updates the balance directly (for internal use, like store adapters)
func (u *User) SetCoins(coins int64) {
	u.coins = coins
}

// CanDeduct checks if the user has enough coins for a deduction
func (u *User) CanDeduct(amount int64) bool {
	return u.coins >= amount
}

// ApplyCredit adds the amount to the coin balance
func (u *User) ApplyCredit(amount int64, timeProvider coreport.TimeProvider) {
	u.coins += amount
	u.UpdatedAt = timeProvider.Now()
}

// ApplyDebit subtracts the amount from the coin balance if sufficient coins exist.
// Returns an error if the balance would go negative.
func (u *User) ApplyDebit(amount int64, timeProvider coreport.TimeProvider) error {
	if u.coins < amount {
		return errs.ErrInsufficientCoins
	}

	u.coins -= amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// RecordAdWatch registers one watched ad against the given server-side date.
// A date change resets the counter so a day's count is never carried over,
// and the reset happens at most once per calendar day.
func (u *User) RecordAdWatch(today string, timeProvider coreport.TimeProvider) {
	if u.LastAdWatchDate != today {
		u.AdsWatchedToday = 1
		u.LastAdWatchDate = today
	} else {
		u.AdsWatchedToday++
	}
	u.UpdatedAt = timeProvider.Now()
}

// ResetSpinWheel resets the daily spin counters when the server-side date has
// advanced. Returns true when a reset was performed; a same-day call is a no-op.
func (u *User) ResetSpinWheel(today string, freeSpins int, timeProvider coreport.TimeProvider) bool {
	if u.LastSpinWheelDate == today {
		return false
	}

	u.SpinWheelFreeSpinsToday = freeSpins
	u.SpinWheelAdSpinsToday = 0
	u.LastSpinWheelDate = today
	u.UpdatedAt = timeProvider.Now()
	return true
}

// AwardReferralBonus credits the referred-user bonus and flips the awarded flag.
// Returns ErrAlreadyAwarded when the flag is already set, making repeated
// reconciliation passes idempotent.
func (u *User) AwardReferralBonus(amount int64, timeProvider coreport.TimeProvider) error {
	if u.ReferralBonusAwarded {
		return errs.ErrAlreadyAwarded
	}

	u.coins += amount
	u.ReferralBonusAwarded = true
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// WithinSyncWindow reports whether the user's daily sync window is still active
// at the given instant. The window opens at DailySyncStartTime and stays active
// for the given duration.
func (u *User) WithinSyncWindow(now time.Time, window time.Duration) bool {
	if u.FCMToken == "" || u.DailySyncStartTime == 0 {
		return false
	}

	start := time.UnixMilli(u.DailySyncStartTime)
	elapsed := now.Sub(start)
	return elapsed >= 0 && elapsed < window
}
