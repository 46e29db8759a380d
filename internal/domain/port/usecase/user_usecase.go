package usecase

import (
	"context"
)

// AdWatchResult reports the state of the daily ad counter after an update
type AdWatchResult struct {
	UID             string `json:"uid"`
	ProjectID       string `json:"projectId"`
	AdsWatchedToday int    `json:"adsWatchedToday"`
	LastAdWatchDate string `json:"lastAdWatchDate"`
}

// SpinWheelResult reports the spin-wheel counters after a reset check
type SpinWheelResult struct {
	UID               string `json:"uid"`
	ProjectID         string `json:"projectId"`
	FreeSpinsToday    int    `json:"freeSpinsToday"`
	AdSpinsToday      int    `json:"adSpinsToday"`
	LastSpinWheelDate string `json:"lastSpinWheelDate"`
	WasReset          bool   `json:"wasReset"`
}

// UserUseCase defines the authenticated per-user operations of the callable
// API surface. Every operation resolves the caller's home shard first and
// validates input before any shard access.
type UserUseCase interface {
	// RecordAdWatch increments the user's daily ad-watch counter against the
	// server-side date, resetting it first when the calendar day has advanced.
	// The reset happens exactly once per day boundary.
	RecordAdWatch(ctx context.Context, shardID, uid string) (*AdWatchResult, error)

	// ResetSpinWheel resets the user's daily spin counters when the server-side
	// date has advanced; a same-day call leaves the counters untouched.
	ResetSpinWheel(ctx context.Context, shardID, uid string) (*SpinWheelResult, error)

	// CheckAdminStatus reports whether the user carries the admin flag. A
	// missing user document reports false rather than an error.
	CheckAdminStatus(ctx context.Context, shardID, uid string) (bool, error)

	// GetCoins retrieves the user's current coin balance
	GetCoins(ctx context.Context, shardID, uid string) (int64, error)
}
