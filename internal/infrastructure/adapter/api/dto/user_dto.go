package dto

// ProjectRequest carries the caller's home shard for per-user operations
type ProjectRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
}

// AdWatchResponse reports the daily ad counter after an update
type AdWatchResponse struct {
	Success         bool   `json:"success"`
	AdsWatchedToday int    `json:"adsWatchedToday"`
	LastAdWatchDate string `json:"lastAdWatchDate"`
}

// SpinWheelResponse reports the spin-wheel counters after a reset check
type SpinWheelResponse struct {
	Success           bool   `json:"success"`
	FreeSpinsToday    int    `json:"freeSpinsToday"`
	AdSpinsToday      int    `json:"adSpinsToday"`
	LastSpinWheelDate string `json:"lastSpinWheelDate"`
	WasReset          bool   `json:"wasReset"`
}

// AdminStatusResponse reports the caller's admin flag
type AdminStatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// CoinsResponse reports the caller's coin balance
type CoinsResponse struct {
	UID   string `json:"uid"`
	Coins int64  `json:"coins"`
}

// ReferralCodeResponse carries a freshly issued referral code
type ReferralCodeResponse struct {
	ReferralCode string `json:"referralCode"`
}
