package firestore

import (
	"time"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
)

// Collection names, shared by every shard
const (
	usersCollection       = "users"
	withdrawalsCollection = "withdrawalRequests"
)

// userDoc is the Firestore document shape of a user record
type userDoc struct {
	Coins                   int64     `firestore:"coins"`
	ReferralCode            string    `firestore:"referralCode"`
	ReferredBy              string    `firestore:"referredBy"`
	ReferralBonusAwarded    bool      `firestore:"referralBonusAwarded"`
	AdsWatchedToday         int       `firestore:"adsWatchedToday"`
	LastAdWatchDate         string    `firestore:"lastAdWatchDate"`
	SpinWheelFreeSpinsToday int       `firestore:"spinWheelFreeSpinsToday"`
	SpinWheelAdSpinsToday   int       `firestore:"spinWheelAdSpinsToday"`
	LastSpinWheelDate       string    `firestore:"lastSpinWheelDate"`
	IsAdmin                 bool      `firestore:"isAdmin"`
	FCMToken                string    `firestore:"fcmToken"`
	ProjectID               string    `firestore:"projectId"`
	DailySyncStartTime      int64     `firestore:"dailySyncStartTime"`
	CreatedAt               time.Time `firestore:"createdAt"`
	UpdatedAt               time.Time `firestore:"updatedAt"`
}

// toEntity converts the document into a domain user
func (d *userDoc) toEntity(uid string) *entity.User {
	user := &entity.User{
		UID:                     uid,
		ReferralCode:            d.ReferralCode,
		ReferredBy:              d.ReferredBy,
		ReferralBonusAwarded:    d.ReferralBonusAwarded,
		AdsWatchedToday:         d.AdsWatchedToday,
		LastAdWatchDate:         d.LastAdWatchDate,
		SpinWheelFreeSpinsToday: d.SpinWheelFreeSpinsToday,
		SpinWheelAdSpinsToday:   d.SpinWheelAdSpinsToday,
		LastSpinWheelDate:       d.LastSpinWheelDate,
		IsAdmin:                 d.IsAdmin,
		FCMToken:                d.FCMToken,
		ProjectID:               d.ProjectID,
		DailySyncStartTime:      d.DailySyncStartTime,
		CreatedAt:               d.CreatedAt,
		UpdatedAt:               d.UpdatedAt,
	}
	user.SetCoins(d.Coins)
	return user
}

// fromUserEntity converts a domain user into its document shape
func fromUserEntity(user *entity.User) *userDoc {
	return &userDoc{
		Coins:                   user.Coins(),
		ReferralCode:            user.ReferralCode,
		ReferredBy:              user.ReferredBy,
		ReferralBonusAwarded:    user.ReferralBonusAwarded,
		AdsWatchedToday:         user.AdsWatchedToday,
		LastAdWatchDate:         user.LastAdWatchDate,
		SpinWheelFreeSpinsToday: user.SpinWheelFreeSpinsToday,
		SpinWheelAdSpinsToday:   user.SpinWheelAdSpinsToday,
		LastSpinWheelDate:       user.LastSpinWheelDate,
		IsAdmin:                 user.IsAdmin,
		FCMToken:                user.FCMToken,
		ProjectID:               user.ProjectID,
		DailySyncStartTime:      user.DailySyncStartTime,
		CreatedAt:               user.CreatedAt,
		UpdatedAt:               user.UpdatedAt,
	}
}

// withdrawalDoc is the Firestore document shape of a withdrawal request
type withdrawalDoc struct {
	UID         string     `firestore:"uid"`
	Amount      int64      `firestore:"amount"`
	ProjectID   string     `firestore:"projectId"`
	Status      string     `firestore:"status"`
	Error       string     `firestore:"error"`
	CreatedAt   time.Time  `firestore:"createdAt"`
	ProcessedAt *time.Time `firestore:"processedAt"`
}

// toEntity converts the document into a domain withdrawal request
func (d *withdrawalDoc) toEntity(id string) *entity.WithdrawalRequest {
	return &entity.WithdrawalRequest{
		ID:          id,
		UID:         d.UID,
		Amount:      d.Amount,
		ProjectID:   d.ProjectID,
		Status:      entity.WithdrawalStatus(d.Status),
		Error:       d.Error,
		CreatedAt:   d.CreatedAt,
		ProcessedAt: d.ProcessedAt,
	}
}
