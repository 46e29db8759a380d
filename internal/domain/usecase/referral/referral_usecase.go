package referral

import (
	"strings"

	"github.com/google/uuid"

	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
	usecaseport "github.com/rewardly-app/rewards-processor/internal/domain/port/usecase"
	"github.com/rewardly-app/rewards-processor/internal/domain/usecase/scan"
)

// CodeSource draws one referral-code candidate per call
type CodeSource func() string

// UUIDCodeSource derives an 8-character candidate from a random UUID
func UUIDCodeSource() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// Config tunes referral-code issuance and the fast-path bonus
type Config struct {
	// MaxAttempts caps the collision-regeneration loop; exhaustion surfaces
	// ErrExhaustedRetries instead of spinning forever against a saturated code
	// space or an unreachable shard
	MaxAttempts int
	// RetryBackoff is slept between generation attempts
	RetryBackoff coreport.Duration
	// FastPathBonus is the coin bonus credited to the referrer by the
	// user-creation fast path
	FastPathBonus int64
}

// DefaultConfig returns the production issuance settings
func DefaultConfig() Config {
	return Config{
		MaxAttempts:   10,
		RetryBackoff:  50 * coreport.Millisecond,
		FastPathBonus: 500,
	}
}

// ReferralUseCase implements referral-code issuance and the referral-bonus
// fast path. Cross-shard lookups go through the injected scan policy.
type ReferralUseCase struct {
	registry     persistence.ShardRegistry
	scanner      scan.Policy
	codes        CodeSource
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

// Compile-time check that ReferralUseCase satisfies the port interface
var _ usecaseport.ReferralUseCase = (*ReferralUseCase)(nil)

// NewReferralUseCase creates a new ReferralUseCase. A nil codes source falls
// back to UUIDCodeSource.
func NewReferralUseCase(
	registry persistence.ShardRegistry,
	scanner scan.Policy,
	codes CodeSource,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *ReferralUseCase {
	if codes == nil {
		codes = UUIDCodeSource
	}
	return &ReferralUseCase{
		registry:     registry,
		scanner:      scanner,
		codes:        codes,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}
