package user

import (
	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
	usecaseport "github.com/rewardly-app/rewards-processor/internal/domain/port/usecase"
)

// UserUseCase implements the per-user operations of the callable API surface.
// Each operation resolves the caller's home shard through the injected
// registry; the use case itself holds no per-shard state.
type UserUseCase struct {
	registry     persistence.ShardRegistry
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	freeSpins    int
}

// Compile-time check that UserUseCase satisfies the port interface
var _ usecaseport.UserUseCase = (*UserUseCase)(nil)

// NewUserUseCase creates a new UserUseCase. freeSpinsPerDay is the number of
// free spins granted when the spin-wheel counters reset on a new day.
func NewUserUseCase(
	registry persistence.ShardRegistry,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	freeSpinsPerDay int,
) *UserUseCase {
	return &UserUseCase{
		registry:     registry,
		timeProvider: timeProvider,
		logger:       logger,
		freeSpins:    freeSpinsPerDay,
	}
}
