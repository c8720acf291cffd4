package characters

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/RViz3d/archetype-manager/internal/repositories/characters TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// NewRealTimeProvider returns a TimeProvider backed by the system clock.
func NewRealTimeProvider() TimeProvider {
	return realTimeProvider{}
}
