package mock

import (
	"context"

	"github.com/jmalczak/factbook"
)

var _ factbook.ProfileService = (*ProfileService)(nil)

// ProfileService is a mock implementation of factbook.ProfileService.
type ProfileService struct {
	ProfilesFn func(ctx context.Context) ([]*factbook.Profile, error)
}

func (s *ProfileService) Profiles(ctx context.Context) ([]*factbook.Profile, error) {
	return s.ProfilesFn(ctx)
}

var _ factbook.DestinationService = (*DestinationService)(nil)

// DestinationService is a mock implementation of factbook.DestinationService.
type DestinationService struct {
	DestinationsFn func(ctx context.Context) ([]*factbook.Destination, error)
}

func (s *DestinationService) Destinations(ctx context.Context) ([]*factbook.Destination, error) {
	return s.DestinationsFn(ctx)
}
