package shows

import (
	"context"

	"gigboard/internal/store"
)

// Store defines persistence operations for shows
type Store interface {
	CreateShow(ctx context.Context, show *store.Show) error
	ListShows(ctx context.Context) ([]store.ShowListing, error)
}

// Service coordinates show-related operations
type Service interface {
	Create(ctx context.Context, show *store.Show) error
	List(ctx context.Context) ([]store.ShowListing, error)
}

type service struct {
	store Store
}

// New constructs a show Service backed by the provided Store
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) Create(ctx context.Context, show *store.Show) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.CreateShow(ctx, show)
}

func (s *service) List(ctx context.Context) ([]store.ShowListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListShows(ctx)
}
