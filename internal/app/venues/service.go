package venues

import (
	"context"
	"strings"

	"gigboard/internal/store"
)

// Store defines persistence operations for venues
type Store interface {
	CreateVenue(ctx context.Context, venue *store.Venue) error
	GetVenue(ctx context.Context, id int64) (*store.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue *store.Venue) error
	DeleteVenue(ctx context.Context, id int64) error
	VenuesByLocation(ctx context.Context) ([]store.LocationGroup, error)
	SearchVenues(ctx context.Context, term string) (*store.SearchResults, error)
	VenueDetail(ctx context.Context, id int64) (*store.VenueDetail, error)
}

// Service coordinates venue-related operations
type Service interface {
	Create(ctx context.Context, venue *store.Venue) error
	Get(ctx context.Context, id int64) (*store.Venue, error)
	Update(ctx context.Context, id int64, venue *store.Venue) error
	Delete(ctx context.Context, id int64) error
	ListByLocation(ctx context.Context) ([]store.LocationGroup, error)
	Search(ctx context.Context, term string) (*store.SearchResults, error)
	Detail(ctx context.Context, id int64) (*store.VenueDetail, error)
}

type service struct {
	store Store
}

// New constructs a venue Service backed by the provided Store
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) Create(ctx context.Context, venue *store.Venue) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	normalize(venue)
	return s.store.CreateVenue(ctx, venue)
}

func (s *service) Get(ctx context.Context, id int64) (*store.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetVenue(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, venue *store.Venue) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	normalize(venue)
	return s.store.UpdateVenue(ctx, id, venue)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteVenue(ctx, id)
}

func (s *service) ListByLocation(ctx context.Context) ([]store.LocationGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.VenuesByLocation(ctx)
}

func (s *service) Search(ctx context.Context, term string) (*store.SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SearchVenues(ctx, term)
}

func (s *service) Detail(ctx context.Context, id int64) (*store.VenueDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.VenueDetail(ctx, id)
}

func normalize(v *store.Venue) {
	v.Name = strings.TrimSpace(v.Name)
	v.City = strings.TrimSpace(v.City)
	v.State = strings.TrimSpace(v.State)
	if v.Genres == nil {
		v.Genres = []string{}
	}
}
