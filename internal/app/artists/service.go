package artists

import (
	"context"
	"strings"

	"gigboard/internal/store"
)

// Store defines persistence operations for artists
type Store interface {
	CreateArtist(ctx context.Context, artist *store.Artist) error
	GetArtist(ctx context.Context, id int64) (*store.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist *store.Artist) error
	ListArtists(ctx context.Context) ([]store.ArtistRef, error)
	SearchArtists(ctx context.Context, term string) (*store.SearchResults, error)
	ArtistDetail(ctx context.Context, id int64) (*store.ArtistDetail, error)
}

// Service coordinates artist-related operations
type Service interface {
	Create(ctx context.Context, artist *store.Artist) error
	Get(ctx context.Context, id int64) (*store.Artist, error)
	Update(ctx context.Context, id int64, artist *store.Artist) error
	List(ctx context.Context) ([]store.ArtistRef, error)
	Search(ctx context.Context, term string) (*store.SearchResults, error)
	Detail(ctx context.Context, id int64) (*store.ArtistDetail, error)
}

type service struct {
	store Store
}

// New constructs an artist Service backed by the provided Store
func New(st Store) Service {
	return &service{store: st}
}

func (s *service) Create(ctx context.Context, artist *store.Artist) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	normalize(artist)
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) Get(ctx context.Context, id int64) (*store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetArtist(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, artist *store.Artist) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	normalize(artist)
	return s.store.UpdateArtist(ctx, id, artist)
}

func (s *service) List(ctx context.Context) ([]store.ArtistRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

func (s *service) Search(ctx context.Context, term string) (*store.SearchResults, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SearchArtists(ctx, term)
}

func (s *service) Detail(ctx context.Context, id int64) (*store.ArtistDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ArtistDetail(ctx, id)
}

func normalize(a *store.Artist) {
	a.Name = strings.TrimSpace(a.Name)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	if a.Genres == nil {
		a.Genres = []string{}
	}
}
