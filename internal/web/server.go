package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"gigboard/internal/store"
)

// VenueService captures the venue operations needed by the HTTP handlers.
type VenueService interface {
	Create(ctx context.Context, venue *store.Venue) error
	Get(ctx context.Context, id int64) (*store.Venue, error)
	Update(ctx context.Context, id int64, venue *store.Venue) error
	Delete(ctx context.Context, id int64) error
	ListByLocation(ctx context.Context) ([]store.LocationGroup, error)
	Search(ctx context.Context, term string) (*store.SearchResults, error)
	Detail(ctx context.Context, id int64) (*store.VenueDetail, error)
}

// ArtistService captures the artist operations needed by the HTTP handlers.
type ArtistService interface {
	Create(ctx context.Context, artist *store.Artist) error
	Get(ctx context.Context, id int64) (*store.Artist, error)
	Update(ctx context.Context, id int64, artist *store.Artist) error
	List(ctx context.Context) ([]store.ArtistRef, error)
	Search(ctx context.Context, term string) (*store.SearchResults, error)
	Detail(ctx context.Context, id int64) (*store.ArtistDetail, error)
}

// ShowService captures the show operations needed by the HTTP handlers.
type ShowService interface {
	Create(ctx context.Context, show *store.Show) error
	List(ctx context.Context) ([]store.ShowListing, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues   VenueService
	artists  ArtistService
	shows    ShowService
	renderer *Renderer
	flash    *Flash
}

// New configures a Server with the given services.
func New(venues VenueService, artists ArtistService, shows ShowService, renderer *Renderer, flash *Flash) *Server {
	return &Server{
		venues:   venues,
		artists:  artists,
		shows:    shows,
		renderer: renderer,
		flash:    flash,
	}
}

// Routes exposes the HTTP handlers for the listing pages and forms.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)

	mux.HandleFunc("GET /venues", s.handleListVenues)
	mux.HandleFunc("POST /venues/search", s.handleSearchVenues)
	mux.HandleFunc("GET /venues/create", s.handleNewVenueForm)
	mux.HandleFunc("POST /venues/create", s.handleCreateVenue)
	mux.HandleFunc("GET /venues/{id}", s.handleVenueDetail)
	mux.HandleFunc("DELETE /venues/{id}", s.handleDeleteVenue)
	mux.HandleFunc("GET /venues/{id}/edit", s.handleEditVenueForm)
	mux.HandleFunc("POST /venues/{id}/edit", s.handleEditVenue)

	mux.HandleFunc("GET /artists", s.handleListArtists)
	mux.HandleFunc("POST /artists/search", s.handleSearchArtists)
	mux.HandleFunc("GET /artists/create", s.handleNewArtistForm)
	mux.HandleFunc("POST /artists/create", s.handleCreateArtist)
	mux.HandleFunc("GET /artists/{id}", s.handleArtistDetail)
	mux.HandleFunc("GET /artists/{id}/edit", s.handleEditArtistForm)
	mux.HandleFunc("POST /artists/{id}/edit", s.handleEditArtist)

	mux.HandleFunc("GET /shows", s.handleListShows)
	mux.HandleFunc("GET /shows/create", s.handleNewShowForm)
	mux.HandleFunc("POST /shows/create", s.handleCreateShow)

	// Everything that falls through the patterns above.
	mux.HandleFunc("/", s.handleNotFound)

	return mux
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home", &homePage{page: s.newPage(w, r)})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "404", &errorPage{page: s.newPage(w, r)})
}

// ServeError renders the 500 page. The recovery middleware uses it so a
// panicking handler still produces a friendly page.
func (s *Server) ServeError(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusInternalServerError, "500", &errorPage{page: s.newPage(w, r)})
}

func (s *Server) newPage(w http.ResponseWriter, r *http.Request) page {
	return page{Flashes: s.flash.Pop(w, r)}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.renderer.Render(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

// renderFailure maps service errors onto the 404 or 500 page.
func (s *Server) renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *store.NotFoundError
	if errors.As(err, &notFound) {
		s.handleNotFound(w, r)
		return
	}
	log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	s.render(w, r, http.StatusInternalServerError, "500", &errorPage{page: s.newPage(w, r)})
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func validationFields(err error) (map[string]string, bool) {
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields, true
	}
	return nil, false
}
