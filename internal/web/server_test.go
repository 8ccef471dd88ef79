package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gigboard/internal/store"
)

type stubVenueService struct {
	groups  []store.LocationGroup
	results *store.SearchResults
	detail  *store.VenueDetail
	venue   *store.Venue
	err     error

	createdVenue *store.Venue
	updatedID    int64
	deletedID    int64
	lastTerm     string
}

func (s *stubVenueService) Create(ctx context.Context, venue *store.Venue) error {
	s.createdVenue = venue
	return s.err
}

func (s *stubVenueService) Get(ctx context.Context, id int64) (*store.Venue, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.venue, nil
}

func (s *stubVenueService) Update(ctx context.Context, id int64, venue *store.Venue) error {
	s.updatedID = id
	return s.err
}

func (s *stubVenueService) Delete(ctx context.Context, id int64) error {
	s.deletedID = id
	return s.err
}

func (s *stubVenueService) ListByLocation(ctx context.Context) ([]store.LocationGroup, error) {
	return s.groups, s.err
}

func (s *stubVenueService) Search(ctx context.Context, term string) (*store.SearchResults, error) {
	s.lastTerm = term
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func (s *stubVenueService) Detail(ctx context.Context, id int64) (*store.VenueDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

type stubArtistService struct {
	artists []store.ArtistRef
	results *store.SearchResults
	detail  *store.ArtistDetail
	artist  *store.Artist
	err     error

	createdArtist *store.Artist
	updatedID     int64
}

func (s *stubArtistService) Create(ctx context.Context, artist *store.Artist) error {
	s.createdArtist = artist
	return s.err
}

func (s *stubArtistService) Get(ctx context.Context, id int64) (*store.Artist, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.artist, nil
}

func (s *stubArtistService) Update(ctx context.Context, id int64, artist *store.Artist) error {
	s.updatedID = id
	return s.err
}

func (s *stubArtistService) List(ctx context.Context) ([]store.ArtistRef, error) {
	return s.artists, s.err
}

func (s *stubArtistService) Search(ctx context.Context, term string) (*store.SearchResults, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func (s *stubArtistService) Detail(ctx context.Context, id int64) (*store.ArtistDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

type stubShowService struct {
	listings []store.ShowListing
	err      error

	createdShow *store.Show
}

func (s *stubShowService) Create(ctx context.Context, show *store.Show) error {
	s.createdShow = show
	return s.err
}

func (s *stubShowService) List(ctx context.Context) ([]store.ShowListing, error) {
	return s.listings, s.err
}

func newTestServer(t *testing.T, venues *stubVenueService, artists *stubArtistService, shows *stubShowService) http.Handler {
	t.Helper()
	renderer, err := NewRenderer()
	require.NoError(t, err)

	if venues == nil {
		venues = &stubVenueService{}
	}
	if artists == nil {
		artists = &stubArtistService{}
	}
	if shows == nil {
		shows = &stubShowService{}
	}

	return New(venues, artists, shows, renderer, NewFlash([]byte("test-secret"))).Routes()
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestVenueListGroupedByLocation(t *testing.T) {
	venues := &stubVenueService{groups: []store.LocationGroup{
		{City: "San Francisco", State: "CA", Venues: []store.VenueSummary{
			{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 1},
			{ID: 3, Name: "Park Square Live Music & Coffee"},
		}},
		{City: "New York", State: "NY", Venues: []store.VenueSummary{
			{ID: 2, Name: "The Dueling Pianos Bar"},
		}},
	}}
	handler := newTestServer(t, venues, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "San Francisco, CA")
	require.Contains(t, body, "New York, NY")
	require.Contains(t, body, "The Musical Hop")
}

func TestVenueSearchPassesTerm(t *testing.T) {
	venues := &stubVenueService{results: &store.SearchResults{
		Count: 1,
		Data:  []store.SearchResult{{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2}},
	}}
	handler := newTestServer(t, venues, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, postForm("/venues/search", url.Values{"search_term": {"hop"}}))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "hop", venues.lastTerm)
	require.Contains(t, rec.Body.String(), "The Musical Hop")
	require.Contains(t, rec.Body.String(), "1 result")
}

func TestVenueDetailNotFoundRenders404(t *testing.T) {
	venues := &stubVenueService{err: &store.NotFoundError{Kind: "venue", ID: 42}}
	handler := newTestServer(t, venues, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues/42", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "404")
}

func TestCreateVenueRedirectsWithFlash(t *testing.T) {
	venues := &stubVenueService{}
	handler := newTestServer(t, venues, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, postForm("/venues/create", url.Values{
		"name":           {"The Musical Hop"},
		"city":           {"San Francisco"},
		"state":          {"CA"},
		"genres":         {"Jazz", "Reggae"},
		"seeking_talent": {"on"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
	require.NotEmpty(t, rec.Header().Get("Set-Cookie"))

	require.NotNil(t, venues.createdVenue)
	require.Equal(t, []string{"Jazz", "Reggae"}, venues.createdVenue.Genres)
	require.True(t, venues.createdVenue.SeekingTalent)
}

func TestCreateVenueMissingFieldsRerendersForm(t *testing.T) {
	venues := &stubVenueService{}
	handler := newTestServer(t, venues, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, postForm("/venues/create", url.Values{
		"name": {"The Musical Hop"},
	}))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "city is required")
	require.Contains(t, rec.Body.String(), "The Musical Hop")
	require.Nil(t, venues.createdVenue)
}

func TestDeleteVenue(t *testing.T) {
	venues := &stubVenueService{venue: &store.Venue{ID: 3, Name: "The Dueling Pianos Bar"}}
	handler := newTestServer(t, venues, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/venues/3", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, int64(3), venues.deletedID)
}

func TestDeleteVenueNotFound(t *testing.T) {
	venues := &stubVenueService{err: &store.NotFoundError{Kind: "venue", ID: 99}}
	handler := newTestServer(t, venues, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/venues/99", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditVenueFormPopulatedFromRecord(t *testing.T) {
	venues := &stubVenueService{venue: &store.Venue{
		ID:      3,
		Name:    "Park Square Live Music & Coffee",
		City:    "San Francisco",
		State:   "CA",
		Genres:  []string{"Jazz"},
		Website: "https://www.parksquarelivemusicandcoffee.com",
	}}
	handler := newTestServer(t, venues, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues/3/edit", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Park Square Live Music &amp; Coffee")
	require.Contains(t, body, `action="/venues/3/edit"`)
}

func TestEditVenueRedirectsToDetail(t *testing.T) {
	venues := &stubVenueService{}
	handler := newTestServer(t, venues, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, postForm("/venues/3/edit", url.Values{
		"name":  {"Park Square Live Music & Coffee"},
		"city":  {"San Francisco"},
		"state": {"CA"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/venues/3", rec.Header().Get("Location"))
	require.Equal(t, int64(3), venues.updatedID)
}

func TestArtistListPage(t *testing.T) {
	artists := &stubArtistService{artists: []store.ArtistRef{
		{ID: 1, Name: "Guns N Petals"},
		{ID: 2, Name: "Matt Quevedo"},
	}}
	handler := newTestServer(t, nil, artists, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artists", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Guns N Petals")
	require.Contains(t, rec.Body.String(), "Matt Quevedo")
}

func TestArtistDetailShowsPartition(t *testing.T) {
	artists := &stubArtistService{detail: &store.ArtistDetail{
		Artist: store.Artist{ID: 1, Name: "Guns N Petals", City: "San Francisco", State: "CA"},
		PastShows: []store.ShowEntry{
			{CounterpartID: 1, CounterpartName: "The Musical Hop",
				StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
		},
		UpcomingShows:      []store.ShowEntry{},
		PastShowsCount:     1,
		UpcomingShowsCount: 0,
	}}
	handler := newTestServer(t, nil, artists, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artists/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "1 past show")
	require.Contains(t, body, "0 upcoming shows")
	require.Contains(t, body, "2019-05-21 21:30:00")
}

func TestShowsPageListsJoinedRows(t *testing.T) {
	shows := &stubShowService{listings: []store.ShowListing{
		{VenueID: 1, VenueName: "The Musical Hop", ArtistID: 1,
			ArtistName: "Guns N Petals",
			StartTime:  time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	}}
	handler := newTestServer(t, nil, nil, shows)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shows", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Guns N Petals")
	require.Contains(t, rec.Body.String(), "The Musical Hop")
}

func TestCreateShowIntegrityFailureFlashes(t *testing.T) {
	shows := &stubShowService{err: &store.IntegrityError{Reference: "venue or artist"}}
	handler := newTestServer(t, nil, nil, shows)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, postForm("/shows/create", url.Values{
		"artist_id":  {"999"},
		"venue_id":   {"1"},
		"start_time": {"2024-06-15 20:00:00"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
	require.NotEmpty(t, rec.Header().Get("Set-Cookie"))
}

func TestCreateShowSuccess(t *testing.T) {
	shows := &stubShowService{}
	handler := newTestServer(t, nil, nil, shows)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, postForm("/shows/create", url.Values{
		"artist_id":  {"1"},
		"venue_id":   {"2"},
		"start_time": {"2024-06-15T20:00"},
	}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.NotNil(t, shows.createdShow)
	require.Equal(t, int64(1), shows.createdShow.ArtistID)
	require.Equal(t, int64(2), shows.createdShow.VenueID)
}

func TestUnknownRouteRenders404(t *testing.T) {
	handler := newTestServer(t, nil, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no/such/page", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "404")
}

func TestFlashShownOnceThenCleared(t *testing.T) {
	handler := newTestServer(t, nil, nil, nil)

	// The create redirect sets the flash cookie.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, postForm("/venues/create", url.Values{
		"name": {"The Musical Hop"}, "city": {"San Francisco"}, "state": {"CA"},
	}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// The next page load renders the message.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Venue The Musical Hop was successfully listed!")
}
