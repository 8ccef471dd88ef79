package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateArtistGenresRoundTrip(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO artists")).
		WithArgs("The Wild Sax Band", "San Francisco", "CA", "432-325-5432",
			"Jazz,Classical", "", "", "", false, "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	artist := &Artist{
		Name:   "The Wild Sax Band",
		City:   "San Francisco",
		State:  "CA",
		Phone:  "432-325-5432",
		Genres: []string{"Jazz", "Classical"},
	}
	if err := s.CreateArtist(context.Background(), artist); err != nil {
		t.Fatalf("CreateArtist error: %v", err)
	}
	if artist.ID != 3 {
		t.Fatalf("expected artist ID 3, got %d", artist.ID)
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM artists")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "city", "state", "phone", "genres",
			"facebook_link", "website", "image_link", "seeking_venue", "seeking_description",
		}).AddRow(int64(3), "The Wild Sax Band", "San Francisco", "CA",
			"432-325-5432", "Jazz,Classical", "", "", "", false, ""))

	got, err := s.GetArtist(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetArtist error: %v", err)
	}
	if len(got.Genres) != 2 || got.Genres[0] != "Jazz" || got.Genres[1] != "Classical" {
		t.Fatalf("expected ordered genres [Jazz Classical], got %v", got.Genres)
	}

	expectMet(t, mock)
}

func TestCreateArtistValidation(t *testing.T) {
	s, mock := newTestStore(t)

	err := s.CreateArtist(context.Background(), &Artist{Name: "No Location"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	expectMet(t, mock)
}

func TestUpdateArtistOverwritesAllFields(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE artists")).
		WithArgs("Guns N Petals", "San Francisco", "CA", "326-123-5000",
			"Rock n Roll", "", "", "", true, "Looking for shows.", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.UpdateArtist(context.Background(), 1, &Artist{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             []string{"Rock n Roll"},
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows.",
	})
	if err != nil {
		t.Fatalf("UpdateArtist error: %v", err)
	}

	expectMet(t, mock)
}

func TestUpdateArtistNotFound(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE artists")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.UpdateArtist(context.Background(), 99, &Artist{
		Name: "Ghost", City: "Nowhere", State: "XX",
	})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	expectMet(t, mock)
}

func TestListArtists(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM artists")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Guns N Petals").
			AddRow(int64(2), "Matt Quevedo"))

	artists, err := s.ListArtists(context.Background())
	if err != nil {
		t.Fatalf("ListArtists error: %v", err)
	}
	if len(artists) != 2 || artists[0].Name != "Guns N Petals" {
		t.Fatalf("unexpected artists: %+v", artists)
	}

	expectMet(t, mock)
}

func TestSearchArtistsCaseInsensitiveSubstring(t *testing.T) {
	s, mock := newTestStore(t)

	// The pattern wraps the raw term; ILIKE supplies the case folding.
	mock.ExpectQuery(regexp.QuoteMeta("a.name ILIKE $1")).
		WithArgs("%band%", testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "num_upcoming"}).
			AddRow(int64(3), "The Wild Sax Band", 2))

	results, err := s.SearchArtists(context.Background(), "band")
	if err != nil {
		t.Fatalf("SearchArtists error: %v", err)
	}
	if results.Count != 1 || results.Data[0].Name != "The Wild Sax Band" {
		t.Fatalf("unexpected results: %+v", results)
	}
	if results.Data[0].NumUpcomingShows != 2 {
		t.Fatalf("expected 2 upcoming shows, got %d", results.Data[0].NumUpcomingShows)
	}

	expectMet(t, mock)
}

func TestArtistDetailPartitionsShows(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM artists")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "city", "state", "phone", "genres",
			"facebook_link", "website", "image_link", "seeking_venue", "seeking_description",
		}).AddRow(int64(1), "Guns N Petals", "San Francisco", "CA",
			"", "Rock n Roll", "", "", "", true, ""))

	mock.ExpectQuery(regexp.QuoteMeta("FROM shows s")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"venue_id", "name", "image_link", "start_time"}).
			AddRow(int64(1), "The Musical Hop", "", testNow.Add(-24*time.Hour)).
			AddRow(int64(3), "Park Square Live Music & Coffee", "", testNow.Add(24*time.Hour)))

	detail, err := s.ArtistDetail(context.Background(), 1)
	if err != nil {
		t.Fatalf("ArtistDetail error: %v", err)
	}
	if detail.PastShowsCount != 1 || detail.UpcomingShowsCount != 1 {
		t.Fatalf("unexpected partition: past=%d upcoming=%d",
			detail.PastShowsCount, detail.UpcomingShowsCount)
	}
	if detail.PastShows[0].CounterpartName != "The Musical Hop" {
		t.Fatalf("unexpected past show: %+v", detail.PastShows[0])
	}

	expectMet(t, mock)
}
