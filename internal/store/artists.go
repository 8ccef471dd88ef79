package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Artist is a performer that can be booked into shows.
type Artist struct {
	ID                 int64
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	FacebookLink       string
	Website            string
	ImageLink          string
	SeekingVenue       bool
	SeekingDescription string
}

// ArtistRef is the id/name pair shown on the artists index.
type ArtistRef struct {
	ID   int64
	Name string
}

// ArtistDetail is an artist plus its schedule split around the query time.
type ArtistDetail struct {
	Artist
	PastShows          []ShowEntry
	UpcomingShows      []ShowEntry
	PastShowsCount     int
	UpcomingShowsCount int
}

func validateArtist(a *Artist) error {
	fields := map[string]string{}
	if strings.TrimSpace(a.Name) == "" {
		fields["name"] = "is required"
	}
	if strings.TrimSpace(a.City) == "" {
		fields["city"] = "is required"
	}
	if strings.TrimSpace(a.State) == "" {
		fields["state"] = "is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CreateArtist inserts a new artist and assigns its id.
func (s *Store) CreateArtist(ctx context.Context, a *Artist) error {
	if err := validateArtist(a); err != nil {
		return err
	}
	if a.Genres == nil {
		a.Genres = []string{}
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO artists (name, city, state, phone, genres,
		                     facebook_link, website, image_link,
		                     seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, a.Name, a.City, a.State, a.Phone, joinGenres(a.Genres),
		a.FacebookLink, a.Website, a.ImageLink,
		a.SeekingVenue, a.SeekingDescription,
	).Scan(&a.ID)
	if err != nil {
		return storageErr("insert artist", err)
	}
	return nil
}

// GetArtist retrieves a single artist by id.
func (s *Store) GetArtist(ctx context.Context, id int64) (*Artist, error) {
	var (
		a      Artist
		genres string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, city, state, phone, genres,
		       facebook_link, website, image_link,
		       seeking_venue, seeking_description
		FROM artists
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres,
		&a.FacebookLink, &a.Website, &a.ImageLink,
		&a.SeekingVenue, &a.SeekingDescription)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Kind: "artist", ID: id}
	}
	if err != nil {
		return nil, storageErr("select artist", err)
	}
	a.Genres = splitGenres(genres)
	return &a, nil
}

// UpdateArtist overwrites every mutable field of the artist with the given id.
func (s *Store) UpdateArtist(ctx context.Context, id int64, a *Artist) error {
	if err := validateArtist(a); err != nil {
		return err
	}
	if a.Genres == nil {
		a.Genres = []string{}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin tx", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
		    facebook_link = $6, website = $7, image_link = $8,
		    seeking_venue = $9, seeking_description = $10
		WHERE id = $11
	`, a.Name, a.City, a.State, a.Phone, joinGenres(a.Genres),
		a.FacebookLink, a.Website, a.ImageLink,
		a.SeekingVenue, a.SeekingDescription, id)
	if err != nil {
		return storageErr("update artist", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return storageErr("update artist", err)
	}
	if rows == 0 {
		return &NotFoundError{Kind: "artist", ID: id}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit tx", err)
	}
	tx = nil

	a.ID = id
	return nil
}

// ListArtists returns every artist's id and name in insertion order.
func (s *Store) ListArtists(ctx context.Context) ([]ArtistRef, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM artists
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, storageErr("select artists", err)
	}
	defer rows.Close()

	var artists []ArtistRef
	for rows.Next() {
		var ref ArtistRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, storageErr("scan artist", err)
		}
		artists = append(artists, ref)
	}
	return artists, rows.Err()
}

// SearchArtists matches the term as a case-insensitive substring of the
// artist name. An empty term matches every artist.
func (s *Store) SearchArtists(ctx context.Context, term string) (*SearchResults, error) {
	now := s.now()

	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.name,
		       COUNT(s.id) FILTER (WHERE s.start_time > $2) AS num_upcoming
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE a.name ILIKE $1
		GROUP BY a.id
		ORDER BY a.id ASC
	`, likePattern(term), now)
	if err != nil {
		return nil, storageErr("search artists", err)
	}
	defer rows.Close()

	results := &SearchResults{Data: []SearchResult{}}
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ID, &r.Name, &r.NumUpcomingShows); err != nil {
			return nil, storageErr("scan artist match", err)
		}
		results.Data = append(results.Data, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate artist matches", err)
	}
	results.Count = len(results.Data)

	return results, nil
}

// ArtistDetail returns the artist plus its schedule split into past and
// upcoming shows against one timestamp captured before the query.
func (s *Store) ArtistDetail(ctx context.Context, id int64) (*ArtistDetail, error) {
	now := s.now()

	artist, err := s.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.venue_id, v.name, v.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = $1
		ORDER BY s.start_time ASC
	`, id)
	if err != nil {
		return nil, storageErr("select artist shows", err)
	}
	defer rows.Close()

	detail := &ArtistDetail{
		Artist:        *artist,
		PastShows:     []ShowEntry{},
		UpcomingShows: []ShowEntry{},
	}
	for rows.Next() {
		var entry ShowEntry
		if err := rows.Scan(&entry.CounterpartID, &entry.CounterpartName,
			&entry.CounterpartImageLink, &entry.StartTime); err != nil {
			return nil, storageErr("scan artist show", err)
		}
		if entry.StartTime.After(now) {
			detail.UpcomingShows = append(detail.UpcomingShows, entry)
		} else {
			detail.PastShows = append(detail.PastShows, entry)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate artist shows", err)
	}

	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}
