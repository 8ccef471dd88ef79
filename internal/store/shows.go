package store

import (
	"context"
	"time"
)

// Show is a scheduled booking joining one venue and one artist.
type Show struct {
	ID        int64
	VenueID   int64
	ArtistID  int64
	StartTime time.Time
}

// ShowListing is a show joined with the names shown on the shows page.
type ShowListing struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

func validateShow(sh *Show) error {
	fields := map[string]string{}
	if sh.VenueID == 0 {
		fields["venue_id"] = "is required"
	}
	if sh.ArtistID == 0 {
		fields["artist_id"] = "is required"
	}
	if sh.StartTime.IsZero() {
		fields["start_time"] = "is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CreateShow inserts a new show. A venue or artist id that does not exist
// fails the foreign key check and surfaces as an IntegrityError with nothing
// persisted.
func (s *Store) CreateShow(ctx context.Context, sh *Show) error {
	if err := validateShow(sh); err != nil {
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`, sh.VenueID, sh.ArtistID, sh.StartTime).Scan(&sh.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &IntegrityError{Reference: "venue or artist", Err: err}
		}
		return storageErr("insert show", err)
	}
	return nil
}

// ListShows returns every show joined with its venue and artist, ordered by
// start time ascending.
func (s *Store) ListShows(ctx context.Context) ([]ShowListing, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.start_time ASC
	`)
	if err != nil {
		return nil, storageErr("select shows", err)
	}
	defer rows.Close()

	var listings []ShowListing
	for rows.Next() {
		var l ShowListing
		if err := rows.Scan(&l.VenueID, &l.VenueName, &l.ArtistID,
			&l.ArtistName, &l.ArtistImageLink, &l.StartTime); err != nil {
			return nil, storageErr("scan show", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
