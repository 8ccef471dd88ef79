package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Venue is a location that can host shows.
type Venue struct {
	ID                 int64
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	FacebookLink       string
	Website            string
	ImageLink          string
	SeekingTalent      bool
	SeekingDescription string
}

// VenueSummary is the listing/search shape of a venue.
type VenueSummary struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// LocationGroup collects the venues sharing one (city, state) pair.
type LocationGroup struct {
	City   string
	State  string
	Venues []VenueSummary
}

// VenueDetail is a venue plus its schedule split around the query time.
type VenueDetail struct {
	Venue
	PastShows          []ShowEntry
	UpcomingShows      []ShowEntry
	PastShowsCount     int
	UpcomingShowsCount int
}

func validateVenue(v *Venue) error {
	fields := map[string]string{}
	if strings.TrimSpace(v.Name) == "" {
		fields["name"] = "is required"
	}
	if strings.TrimSpace(v.City) == "" {
		fields["city"] = "is required"
	}
	if strings.TrimSpace(v.State) == "" {
		fields["state"] = "is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CreateVenue inserts a new venue and assigns its id.
func (s *Store) CreateVenue(ctx context.Context, v *Venue) error {
	if err := validateVenue(v); err != nil {
		return err
	}
	if v.Genres == nil {
		v.Genres = []string{}
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO venues (name, city, state, address, phone, genres,
		                    facebook_link, website, image_link,
		                    seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, v.Name, v.City, v.State, v.Address, v.Phone, joinGenres(v.Genres),
		v.FacebookLink, v.Website, v.ImageLink,
		v.SeekingTalent, v.SeekingDescription,
	).Scan(&v.ID)
	if err != nil {
		return storageErr("insert venue", err)
	}
	return nil
}

// GetVenue retrieves a single venue by id.
func (s *Store) GetVenue(ctx context.Context, id int64) (*Venue, error) {
	var (
		v      Venue
		genres string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, city, state, address, phone, genres,
		       facebook_link, website, image_link,
		       seeking_talent, seeking_description
		FROM venues
		WHERE id = $1
	`, id).Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&genres, &v.FacebookLink, &v.Website, &v.ImageLink,
		&v.SeekingTalent, &v.SeekingDescription)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Kind: "venue", ID: id}
	}
	if err != nil {
		return nil, storageErr("select venue", err)
	}
	v.Genres = splitGenres(genres)
	return &v, nil
}

// UpdateVenue overwrites every mutable field of the venue with the given id.
func (s *Store) UpdateVenue(ctx context.Context, id int64, v *Venue) error {
	if err := validateVenue(v); err != nil {
		return err
	}
	if v.Genres == nil {
		v.Genres = []string{}
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
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5,
		    genres = $6, facebook_link = $7, website = $8, image_link = $9,
		    seeking_talent = $10, seeking_description = $11
		WHERE id = $12
	`, v.Name, v.City, v.State, v.Address, v.Phone, joinGenres(v.Genres),
		v.FacebookLink, v.Website, v.ImageLink,
		v.SeekingTalent, v.SeekingDescription, id)
	if err != nil {
		return storageErr("update venue", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return storageErr("update venue", err)
	}
	if rows == 0 {
		return &NotFoundError{Kind: "venue", ID: id}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit tx", err)
	}
	tx = nil

	v.ID = id
	return nil
}

// DeleteVenue removes a venue together with its shows. Shows are schedule
// rows owned by the venue, so the delete cascades inside one transaction.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin tx", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM shows
		WHERE venue_id = $1
	`, id); err != nil {
		return storageErr("delete venue shows", err)
	}

	res, err := tx.ExecContext(ctx, `
		DELETE FROM venues
		WHERE id = $1
	`, id)
	if err != nil {
		return storageErr("delete venue", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return storageErr("delete venue", err)
	}
	if rows == 0 {
		return &NotFoundError{Kind: "venue", ID: id}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit tx", err)
	}
	tx = nil

	return nil
}

// VenuesByLocation returns one group per distinct (city, state) pair. Groups
// and the venues inside them appear in first-insertion order, which keeps the
// listing stable across calls.
func (s *Store) VenuesByLocation(ctx context.Context) ([]LocationGroup, error) {
	now := s.now()

	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		GROUP BY v.id
		ORDER BY v.id ASC
	`, now)
	if err != nil {
		return nil, storageErr("select venues by location", err)
	}
	defer rows.Close()

	var (
		groups []LocationGroup
		index  = map[[2]string]int{}
	)
	for rows.Next() {
		var (
			summary     VenueSummary
			city, state string
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &city, &state, &summary.NumUpcomingShows); err != nil {
			return nil, storageErr("scan venue", err)
		}

		key := [2]string{city, state}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, LocationGroup{City: city, State: state})
		}
		groups[i].Venues = append(groups[i].Venues, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate venues", err)
	}

	return groups, nil
}

// SearchVenues matches the term as a case-insensitive substring of the venue
// name, city, or state. An empty term matches every venue.
func (s *Store) SearchVenues(ctx context.Context, term string) (*SearchResults, error) {
	now := s.now()

	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name,
		       COUNT(s.id) FILTER (WHERE s.start_time > $2) AS num_upcoming
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		WHERE v.name ILIKE $1 OR v.city ILIKE $1 OR v.state ILIKE $1
		GROUP BY v.id
		ORDER BY v.id ASC
	`, likePattern(term), now)
	if err != nil {
		return nil, storageErr("search venues", err)
	}
	defer rows.Close()

	results := &SearchResults{Data: []SearchResult{}}
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ID, &r.Name, &r.NumUpcomingShows); err != nil {
			return nil, storageErr("scan venue match", err)
		}
		results.Data = append(results.Data, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate venue matches", err)
	}
	results.Count = len(results.Data)

	return results, nil
}

// VenueDetail returns the venue plus its schedule split into past and
// upcoming shows. The split uses a single timestamp captured before the
// query so a call straddling a show's start time stays consistent.
func (s *Store) VenueDetail(ctx context.Context, id int64) (*VenueDetail, error) {
	now := s.now()

	venue, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1
		ORDER BY s.start_time ASC
	`, id)
	if err != nil {
		return nil, storageErr("select venue shows", err)
	}
	defer rows.Close()

	detail := &VenueDetail{
		Venue:         *venue,
		PastShows:     []ShowEntry{},
		UpcomingShows: []ShowEntry{},
	}
	for rows.Next() {
		var entry ShowEntry
		if err := rows.Scan(&entry.CounterpartID, &entry.CounterpartName,
			&entry.CounterpartImageLink, &entry.StartTime); err != nil {
			return nil, storageErr("scan venue show", err)
		}
		if entry.StartTime.After(now) {
			detail.UpcomingShows = append(detail.UpcomingShows, entry)
		} else {
			detail.PastShows = append(detail.PastShows, entry)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate venue shows", err)
	}

	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)
	return detail, nil
}
