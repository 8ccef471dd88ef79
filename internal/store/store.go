package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Store provides persistence backed by Postgres.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// NewWithClock is like New but lets tests pin the clock used for the
// past/upcoming split.
func NewWithClock(db *sql.DB, now func() time.Time) *Store {
	return &Store{db: db, now: now}
}

// ShowEntry is one row of a past/upcoming schedule. The counterpart is the
// artist on a venue page and the venue on an artist page.
type ShowEntry struct {
	CounterpartID        int64
	CounterpartName      string
	CounterpartImageLink string
	StartTime            time.Time
}

// SearchResult summarises one match of a venue or artist search.
type SearchResult struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// SearchResults carries the match count alongside the matches.
type SearchResults struct {
	Count int
	Data  []SearchResult
}

// Genres are persisted as a single comma-delimited column.

func joinGenres(genres []string) string {
	return strings.Join(genres, ",")
}

func splitGenres(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, ",")
}

// likePattern turns a raw search term into an ILIKE pattern matching the term
// as a literal substring. Empty terms match everything.
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
