package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gigboard/internal/store"
)

// seedDemoData fills an empty database with a small set of venues, artists,
// and shows so a fresh instance renders populated pages. It is a no-op once
// any venue exists.
func seedDemoData(ctx context.Context, db *sql.DB, dataStore *store.Store) error {
	var count int
	if err := db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM venues
	`).Scan(&count); err != nil {
		return fmt.Errorf("count venues: %w", err)
	}
	if count > 0 {
		return nil
	}

	demoVenues := []*store.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			Genres:             []string{"Jazz", "Reggae", "Classical", "Folk"},
			Website:            "https://www.themusicalhop.com",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			Genres:       []string{"Classical", "R&B", "Hip-Hop"},
			Website:      "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		},
	}
	for _, v := range demoVenues {
		if err := dataStore.CreateVenue(ctx, v); err != nil {
			return fmt.Errorf("seed venue %q: %w", v.Name, err)
		}
	}

	demoArtists := []*store.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             []string{"Rock n Roll"},
			Website:            "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name:   "Matt Quevedo",
			City:   "New York",
			State:  "NY",
			Phone:  "300-400-5000",
			Genres: []string{"Jazz"},
		},
		{
			Name:   "The Wild Sax Band",
			City:   "San Francisco",
			State:  "CA",
			Phone:  "432-325-5432",
			Genres: []string{"Jazz", "Classical"},
		},
	}
	for _, a := range demoArtists {
		if err := dataStore.CreateArtist(ctx, a); err != nil {
			return fmt.Errorf("seed artist %q: %w", a.Name, err)
		}
	}

	now := time.Now()
	demoShows := []*store.Show{
		{VenueID: demoVenues[0].ID, ArtistID: demoArtists[0].ID, StartTime: now.AddDate(-1, 0, 0)},
		{VenueID: demoVenues[2].ID, ArtistID: demoArtists[1].ID, StartTime: now.AddDate(0, -6, 0)},
		{VenueID: demoVenues[2].ID, ArtistID: demoArtists[2].ID, StartTime: now.AddDate(0, 1, 0)},
		{VenueID: demoVenues[2].ID, ArtistID: demoArtists[2].ID, StartTime: now.AddDate(0, 1, 7)},
		{VenueID: demoVenues[1].ID, ArtistID: demoArtists[1].ID, StartTime: now.AddDate(0, 2, 0)},
	}
	for _, sh := range demoShows {
		if err := dataStore.CreateShow(ctx, sh); err != nil {
			return fmt.Errorf("seed show: %w", err)
		}
	}

	return nil
}
