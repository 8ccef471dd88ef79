package web

import (
	"gigboard/internal/forms"
	"gigboard/internal/store"
)

// genreChoices populates the genre checkboxes on the venue and artist forms.
var genreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

// page carries what the layout needs on every render.
type page struct {
	Flashes []string
}

type homePage struct {
	page
}

type venueListPage struct {
	page
	Areas []store.LocationGroup
}

type venueSearchPage struct {
	page
	SearchTerm string
	Results    *store.SearchResults
}

type venueDetailPage struct {
	page
	Venue *store.VenueDetail
}

type venueFormPage struct {
	page
	Form         *forms.VenueForm
	GenreChoices []string
	RecordID     int64
	Errors       map[string]string
}

type artistListPage struct {
	page
	Artists []store.ArtistRef
}

type artistSearchPage struct {
	page
	SearchTerm string
	Results    *store.SearchResults
}

type artistDetailPage struct {
	page
	Artist *store.ArtistDetail
}

type artistFormPage struct {
	page
	Form         *forms.ArtistForm
	GenreChoices []string
	RecordID     int64
	Errors       map[string]string
}

type showListPage struct {
	page
	Shows []store.ShowListing
}

type showFormPage struct {
	page
	Errors map[string]string
}

type errorPage struct {
	page
}
