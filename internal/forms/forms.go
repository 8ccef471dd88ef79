// Package forms decodes url-encoded form submissions into typed values.
// Repeated fields (genres) become slices, checkbox presence becomes a bool,
// and show start times accept both the classic and datetime-local shapes.
package forms

import (
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/gorilla/schema"

	"gigboard/internal/store"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.ZeroEmpty(true)
	d.RegisterConverter(time.Time{}, convertTime)
	d.RegisterConverter(false, convertCheckbox)
	return d
}

// startTimeLayouts are the accepted shapes of a show start time: the
// rendered `2006-01-02 15:04:05` form and what a datetime-local input sends.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

func convertTime(value string) reflect.Value {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return reflect.ValueOf(t)
		}
	}
	return reflect.Value{}
}

// Browsers submit a checkbox only when it is checked, with "on" (or "y" from
// older form libraries) as the value. Absence decodes to the zero value false.
func convertCheckbox(value string) reflect.Value {
	switch strings.ToLower(value) {
	case "on", "y", "yes", "true", "1":
		return reflect.ValueOf(true)
	case "", "n", "no", "false", "0":
		return reflect.ValueOf(false)
	}
	return reflect.Value{}
}

// VenueForm mirrors the venue create/edit form fields.
type VenueForm struct {
	Name               string   `schema:"name"`
	City               string   `schema:"city"`
	State              string   `schema:"state"`
	Address            string   `schema:"address"`
	Phone              string   `schema:"phone"`
	Genres             []string `schema:"genres"`
	FacebookLink       string   `schema:"facebook_link"`
	ImageLink          string   `schema:"image_link"`
	WebsiteLink        string   `schema:"website_link"`
	SeekingTalent      bool     `schema:"seeking_talent"`
	SeekingDescription string   `schema:"seeking_description"`
}

// ArtistForm mirrors the artist create/edit form fields.
type ArtistForm struct {
	Name               string   `schema:"name"`
	City               string   `schema:"city"`
	State              string   `schema:"state"`
	Phone              string   `schema:"phone"`
	Genres             []string `schema:"genres"`
	FacebookLink       string   `schema:"facebook_link"`
	ImageLink          string   `schema:"image_link"`
	WebsiteLink        string   `schema:"website_link"`
	SeekingVenue       bool     `schema:"seeking_venue"`
	SeekingDescription string   `schema:"seeking_description"`
}

// ShowForm mirrors the show creation form fields.
type ShowForm struct {
	ArtistID  int64     `schema:"artist_id"`
	VenueID   int64     `schema:"venue_id"`
	StartTime time.Time `schema:"start_time"`
}

// DecodeVenue binds and validates a venue form submission.
func DecodeVenue(values url.Values) (*VenueForm, error) {
	var form VenueForm
	if err := decode(&form, values); err != nil {
		return nil, err
	}

	fields := map[string]string{}
	requireString(fields, "name", form.Name)
	requireString(fields, "city", form.City)
	requireString(fields, "state", form.State)
	if len(fields) > 0 {
		return nil, &store.ValidationError{Fields: fields}
	}
	return &form, nil
}

// DecodeArtist binds and validates an artist form submission.
func DecodeArtist(values url.Values) (*ArtistForm, error) {
	var form ArtistForm
	if err := decode(&form, values); err != nil {
		return nil, err
	}

	fields := map[string]string{}
	requireString(fields, "name", form.Name)
	requireString(fields, "city", form.City)
	requireString(fields, "state", form.State)
	if len(fields) > 0 {
		return nil, &store.ValidationError{Fields: fields}
	}
	return &form, nil
}

// DecodeShow binds and validates a show form submission.
func DecodeShow(values url.Values) (*ShowForm, error) {
	var form ShowForm
	if err := decode(&form, values); err != nil {
		return nil, err
	}

	fields := map[string]string{}
	if form.ArtistID == 0 {
		fields["artist_id"] = "is required"
	}
	if form.VenueID == 0 {
		fields["venue_id"] = "is required"
	}
	if form.StartTime.IsZero() {
		fields["start_time"] = "is required"
	}
	if len(fields) > 0 {
		return nil, &store.ValidationError{Fields: fields}
	}
	return &form, nil
}

func decode(dst any, values url.Values) error {
	err := decoder.Decode(dst, values)
	if err == nil {
		return nil
	}

	fields := map[string]string{}
	if multi, ok := err.(schema.MultiError); ok {
		for name := range multi {
			fields[name] = "is invalid"
		}
	} else {
		fields["form"] = "is invalid"
	}
	return &store.ValidationError{Fields: fields}
}

func requireString(fields map[string]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		fields[name] = "is required"
	}
}

// Venue converts the bound form into the persisted shape.
func (f *VenueForm) Venue() *store.Venue {
	genres := f.Genres
	if genres == nil {
		genres = []string{}
	}
	return &store.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             genres,
		FacebookLink:       f.FacebookLink,
		Website:            f.WebsiteLink,
		ImageLink:          f.ImageLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

// Artist converts the bound form into the persisted shape.
func (f *ArtistForm) Artist() *store.Artist {
	genres := f.Genres
	if genres == nil {
		genres = []string{}
	}
	return &store.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             genres,
		FacebookLink:       f.FacebookLink,
		Website:            f.WebsiteLink,
		ImageLink:          f.ImageLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

// Show converts the bound form into the persisted shape.
func (f *ShowForm) Show() *store.Show {
	return &store.Show{
		ArtistID:  f.ArtistID,
		VenueID:   f.VenueID,
		StartTime: f.StartTime,
	}
}

// VenueFormFromRecord populates an edit form from a stored venue.
func VenueFormFromRecord(v *store.Venue) *VenueForm {
	return &VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		FacebookLink:       v.FacebookLink,
		ImageLink:          v.ImageLink,
		WebsiteLink:        v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// ArtistFormFromRecord populates an edit form from a stored artist.
func ArtistFormFromRecord(a *store.Artist) *ArtistForm {
	return &ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		FacebookLink:       a.FacebookLink,
		ImageLink:          a.ImageLink,
		WebsiteLink:        a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}
