package web

import (
	"fmt"
	"net/http"

	"gigboard/internal/forms"
)

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.ListByLocation(r.Context())
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "venues", &venueListPage{
		page:  s.newPage(w, r),
		Areas: areas,
	})
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")
	results, err := s.venues.Search(r.Context(), term)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "search_venues", &venueSearchPage{
		page:       s.newPage(w, r),
		SearchTerm: term,
		Results:    results,
	})
}

func (s *Server) handleVenueDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	detail, err := s.venues.Detail(r.Context(), id)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "show_venue", &venueDetailPage{
		page:  s.newPage(w, r),
		Venue: detail,
	})
}

func (s *Server) handleNewVenueForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "new_venue", &venueFormPage{
		page:         s.newPage(w, r),
		Form:         &forms.VenueForm{},
		GenreChoices: genreChoices,
	})
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	form, err := forms.DecodeVenue(r.PostForm)
	if err != nil {
		fields, _ := validationFields(err)
		s.render(w, r, http.StatusUnprocessableEntity, "new_venue", &venueFormPage{
			page:         s.newPage(w, r),
			Form:         partialVenueForm(r),
			GenreChoices: genreChoices,
			Errors:       fields,
		})
		return
	}

	venue := form.Venue()
	if err := s.venues.Create(r.Context(), venue); err != nil {
		s.flash.Add(w, r, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	s.flash.Add(w, r, fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	venue, err := s.venues.Get(r.Context(), id)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}

	if err := s.venues.Delete(r.Context(), id); err != nil {
		s.flash.Add(w, r, "Venue was not deleted successfully.")
		s.renderFailure(w, r, err)
		return
	}

	s.flash.Add(w, r, fmt.Sprintf("Venue %s was deleted successfully!", venue.Name))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	venue, err := s.venues.Get(r.Context(), id)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "edit_venue", &venueFormPage{
		page:         s.newPage(w, r),
		Form:         forms.VenueFormFromRecord(venue),
		GenreChoices: genreChoices,
		RecordID:     id,
	})
}

func (s *Server) handleEditVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	form, err := forms.DecodeVenue(r.PostForm)
	if err != nil {
		fields, _ := validationFields(err)
		s.render(w, r, http.StatusUnprocessableEntity, "edit_venue", &venueFormPage{
			page:         s.newPage(w, r),
			Form:         partialVenueForm(r),
			GenreChoices: genreChoices,
			RecordID:     id,
			Errors:       fields,
		})
		return
	}

	if err := s.venues.Update(r.Context(), id, form.Venue()); err != nil {
		if _, ok := validationFields(err); !ok {
			s.flash.Add(w, r, fmt.Sprintf("Oops! Venue %s details were not updated.", form.Name))
		}
		s.renderFailure(w, r, err)
		return
	}

	s.flash.Add(w, r, fmt.Sprintf("Venue %s details updated successfully.", form.Name))
	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}

// partialVenueForm echoes the raw submission back into the re-rendered form
// when validation fails, so the user does not lose what they typed.
func partialVenueForm(r *http.Request) *forms.VenueForm {
	return &forms.VenueForm{
		Name:               r.PostForm.Get("name"),
		City:               r.PostForm.Get("city"),
		State:              r.PostForm.Get("state"),
		Address:            r.PostForm.Get("address"),
		Phone:              r.PostForm.Get("phone"),
		Genres:             r.PostForm["genres"],
		FacebookLink:       r.PostForm.Get("facebook_link"),
		ImageLink:          r.PostForm.Get("image_link"),
		WebsiteLink:        r.PostForm.Get("website_link"),
		SeekingTalent:      r.PostForm.Get("seeking_talent") != "",
		SeekingDescription: r.PostForm.Get("seeking_description"),
	}
}
