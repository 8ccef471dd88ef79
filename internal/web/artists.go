package web

import (
	"fmt"
	"net/http"

	"gigboard/internal/forms"
)

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "artists", &artistListPage{
		page:    s.newPage(w, r),
		Artists: artists,
	})
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")
	results, err := s.artists.Search(r.Context(), term)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "search_artists", &artistSearchPage{
		page:       s.newPage(w, r),
		SearchTerm: term,
		Results:    results,
	})
}

func (s *Server) handleArtistDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	detail, err := s.artists.Detail(r.Context(), id)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "show_artist", &artistDetailPage{
		page:   s.newPage(w, r),
		Artist: detail,
	})
}

func (s *Server) handleNewArtistForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "new_artist", &artistFormPage{
		page:         s.newPage(w, r),
		Form:         &forms.ArtistForm{},
		GenreChoices: genreChoices,
	})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	form, err := forms.DecodeArtist(r.PostForm)
	if err != nil {
		fields, _ := validationFields(err)
		s.render(w, r, http.StatusUnprocessableEntity, "new_artist", &artistFormPage{
			page:         s.newPage(w, r),
			Form:         partialArtistForm(r),
			GenreChoices: genreChoices,
			Errors:       fields,
		})
		return
	}

	artist := form.Artist()
	if err := s.artists.Create(r.Context(), artist); err != nil {
		s.flash.Add(w, r, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	s.flash.Add(w, r, fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleEditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "edit_artist", &artistFormPage{
		page:         s.newPage(w, r),
		Form:         forms.ArtistFormFromRecord(artist),
		GenreChoices: genreChoices,
		RecordID:     id,
	})
}

func (s *Server) handleEditArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	form, err := forms.DecodeArtist(r.PostForm)
	if err != nil {
		fields, _ := validationFields(err)
		s.render(w, r, http.StatusUnprocessableEntity, "edit_artist", &artistFormPage{
			page:         s.newPage(w, r),
			Form:         partialArtistForm(r),
			GenreChoices: genreChoices,
			RecordID:     id,
			Errors:       fields,
		})
		return
	}

	if err := s.artists.Update(r.Context(), id, form.Artist()); err != nil {
		if _, ok := validationFields(err); !ok {
			s.flash.Add(w, r, fmt.Sprintf("Oops! Artist %s details were not updated.", form.Name))
		}
		s.renderFailure(w, r, err)
		return
	}

	s.flash.Add(w, r, fmt.Sprintf("Artist %s details updated successfully.", form.Name))
	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}

func partialArtistForm(r *http.Request) *forms.ArtistForm {
	return &forms.ArtistForm{
		Name:               r.PostForm.Get("name"),
		City:               r.PostForm.Get("city"),
		State:              r.PostForm.Get("state"),
		Phone:              r.PostForm.Get("phone"),
		Genres:             r.PostForm["genres"],
		FacebookLink:       r.PostForm.Get("facebook_link"),
		ImageLink:          r.PostForm.Get("image_link"),
		WebsiteLink:        r.PostForm.Get("website_link"),
		SeekingVenue:       r.PostForm.Get("seeking_venue") != "",
		SeekingDescription: r.PostForm.Get("seeking_description"),
	}
}
