package web

import (
	"errors"
	"net/http"

	"gigboard/internal/forms"
	"gigboard/internal/store"
)

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "shows", &showListPage{
		page:  s.newPage(w, r),
		Shows: shows,
	})
}

func (s *Server) handleNewShowForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "new_show", &showFormPage{page: s.newPage(w, r)})
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	form, err := forms.DecodeShow(r.PostForm)
	if err != nil {
		fields, _ := validationFields(err)
		s.render(w, r, http.StatusUnprocessableEntity, "new_show", &showFormPage{
			page:   s.newPage(w, r),
			Errors: fields,
		})
		return
	}

	if err := s.shows.Create(r.Context(), form.Show()); err != nil {
		var integrity *store.IntegrityError
		if errors.As(err, &integrity) {
			s.flash.Add(w, r, "An error occurred. Show could not be listed: the venue or artist does not exist.")
		} else {
			s.flash.Add(w, r, "An error occurred. Show could not be listed.")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	s.flash.Add(w, r, "Show was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
