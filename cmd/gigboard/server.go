package main

import (
	"fmt"
	"net/http"

	"gigboard/internal/app/artists"
	"gigboard/internal/app/shows"
	"gigboard/internal/app/venues"
	"gigboard/internal/middleware"
	"gigboard/internal/store"
	"gigboard/internal/web"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) (http.Handler, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("build renderer: %w", err)
	}

	venueSvc := venues.New(dataStore)
	artistSvc := artists.New(dataStore)
	showSvc := shows.New(dataStore)

	server := web.New(venueSvc, artistSvc, showSvc, renderer, web.NewFlash([]byte(cfg.SessionSecret)))

	handler := server.Routes()
	handler = middleware.Recovery(server.ServeError)(handler)
	handler = middleware.RequestLogging()(handler)
	return handler, nil
}
