package handlers

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// PhotoLister lists the photo catalog.
type PhotoLister interface {
	Photos(ctx context.Context) ([]models.Photo, error)
}

// SongLister lists the song catalog.
type SongLister interface {
	Songs(ctx context.Context) ([]models.Song, error)
}

// NewPhotosHandler returns an HTTP handler for the photo catalog.
// @Summary List photos
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Photo "Photos ascending by order"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /photos [get]
func NewPhotosHandler(svc PhotoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photos, err := svc.Photos(r.Context())
		if err != nil {
			writeError(w, r, "get photos", err)
			return
		}
		writeJSON(w, http.StatusOK, photos)
	}
}

// NewSongsHandler returns an HTTP handler for the song catalog.
// @Summary List songs
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Song "Songs ascending by order"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /songs [get]
func NewSongsHandler(svc SongLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		songs, err := svc.Songs(r.Context())
		if err != nil {
			writeError(w, r, "get songs", err)
			return
		}
		writeJSON(w, http.StatusOK, songs)
	}
}
