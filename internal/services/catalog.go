package services

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/mundo-divertido/internal/logger"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// CatalogRepository reads the static content catalog.
type CatalogRepository interface {
	GetAllPhotos(ctx context.Context) ([]models.Photo, error) // Photos ascending by order
	GetAllSongs(ctx context.Context) ([]models.Song, error)   // Songs ascending by order
}

// CatalogService serves the read-only photo and song catalog.
type CatalogService struct {
	repo CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Photos returns all photos ordered for display.
func (s *CatalogService) Photos(ctx context.Context) ([]models.Photo, error) {
	photos, err := s.repo.GetAllPhotos(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get photos", "error", err)
		return nil, err
	}
	if photos == nil {
		photos = []models.Photo{}
	}
	return photos, nil
}

// Songs returns all songs ordered for display.
func (s *CatalogService) Songs(ctx context.Context) ([]models.Song, error) {
	songs, err := s.repo.GetAllSongs(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get songs", "error", err)
		return nil, err
	}
	if songs == nil {
		songs = []models.Song{}
	}
	return songs, nil
}
