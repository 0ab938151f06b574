package catalog

import (
	"goflix/internal/models"
	"goflix/internal/repositories"

	"github.com/sirupsen/logrus"
)

// Service owns the media repository and is the only way the rest of the
// program touches the catalog.
type Service struct {
	repo   *repositories.MediaRepository
	logger *logrus.Logger
}

// NewService creates a catalog service around the given repository.
func NewService(repo *repositories.MediaRepository, logger *logrus.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// AddMedia saves a new catalog entry and returns it with its assigned id.
func (s *Service) AddMedia(media models.Media) models.Media {
	saved := s.repo.Save(media)
	s.logger.WithFields(logrus.Fields{
		"id":    saved.GetID(),
		"type":  saved.Type(),
		"title": saved.Info().Title,
	}).Info("Media added to catalog")
	return saved
}

// GetMediaByID looks up a catalog entry; absence is reported via the bool.
func (s *Service) GetMediaByID(id int) (models.Media, bool) {
	return s.repo.FindByID(id)
}

// GetAllMedia returns every catalog entry in insertion order.
func (s *Service) GetAllMedia() []models.Media {
	return s.repo.FindAll()
}

// GetAllMovies returns the movie subset in insertion order.
func (s *Service) GetAllMovies() []models.Media {
	return s.repo.FindAllMovies()
}

// GetAllTvShows returns the tv show subset in insertion order.
func (s *Service) GetAllTvShows() []models.Media {
	return s.repo.FindAllTvShows()
}

// UpdateMedia replaces a whole catalog entry. There is no partial update:
// callers fetch, mutate and re-save. A missing id fails with ErrNotFound.
func (s *Service) UpdateMedia(media models.Media) error {
	if err := s.repo.Update(media); err != nil {
		return err
	}
	s.logger.WithField("id", media.GetID()).Info("Media updated")
	return nil
}

// DeleteMedia removes a catalog entry, failing with ErrNotFound when the id
// is absent. Profile lists referencing the id are not touched; they drop
// the dangling reference on read.
func (s *Service) DeleteMedia(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.WithField("id", id).Info("Media deleted")
	return nil
}
