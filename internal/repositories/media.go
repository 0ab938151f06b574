package repositories

import "goflix/internal/models"

// MediaRepository stores every catalog entry, movies and tv shows alike.
type MediaRepository struct {
	*Store[models.Media]
}

// NewMediaRepository creates an empty media repository.
func NewMediaRepository() *MediaRepository {
	return &MediaRepository{Store: NewStore[models.Media]()}
}

// FindAllMovies returns the movie subset in insertion order.
func (r *MediaRepository) FindAllMovies() []models.Media {
	var movies []models.Media
	for _, m := range r.FindAll() {
		if _, ok := m.(*models.Movie); ok {
			movies = append(movies, m)
		}
	}
	return movies
}

// FindAllTvShows returns the tv show subset in insertion order.
func (r *MediaRepository) FindAllTvShows() []models.Media {
	var shows []models.Media
	for _, m := range r.FindAll() {
		if _, ok := m.(*models.TvShow); ok {
			shows = append(shows, m)
		}
	}
	return shows
}
