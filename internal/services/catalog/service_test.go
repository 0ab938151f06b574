package catalog_test

import (
	"io"
	"testing"

	"goflix/internal/models"
	"goflix/internal/repositories"
	"goflix/internal/services/catalog"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *catalog.Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return catalog.NewService(repositories.NewMediaRepository(), logger)
}

func TestServiceAddAndGet(t *testing.T) {
	svc := newTestService()

	saved := svc.AddMedia(movie("Matrix", "Wachowski", models.CategoryFantasy, 4.6, date(1999, 3, 31)))
	require.Equal(t, 1, saved.GetID())

	got, ok := svc.GetMediaByID(1)
	require.True(t, ok)
	assert.Equal(t, "Matrix", got.Info().Title)

	_, ok = svc.GetMediaByID(2)
	assert.False(t, ok)
}

func TestServiceListsSplitVariants(t *testing.T) {
	svc := newTestService()
	svc.AddMedia(movie("M", "X", models.CategoryDrama, 3, date(2001, 1, 1)))
	svc.AddMedia(show("S", models.CategoryDrama, 3, date(2002, 1, 1)))

	assert.Len(t, svc.GetAllMedia(), 2)
	assert.Equal(t, []string{"M"}, titles(svc.GetAllMovies()))
	assert.Equal(t, []string{"S"}, titles(svc.GetAllTvShows()))
}

func TestServiceUpdateReplacesWholeEntity(t *testing.T) {
	svc := newTestService()
	saved := svc.AddMedia(movie("Old", "X", models.CategoryDrama, 3, date(2001, 1, 1)))

	saved.Info().Title = "New"
	saved.Info().Rating = 4.2
	require.NoError(t, svc.UpdateMedia(saved))

	got, ok := svc.GetMediaByID(saved.GetID())
	require.True(t, ok)
	assert.Equal(t, "New", got.Info().Title)
	assert.Equal(t, 4.2, got.Info().Rating)
}

func TestServicePropagatesNotFound(t *testing.T) {
	svc := newTestService()

	ghost := movie("Ghost", "X", models.CategoryDrama, 3, date(2001, 1, 1))
	ghost.SetID(99)
	assert.ErrorIs(t, svc.UpdateMedia(ghost), models.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteMedia(99), models.ErrNotFound)
}
