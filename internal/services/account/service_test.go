package account_test

import (
	"io"
	"testing"
	"time"

	"goflix/internal/models"
	"goflix/internal/repositories"
	"goflix/internal/services/account"
	"goflix/internal/services/catalog"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices() (*account.Service, *catalog.Service) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cat := catalog.NewService(repositories.NewMediaRepository(), logger)
	acc := account.NewService(repositories.NewUserRepository(), cat, logger)
	return acc, cat
}

func addMovie(t *testing.T, cat *catalog.Service, title string) models.Media {
	t.Helper()
	return cat.AddMedia(&models.Movie{
		MediaInfo: models.MediaInfo{
			Title:       title,
			Category:    models.CategoryDrama,
			ReleaseDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		DurationMinutes: 90,
	})
}

func registerUser(t *testing.T, acc *account.Service, name, email string) *models.User {
	t.Helper()
	user := models.NewUser(name, email, "secret123")
	require.NoError(t, acc.AddUser(user))
	return user
}

func createProfile(t *testing.T, acc *account.Service, userID int, name string) *models.Profile {
	t.Helper()
	id, err := acc.GetNextProfileID(userID)
	require.NoError(t, err)
	profile := models.NewProfile(id, name, userID)
	require.NoError(t, acc.AddProfileToUser(userID, profile))
	return profile
}

func TestAddUserRejectsDuplicateEmail(t *testing.T) {
	acc, _ := newTestServices()
	registerUser(t, acc, "Ana", "ana@x.com")

	err := acc.AddUser(models.NewUser("Other Ana", "ana@x.com", "otherpass"))
	require.ErrorIs(t, err, models.ErrDuplicateEmail)
	assert.Len(t, acc.GetAllUsers(), 1)
}

func TestAddUserEmailComparisonIsCaseSensitive(t *testing.T) {
	acc, _ := newTestServices()
	registerUser(t, acc, "Ana", "ana@x.com")

	// Differs only in case, so it registers as a distinct account.
	err := acc.AddUser(models.NewUser("Ana Upper", "ANA@x.com", "otherpass"))
	require.NoError(t, err)
	assert.Len(t, acc.GetAllUsers(), 2)
}

func TestProfileOpsFailForUnknownUser(t *testing.T) {
	acc, _ := newTestServices()

	_, err := acc.GetProfilesByUserID(42)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = acc.GetNextProfileID(42)
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = acc.AddToProfileMyList(42, 1, 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetNextProfileIDIsPerUser(t *testing.T) {
	acc, _ := newTestServices()
	ana := registerUser(t, acc, "Ana", "ana@x.com")
	bob := registerUser(t, acc, "Bob", "bob@x.com")

	id, err := acc.GetNextProfileID(ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	createProfile(t, acc, ana.ID, "Kids")
	createProfile(t, acc, ana.ID, "Teens")

	id, err = acc.GetNextProfileID(ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	// Another user's numbering is independent, so both users may hold a
	// profile with the same id.
	bobProfile := createProfile(t, acc, bob.ID, "Main")
	assert.Equal(t, 1, bobProfile.ID)
}

func TestRemoveProfileScenario(t *testing.T) {
	acc, _ := newTestServices()
	ana := registerUser(t, acc, "Ana", "ana@x.com")
	kids := createProfile(t, acc, ana.ID, "Kids")
	createProfile(t, acc, ana.ID, "Teens")

	require.NoError(t, acc.RemoveProfile(ana.ID, kids.ID))

	profiles, err := acc.GetProfilesByUserID(ana.ID)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Teens", profiles[0].Name)

	_, err = acc.GetProfileByID(ana.ID, kids.ID)
	assert.ErrorIs(t, err, models.ErrProfileNotFound)
}

func TestRemoveMissingProfileFails(t *testing.T) {
	acc, _ := newTestServices()
	ana := registerUser(t, acc, "Ana", "ana@x.com")

	err := acc.RemoveProfile(ana.ID, 5)
	assert.ErrorIs(t, err, models.ErrProfileNotFound)
}

func TestMyListAddIsIdempotent(t *testing.T) {
	acc, cat := newTestServices()
	ana := registerUser(t, acc, "Ana", "ana@x.com")
	profile := createProfile(t, acc, ana.ID, "Main")
	matrix := addMovie(t, cat, "Matrix")

	require.NoError(t, acc.AddToProfileMyList(ana.ID, profile.ID, matrix.GetID()))
	require.NoError(t, acc.AddToProfileMyList(ana.ID, profile.ID, matrix.GetID()))

	list, err := acc.GetProfileMyList(ana.ID, profile.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Matrix", list[0].Info().Title)
}

func TestMyListRemoveAbsentIsNoOp(t *testing.T) {
	acc, cat := newTestServices()
	ana := registerUser(t, acc, "Ana", "ana@x.com")
	profile := createProfile(t, acc, ana.ID, "Main")
	matrix := addMovie(t, cat, "Matrix")
	require.NoError(t, acc.AddToProfileMyList(ana.ID, profile.ID, matrix.GetID()))

	require.NoError(t, acc.RemoveFromProfileMyList(ana.ID, profile.ID, 999))

	list, err := acc.GetProfileMyList(ana.ID, profile.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMyListPreservesInsertionOrder(t *testing.T) {
	acc, cat := newTestServices()
	ana := registerUser(t, acc, "Ana", "ana@x.com")
	profile := createProfile(t, acc, ana.ID, "Main")
	first := addMovie(t, cat, "First")
	second := addMovie(t, cat, "Second")

	require.NoError(t, acc.AddToProfileMyList(ana.ID, profile.ID, second.GetID()))
	require.NoError(t, acc.AddToProfileMyList(ana.ID, profile.ID, first.GetID()))

	list, err := acc.GetProfileMyList(ana.ID, profile.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Info().Title)
	assert.Equal(t, "First", list[1].Info().Title)
}

func TestMyListSkipsMediaDeletedFromCatalog(t *testing.T) {
	acc, cat := newTestServices()
	ana := registerUser(t, acc, "Ana", "ana@x.com")
	profile := createProfile(t, acc, ana.ID, "Main")
	matrix := addMovie(t, cat, "Matrix")
	other := addMovie(t, cat, "Other")
	require.NoError(t, acc.AddToProfileMyList(ana.ID, profile.ID, matrix.GetID()))
	require.NoError(t, acc.AddToProfileMyList(ana.ID, profile.ID, other.GetID()))

	require.NoError(t, cat.DeleteMedia(matrix.GetID()))

	list, err := acc.GetProfileMyList(ana.ID, profile.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Other", list[0].Info().Title)
}

func TestMyListOpsFailForForeignProfile(t *testing.T) {
	acc, cat := newTestServices()
	ana := registerUser(t, acc, "Ana", "ana@x.com")
	bob := registerUser(t, acc, "Bob", "bob@x.com")
	createProfile(t, acc, ana.ID, "Main")
	matrix := addMovie(t, cat, "Matrix")

	// Bob has no profile 1 of his own.
	err := acc.AddToProfileMyList(bob.ID, 1, matrix.GetID())
	assert.ErrorIs(t, err, models.ErrProfileNotFound)

	_, err = acc.GetProfileMyList(bob.ID, 1)
	assert.ErrorIs(t, err, models.ErrProfileNotFound)
}
