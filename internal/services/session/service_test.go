package session_test

import (
	"io"
	"testing"

	"goflix/internal/models"
	"goflix/internal/repositories"
	"goflix/internal/services/account"
	"goflix/internal/services/catalog"
	"goflix/internal/services/session"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T) (*session.Service, *account.Service) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cat := catalog.NewService(repositories.NewMediaRepository(), logger)
	acc := account.NewService(repositories.NewUserRepository(), cat, logger)
	return session.NewService(acc, 0, logger), acc
}

func TestLoginScenario(t *testing.T) {
	svc, acc := newTestSessionService(t)
	require.NoError(t, acc.AddUser(models.NewUser("Ana", "ana@x.com", "supersecret")))

	sess, err := svc.Login("ana@x.com", "supersecret")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)

	user, ok := svc.GetLoggedInUser(sess.Token)
	require.True(t, ok)
	assert.Equal(t, "Ana", user.Name)

	// A wrong password fails and issues nothing.
	_, err = svc.Login("ana@x.com", "wrongpass")
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestAuthenticateDoesNotCreateSessions(t *testing.T) {
	svc, acc := newTestSessionService(t)
	require.NoError(t, acc.AddUser(models.NewUser("Ana", "ana@x.com", "supersecret")))

	user, ok := svc.Authenticate("ana@x.com", "supersecret")
	require.True(t, ok)
	assert.Equal(t, "ana@x.com", user.Email)

	_, ok = svc.Authenticate("ana@x.com", "nope")
	assert.False(t, ok)

	_, ok = svc.Authenticate("unknown@x.com", "supersecret")
	assert.False(t, ok)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	svc, acc := newTestSessionService(t)
	require.NoError(t, acc.AddUser(models.NewUser("Ana", "ana@x.com", "supersecret")))

	sess, err := svc.Login("ana@x.com", "supersecret")
	require.NoError(t, err)

	svc.Logout(sess.Token)
	_, ok := svc.GetLoggedInUser(sess.Token)
	assert.False(t, ok)

	// Logging out twice is harmless.
	svc.Logout(sess.Token)
}

func TestUnknownTokenReportsAbsence(t *testing.T) {
	svc, _ := newTestSessionService(t)
	_, ok := svc.GetLoggedInUser("no-such-token")
	assert.False(t, ok)
}

func TestSessionSurvivesOtherLogins(t *testing.T) {
	svc, acc := newTestSessionService(t)
	require.NoError(t, acc.AddUser(models.NewUser("Ana", "ana@x.com", "supersecret")))
	require.NoError(t, acc.AddUser(models.NewUser("Bob", "bob@x.com", "alsosecret")))

	anaSess, err := svc.Login("ana@x.com", "supersecret")
	require.NoError(t, err)
	bobSess, err := svc.Login("bob@x.com", "alsosecret")
	require.NoError(t, err)

	ana, ok := svc.GetLoggedInUser(anaSess.Token)
	require.True(t, ok)
	assert.Equal(t, "Ana", ana.Name)

	bob, ok := svc.GetLoggedInUser(bobSess.Token)
	require.True(t, ok)
	assert.Equal(t, "Bob", bob.Name)
}
