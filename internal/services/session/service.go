package session

import (
	"fmt"
	"time"

	"goflix/internal/models"
	"goflix/internal/services/account"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

// Session is the handle returned by a successful login. The console keeps
// exactly one token at a time, which preserves the single interactive
// session model while leaving the service itself free of ambient state.
type Session struct {
	Token     string
	UserID    int
	CreatedAt time.Time
}

// Service authenticates users and tracks issued sessions. Tokens live in a
// go-cache store so a configured TTL expires idle sessions on its own.
type Service struct {
	accounts *account.Service
	sessions *cache.Cache
	logger   *logrus.Logger
}

// NewService creates a session service. A ttl of zero means sessions never
// expire.
func NewService(accounts *account.Service, ttl time.Duration, logger *logrus.Logger) *Service {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &Service{
		accounts: accounts,
		sessions: cache.New(ttl, 10*time.Minute),
		logger:   logger,
	}
}

// Authenticate scans all users for an exact email and password pair and
// returns the matching user. No session state changes on failure.
func (s *Service) Authenticate(email, password string) (*models.User, bool) {
	for _, user := range s.accounts.GetAllUsers() {
		if user.Email == email && user.Password == password {
			return user, true
		}
	}
	return nil, false
}

// Login authenticates and issues a session, failing with
// ErrInvalidCredentials when no user matches.
func (s *Service) Login(email, password string) (*Session, error) {
	user, ok := s.Authenticate(email, password)
	if !ok {
		return nil, fmt.Errorf("login %s: %w", email, models.ErrInvalidCredentials)
	}
	sess := &Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	s.sessions.SetDefault(sess.Token, sess)
	s.logger.WithFields(logrus.Fields{
		"user":  user.ID,
		"email": user.Email,
	}).Info("User logged in")
	return sess, nil
}

// Logout drops the session unconditionally; an unknown token is a no-op.
func (s *Service) Logout(token string) {
	s.sessions.Delete(token)
	s.logger.Debug("Session closed")
}

// GetLoggedInUser resolves the token to its user. Unknown and expired
// tokens, and sessions whose user has since been deleted, all report
// absence.
func (s *Service) GetLoggedInUser(token string) (*models.User, bool) {
	v, ok := s.sessions.Get(token)
	if !ok {
		return nil, false
	}
	sess := v.(*Session)
	user, err := s.accounts.GetUserByID(sess.UserID)
	if err != nil {
		return nil, false
	}
	return user, true
}
