package account

import (
	"fmt"

	"goflix/internal/models"
	"goflix/internal/repositories"

	"github.com/sirupsen/logrus"
)

// MediaLookup resolves my-list references into catalog entries. The catalog
// service satisfies it.
type MediaLookup interface {
	GetMediaByID(id int) (models.Media, bool)
}

// Service owns the user repository. Profiles are embedded in their user, so
// every profile mutation goes through the aggregate and ends in a full
// Update of the user record.
type Service struct {
	repo    *repositories.UserRepository
	catalog MediaLookup
	logger  *logrus.Logger
}

// NewService creates an account service. The catalog lookup is used only to
// resolve my-list entries on read.
func NewService(repo *repositories.UserRepository, catalog MediaLookup, logger *logrus.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// AddUser registers a user, failing with ErrDuplicateEmail when the email
// is already on file. Emails compare case-sensitively.
func (s *Service) AddUser(user *models.User) error {
	if _, exists := s.repo.FindByEmail(user.Email); exists {
		return fmt.Errorf("register %s: %w", user.Email, models.ErrDuplicateEmail)
	}
	s.repo.Save(user)
	s.logger.WithFields(logrus.Fields{
		"id":    user.ID,
		"email": user.Email,
	}).Info("User registered")
	return nil
}

// GetUserByID resolves a user or fails with ErrNotFound.
func (s *Service) GetUserByID(id int) (*models.User, error) {
	user, ok := s.repo.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("user id %d: %w", id, models.ErrNotFound)
	}
	return user, nil
}

// GetUserByEmail looks a user up by exact email; absence is reported via
// the bool.
func (s *Service) GetUserByEmail(email string) (*models.User, bool) {
	return s.repo.FindByEmail(email)
}

// GetAllUsers returns every registered user in registration order.
func (s *Service) GetAllUsers() []*models.User {
	return s.repo.FindAll()
}

// UpdateUser re-saves a user aggregate, failing with ErrNotFound when the
// id is absent.
func (s *Service) UpdateUser(user *models.User) error {
	return s.repo.Update(user)
}

// DeleteUser removes the user and, with it, every profile the user owns.
func (s *Service) DeleteUser(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.WithField("id", id).Info("User deleted")
	return nil
}

// GetProfilesByUserID returns the user's profiles in creation order.
func (s *Service) GetProfilesByUserID(userID int) ([]*models.Profile, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	return user.Profiles, nil
}

// GetProfileByID resolves one profile of the given user, failing with
// ErrProfileNotFound when the id does not belong to it.
func (s *Service) GetProfileByID(userID, profileID int) (*models.Profile, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	profile := user.ProfileByID(profileID)
	if profile == nil {
		return nil, fmt.Errorf("user %d profile %d: %w", userID, profileID, models.ErrProfileNotFound)
	}
	return profile, nil
}

// GetNextProfileID computes the id the user's next profile should take:
// max(existing)+1, or 1 for a user with no profiles. Unique per user only.
func (s *Service) GetNextProfileID(userID int) (int, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return 0, err
	}
	return user.NextProfileID(), nil
}

// AddProfileToUser appends the profile to the user and re-saves the
// aggregate.
func (s *Service) AddProfileToUser(userID int, profile *models.Profile) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}
	user.AddProfile(profile)
	if err := s.repo.Update(user); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"user":    userID,
		"profile": profile.ID,
		"name":    profile.Name,
	}).Info("Profile created")
	return nil
}

// RemoveProfile detaches the profile from its user and re-saves the
// aggregate. The profile's my-list disappears with it.
func (s *Service) RemoveProfile(userID, profileID int) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}
	if !user.RemoveProfile(profileID) {
		return fmt.Errorf("user %d profile %d: %w", userID, profileID, models.ErrProfileNotFound)
	}
	if err := s.repo.Update(user); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"user":    userID,
		"profile": profileID,
	}).Info("Profile removed")
	return nil
}

// AddToProfileMyList puts a media reference on the profile's list. Adding
// an id already on the list is a silent no-op.
func (s *Service) AddToProfileMyList(userID, profileID, mediaID int) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}
	profile := user.ProfileByID(profileID)
	if profile == nil {
		return fmt.Errorf("user %d profile %d: %w", userID, profileID, models.ErrProfileNotFound)
	}
	profile.AddToMyList(mediaID)
	return s.repo.Update(user)
}

// RemoveFromProfileMyList drops a media reference; an absent id is a
// silent no-op.
func (s *Service) RemoveFromProfileMyList(userID, profileID, mediaID int) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}
	profile := user.ProfileByID(profileID)
	if profile == nil {
		return fmt.Errorf("user %d profile %d: %w", userID, profileID, models.ErrProfileNotFound)
	}
	profile.RemoveFromMyList(mediaID)
	return s.repo.Update(user)
}

// GetProfileMyList resolves the profile's list against the catalog in
// insertion order. Ids whose media has been deleted from the catalog are
// skipped, so the list tolerates dangling references.
func (s *Service) GetProfileMyList(userID, profileID int) ([]models.Media, error) {
	profile, err := s.GetProfileByID(userID, profileID)
	if err != nil {
		return nil, err
	}
	list := make([]models.Media, 0, len(profile.MyList))
	for _, id := range profile.MyList {
		media, ok := s.catalog.GetMediaByID(id)
		if !ok {
			s.logger.WithFields(logrus.Fields{
				"user":    userID,
				"profile": profileID,
				"media":   id,
			}).Debug("Skipping my-list entry no longer in catalog")
			continue
		}
		list = append(list, media)
	}
	return list, nil
}
