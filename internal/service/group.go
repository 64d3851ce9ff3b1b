package service

import (
	"errors"
	"fmt"

	"github.com/anshsahu01/nudge/internal/groupcode"
	"github.com/anshsahu01/nudge/internal/model"
	"github.com/anshsahu01/nudge/internal/repository"
	"github.com/anshsahu01/nudge/internal/validation"
)

var (
	ErrInvalidGroupCode = errors.New("group code must be 6 uppercase letters or digits")
	ErrNameRequired     = errors.New("display name is required")
)

type GroupService struct {
	preferenceRepository repository.PreferenceRepository
}

func NewGroupService(preferenceRepository repository.PreferenceRepository) *GroupService {
	return &GroupService{preferenceRepository: preferenceRepository}
}

// Create starts a new group: generates a fresh code and stores it as the
// user's membership. Codes are not checked against existing groups; a
// group exists by virtue of goals carrying its code.
func (s *GroupService) Create(userID, userName string) (*model.Preference, error) {
	err := validation.ValidateName(userName)
	if err != nil {
		return nil, ErrNameRequired
	}

	pref := &model.Preference{
		UserID:    userID,
		GroupCode: groupcode.Generate(),
		UserName:  userName,
	}

	err = s.preferenceRepository.Put(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to save membership: %w", err)
	}

	return pref, nil
}

// Join stores an existing group's code as the user's membership. Only the
// code's shape is validated; an unknown code simply yields an empty feed.
func (s *GroupService) Join(userID, userName, code string) (*model.Preference, error) {
	err := validation.ValidateName(userName)
	if err != nil {
		return nil, ErrNameRequired
	}

	code = groupcode.Normalize(code)
	if !groupcode.Valid(code) {
		return nil, ErrInvalidGroupCode
	}

	pref := &model.Preference{
		UserID:    userID,
		GroupCode: code,
		UserName:  userName,
	}

	err = s.preferenceRepository.Put(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to save membership: %w", err)
	}

	return pref, nil
}

// Membership returns the user's cached group membership, nil without
// error when the user has not joined a group.
func (s *GroupService) Membership(userID string) (*model.Preference, error) {
	pref, err := s.preferenceRepository.ByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return pref, nil
}
