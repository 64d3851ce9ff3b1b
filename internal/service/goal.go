package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anshsahu01/nudge/internal/feed"
	"github.com/anshsahu01/nudge/internal/model"
	"github.com/anshsahu01/nudge/internal/repository"
	"github.com/anshsahu01/nudge/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrGoalTextRequired = errors.New("goal text is required")
	ErrInvalidDueDate   = errors.New("invalid due date")
	ErrNotGoalOwner     = errors.New("goal belongs to another user")
)

type GoalService struct {
	repo repository.GoalRepository
	hub  *feed.Hub
}

func NewGoalService(repo repository.GoalRepository, hub *feed.Hub) *GoalService {
	return &GoalService{repo: repo, hub: hub}
}

// Add creates a goal with the creating user's identity denormalized onto
// it. The creation timestamp is server-assigned.
func (s *GoalService) Add(user *model.User, userName, groupCode, text, dueDate string) (*model.Goal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrGoalTextRequired
	}

	err := validation.ValidateDueDate(dueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDueDate, err.Error())
	}

	goal := &model.Goal{
		ID:        uuid.New().String(),
		Text:      text,
		DueDate:   dueDate,
		Completed: false,
		UserID:    user.ID,
		UserName:  userName,
		UserEmail: user.Email,
		GroupCode: groupCode,
		CreatedAt: time.Now(),
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.hub.Notify(goal.GroupCode)
	return goal, nil
}

// Toggle flips a goal's completion. The completion timestamp is set when
// completing and cleared when reverting, in the same write.
func (s *GoalService) Toggle(userID, goalID string) (*model.Goal, error) {
	goal, err := s.repo.ByID(goalID)
	if err != nil {
		return nil, err
	}

	if goal.UserID != userID {
		return nil, ErrNotGoalOwner
	}

	goal.Completed = !goal.Completed
	if goal.Completed {
		now := time.Now()
		goal.CompletedAt = &now
	} else {
		goal.CompletedAt = nil
	}

	err = s.repo.SetCompleted(goal.ID, goal.Completed, goal.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle goal: %w", err)
	}

	s.hub.Notify(goal.GroupCode)
	return goal, nil
}

// Delete removes a goal owned by the acting user.
func (s *GoalService) Delete(userID, goalID string) error {
	goal, err := s.repo.ByID(goalID)
	if err != nil {
		return err
	}

	err = s.repo.Delete(userID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			// Row exists but the owner filter excluded it.
			return ErrNotGoalOwner
		}
		return err
	}

	s.hub.Notify(goal.GroupCode)
	return nil
}

// Snapshot returns the full current set of goals for a group.
func (s *GoalService) Snapshot(groupCode string) ([]model.Goal, error) {
	return s.repo.SnapshotByGroup(groupCode)
}
