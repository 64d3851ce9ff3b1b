package service

import (
	"time"

	"github.com/anshsahu01/nudge/internal/model"
	"github.com/anshsahu01/nudge/internal/repository"
)

type mockGoalRepo struct {
	goals map[string]*model.Goal
}

func newMockGoalRepo() *mockGoalRepo {
	return &mockGoalRepo{goals: make(map[string]*model.Goal)}
}

func (m *mockGoalRepo) Create(goal *model.Goal) error {
	g := *goal
	m.goals[goal.ID] = &g
	return nil
}

func (m *mockGoalRepo) ByID(goalID string) (*model.Goal, error) {
	g, ok := m.goals[goalID]
	if !ok {
		return nil, repository.ErrGoalNotFound
	}
	copied := *g
	return &copied, nil
}

func (m *mockGoalRepo) SnapshotByGroup(groupCode string) ([]model.Goal, error) {
	var out []model.Goal
	for _, g := range m.goals {
		if g.GroupCode == groupCode {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (m *mockGoalRepo) SetCompleted(goalID string, completed bool, completedAt *time.Time) error {
	g, ok := m.goals[goalID]
	if !ok {
		return repository.ErrGoalNotFound
	}
	g.Completed = completed
	g.CompletedAt = completedAt
	return nil
}

func (m *mockGoalRepo) Delete(userID, goalID string) error {
	g, ok := m.goals[goalID]
	if !ok || g.UserID != userID {
		return repository.ErrGoalNotFound
	}
	delete(m.goals, goalID)
	return nil
}

type mockPreferenceRepo struct {
	prefs map[string]*model.Preference
}

func newMockPreferenceRepo() *mockPreferenceRepo {
	return &mockPreferenceRepo{prefs: make(map[string]*model.Preference)}
}

func (m *mockPreferenceRepo) ByUserID(userID string) (*model.Preference, error) {
	p, ok := m.prefs[userID]
	if !ok {
		return nil, repository.ErrPreferenceNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockPreferenceRepo) Put(pref *model.Preference) error {
	p := *pref
	m.prefs[pref.UserID] = &p
	return nil
}

func (m *mockPreferenceRepo) Clear(userID string) error {
	delete(m.prefs, userID)
	return nil
}

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u := *user
	m.users[user.ID] = &u
	return nil
}

func (m *mockUserRepo) ByID(id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepo) ByEmail(email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepo) Update(user *model.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	u := *user
	m.users[user.ID] = &u
	return nil
}

func (m *mockUserRepo) Delete(id string) error {
	if _, ok := m.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}
