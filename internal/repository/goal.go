package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/anshsahu01/nudge/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(goalID string) (*model.Goal, error)
	// SnapshotByGroup returns the full current set of goals for a group.
	// Ordering is left to the caller; the derived-state engine sorts.
	SnapshotByGroup(groupCode string) ([]model.Goal, error)
	// SetCompleted flips completion and sets or clears the completion
	// timestamp in the same statement, so the two never disagree.
	SetCompleted(goalID string, completed bool, completedAt *time.Time) error
	Delete(userID, goalID string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, text, due_date, completed, user_id, user_name, user_email, group_code, created_at, completed_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.Text,
		goal.DueDate,
		goal.Completed,
		goal.UserID,
		goal.UserName,
		goal.UserEmail,
		goal.GroupCode,
		goal.CreatedAt,
		goal.CompletedAt,
	)

	return err
}

func (r *goalRepository) ByID(goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1`

	err := r.db.Get(goal, query, goalID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) SnapshotByGroup(groupCode string) ([]model.Goal, error) {
	var goals []model.Goal
	query := `SELECT * FROM goals WHERE group_code = $1`

	err := r.db.Select(&goals, query, groupCode)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) SetCompleted(goalID string, completed bool, completedAt *time.Time) error {
	query := `UPDATE goals SET completed = $1, completed_at = $2 WHERE id = $3`

	result, err := r.db.Exec(query, completed, completedAt, goalID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) Delete(userID, goalID string) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, goalID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}
