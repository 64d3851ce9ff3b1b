package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/anshsahu01/nudge/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrPreferenceNotFound = errors.New("preference not found")
)

// PreferenceRepository stores the per-user group membership cache: the
// group code and display name a returning user resumes with.
type PreferenceRepository interface {
	ByUserID(userID string) (*model.Preference, error)
	Put(pref *model.Preference) error
	Clear(userID string) error
}

type preferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) ByUserID(userID string) (*model.Preference, error) {
	pref := &model.Preference{}
	query := `SELECT * FROM preferences WHERE user_id = $1`

	err := r.db.Get(pref, query, userID)
	if err == sql.ErrNoRows {
		return nil, ErrPreferenceNotFound
	}

	return pref, err
}

func (r *preferenceRepository) Put(pref *model.Preference) error {
	pref.UpdatedAt = time.Now()
	query := `INSERT INTO preferences (user_id, group_code, user_name, updated_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (user_id) DO UPDATE SET group_code = $2, user_name = $3, updated_at = $4`

	_, err := r.db.Exec(query, pref.UserID, pref.GroupCode, pref.UserName, pref.UpdatedAt)
	return err
}

func (r *preferenceRepository) Clear(userID string) error {
	query := `DELETE FROM preferences WHERE user_id = $1`

	// Clearing an absent preference is not an error; sign-out is idempotent.
	_, err := r.db.Exec(query, userID)
	return err
}
