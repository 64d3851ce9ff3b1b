package validation

import (
	"errors"
	"time"
)

// ValidateDueDate accepts an empty string (no due date) or a calendar
// date in fixed-width ISO form. The format matters: due dates are
// compared lexicographically downstream.
func ValidateDueDate(dueDate string) error {
	if dueDate == "" {
		return nil
	}

	_, err := time.Parse("2006-01-02", dueDate)
	if err != nil {
		return errors.New("due date must be in YYYY-MM-DD format")
	}

	return nil
}
