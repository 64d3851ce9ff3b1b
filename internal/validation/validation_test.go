package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("buddy@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("correct horse battery"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword("password12345678"))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ash"))
	assert.Error(t, ValidateName("   "))
}

func TestValidateDueDate(t *testing.T) {
	assert.NoError(t, ValidateDueDate(""))
	assert.NoError(t, ValidateDueDate("2024-01-05"))
	assert.Error(t, ValidateDueDate("05-01-2024"))
	assert.Error(t, ValidateDueDate("2024-13-40"))
	assert.Error(t, ValidateDueDate("tomorrow"))
}
