package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/worklane/leave-backend-go/internal/pkg/validator"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, validator.IsEmpty(""))
	assert.True(t, validator.IsEmpty("   "))
	assert.False(t, validator.IsEmpty("x"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, validator.IsValidUUID(uuid.Must(uuid.NewV7()).String()))

	// Only version 7 ids pass; v4 and arbitrary strings do not.
	assert.False(t, validator.IsValidUUID(uuid.NewString()))
	assert.False(t, validator.IsValidUUID("Annual Leave"))
	assert.False(t, validator.IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, validator.IsValidDate("2026-08-30"))
	assert.False(t, validator.IsValidDate("2026-13-01"))
	assert.False(t, validator.IsValidDate("30-08-2026"))
	assert.False(t, validator.IsValidDate("not a date"))
}

func TestIsValidStatus(t *testing.T) {
	for code := 0; code <= 4; code++ {
		assert.True(t, validator.IsValidStatus(code))
	}
	assert.False(t, validator.IsValidStatus(-1))
	assert.False(t, validator.IsValidStatus(5))
}
