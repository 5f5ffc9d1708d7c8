package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is invalid"},
		{Field: "password", Message: "password is required"},
	}

	assert.Equal(t, "email: email is invalid; password: password is required", errs.Error())
	assert.Equal(t, map[string]string{
		"email":    "email is invalid",
		"password": "password is required",
	}, errs.ToMap())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2026-03-02")
	assert.True(t, ok)
	assert.Equal(t, 2026, d.Year())

	_, ok = IsValidDate("02-03-2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-13-40")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2026-03-02T09:00:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2026-03-02T09:00:00+07:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2026-03-02 09:00")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("WFH", []string{"Office", "WFH", "Field"}))
	assert.False(t, IsInSlice("Remote", []string{"Office", "WFH", "Field"}))
}
