package utils

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomString(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-z]{9}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		s := GenerateRandomString(9)
		assert.Regexp(t, re, s)
		seen[s] = true
	}
	assert.Greater(t, len(seen), 1)
	assert.Equal(t, "", GenerateRandomString(0))
}

type sample struct {
	Pseudo   string `validate:"required"`
	Password string `validate:"required,max=4"`
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(&sample{Password: "toolong"})
	require.Error(t, err)

	details := GetValidationErrors(err)
	assert.Equal(t, "is required", details["Pseudo"])
	assert.Equal(t, "must be at most 4 characters", details["Password"])

	assert.NoError(t, ValidateStruct(&sample{Pseudo: "a", Password: "b"}))
}

func TestGetValidationErrors_NonValidatorError(t *testing.T) {
	details := GetValidationErrors(errors.New("boom"))
	assert.Equal(t, map[string]string{"_": "boom"}, details)
}
