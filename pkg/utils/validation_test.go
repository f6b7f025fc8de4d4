package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Title  string   `validate:"required"`
	Mode   string   `validate:"omitempty,oneof=private family public"`
	Images []string `validate:"required,min=1,dive,required"`
}

func TestValidateStruct_Valid(t *testing.T) {
	err := ValidateStruct(sampleInput{
		Title:  "Beach day",
		Mode:   "family",
		Images: []string{"https://img/1.jpg"},
	})
	assert.NoError(t, err)
}

func TestValidateStruct_MissingRequired(t *testing.T) {
	err := ValidateStruct(sampleInput{Images: []string{"https://img/1.jpg"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestValidateStruct_BadOneOf(t *testing.T) {
	err := ValidateStruct(sampleInput{
		Title:  "Beach day",
		Mode:   "secret",
		Images: []string{"https://img/1.jpg"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mode must be one of")
}

func TestValidateStruct_JoinsMultipleErrors(t *testing.T) {
	err := ValidateStruct(sampleInput{Mode: "secret"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "; ")
}

func TestParseDateParam_RFC3339(t *testing.T) {
	got, err := ParseDateParam("2023-06-01T12:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 1, 12, 30, 0, 0, time.UTC), got)
}

func TestParseDateParam_BareDate(t *testing.T) {
	got, err := ParseDateParam("2023-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateParam_Invalid(t *testing.T) {
	_, err := ParseDateParam("yesterday")
	assert.Error(t, err)
}
