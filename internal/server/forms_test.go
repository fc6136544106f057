package server

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpportunityForm_TimeWindow(t *testing.T) {
	form := &opportunityForm{StartTime: "09:00 AM", EndTime: "12:00 PM"}

	window, err := form.TimeWindow()
	require.NoError(t, err)
	assert.Equal(t, "09:00 AM - 12:00 PM", window)
}

func TestOpportunityForm_TimeWindowEndBeforeStart(t *testing.T) {
	form := &opportunityForm{StartTime: "02:00 PM", EndTime: "11:00 AM"}

	_, err := form.TimeWindow()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end time must be after start time")
}

func TestOpportunityForm_TimeWindowRejectsGarbage(t *testing.T) {
	form := &opportunityForm{StartTime: "morning", EndTime: "12:00 PM"}

	_, err := form.TimeWindow()
	assert.Error(t, err)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t,
		[]string{"Age 14+", "Sturdy footwear"},
		splitLines("Age 14+\n\n  Sturdy footwear  \n"),
	)
	assert.Nil(t, splitLines(""))
}

func TestFieldErrors(t *testing.T) {
	v := validator.New()

	err := v.Struct(signupForm{Email: "not-an-email"})
	require.Error(t, err)

	errs := fieldErrors(err)
	assert.Equal(t, "this field is required", errs["Name"])
	assert.Equal(t, "must be a valid email address", errs["Email"])
}
