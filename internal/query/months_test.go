package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthOptions(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	options := MonthOptions(now, 12)

	require.Len(t, options, 12)
	assert.Equal(t, MonthOption{Year: 2025, Month: 3, Label: "March 2025"}, options[0])
	assert.Equal(t, MonthOption{Year: 2025, Month: 2, Label: "February 2025"}, options[1])
	assert.Equal(t, MonthOption{Year: 2025, Month: 1, Label: "January 2025"}, options[2])
	assert.Equal(t, MonthOption{Year: 2024, Month: 12, Label: "December 2024"}, options[3], "January wraps into December of the previous year")
	assert.Equal(t, MonthOption{Year: 2024, Month: 4, Label: "April 2024"}, options[11])
}

func TestMonthOptions_EveryOptionValidates(t *testing.T) {
	options := MonthOptions(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 24)

	require.Len(t, options, 24)
	for _, opt := range options {
		spec := Spec{MonthYear: &MonthYear{Year: opt.Year, Month: opt.Month}}
		assert.NoError(t, spec.Validate(), "option %q must be a valid filter", opt.Label)
	}
}

func TestMonthOptions_Zero(t *testing.T) {
	options := MonthOptions(time.Now(), 0)
	assert.Empty(t, options)
}
