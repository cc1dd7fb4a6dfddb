package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpec_IsZero(t *testing.T) {
	assert.True(t, Spec{}.IsZero())
	assert.False(t, Spec{Search: "x"}.IsZero())
	assert.False(t, Spec{MonthYear: &MonthYear{Year: 2025, Month: 1}}.IsZero())
	assert.False(t, Spec{SortField: SortByName}.IsZero())
}

func TestSpec_CacheKey_Deterministic(t *testing.T) {
	a := Spec{Search: "Charlie", Role: "Sr. UX Designer", MonthYear: &MonthYear{Year: 2025, Month: 2}, SortField: SortByRating, SortDirection: SortDesc}
	b := Spec{Search: "Charlie", Role: "Sr. UX Designer", MonthYear: &MonthYear{Year: 2025, Month: 2}, SortField: SortByRating, SortDirection: SortDesc}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
}

func TestSpec_CacheKey_DistinguishesSpecs(t *testing.T) {
	base := Spec{Search: "charlie"}

	variants := []Spec{
		{Search: "malaika"},
		{Search: "charlie", Role: "Growth Manager"},
		{Search: "charlie", MonthYear: &MonthYear{Year: 2025, Month: 2}},
		{Search: "charlie", SortField: SortByName},
		{Search: "charlie", SortField: SortByName, SortDirection: SortDesc},
	}

	for _, v := range variants {
		assert.NotEqual(t, base.CacheKey(), v.CacheKey())
	}
}

func TestSpec_CacheKey_SearchIsCaseInsensitive(t *testing.T) {
	// Search matching ignores case, so the key must too
	assert.Equal(t, Spec{Search: "CHARLIE"}.CacheKey(), Spec{Search: "charlie"}.CacheKey())
}

func TestSpec_State_DefaultsDirection(t *testing.T) {
	state := Spec{SortField: SortByName}.State()

	require.NotNil(t, state)
	assert.Equal(t, "name", state.SortField)
	assert.Equal(t, "asc", state.SortDirection, "an unset direction reads as ascending")
}

func TestSpec_State_CarriesMonthYear(t *testing.T) {
	state := Spec{MonthYear: &MonthYear{Year: 2024, Month: 12}}.State()

	require.NotNil(t, state)
	assert.Equal(t, 2024, state.Year)
	assert.Equal(t, 12, state.Month)
	assert.Empty(t, state.SortDirection)
}
