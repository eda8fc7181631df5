package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCityName(t *testing.T) {
	assert.Equal(t, "London", GetCityName("LHR"))
	assert.Equal(t, "New York", GetCityName("JFK"))
	// Unknown codes fall back to the input so callers always get a
	// displayable string.
	assert.Equal(t, "XXX", GetCityName("XXX"))
}

func TestGetAirportName(t *testing.T) {
	assert.Equal(t, "Heathrow Airport", GetAirportName("LHR"))
	assert.Equal(t, "ZZZ", GetAirportName("ZZZ"))
}

func TestFindAirportCodesByCity(t *testing.T) {
	codes := FindAirportCodes("London")
	require.NotEmpty(t, codes)
	assert.Contains(t, codes, "LHR")
}

func TestFindAirportCodesAcceptsCodes(t *testing.T) {
	codes := FindAirportCodes("lhr")
	require.Len(t, codes, 1)
	assert.Equal(t, "LHR", codes[0])
}

func TestFindAirportCodesPartialMatch(t *testing.T) {
	codes := FindAirportCodes("new yo")
	require.NotEmpty(t, codes)
	assert.Contains(t, codes, "JFK")
}

func TestFindAirportCodesUnknownCity(t *testing.T) {
	assert.Empty(t, FindAirportCodes("Atlantis"))
}

func TestGetAirlineName(t *testing.T) {
	assert.Equal(t, "British Airways", GetAirlineName("BA"))
	assert.Equal(t, "Q9", GetAirlineName("Q9"))
}
