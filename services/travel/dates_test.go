package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStayNights(t *testing.T) {
	assert.Equal(t, 3, StayNights("2026-09-10", "2026-09-13"))
	assert.Equal(t, 1, StayNights("2026-09-10", "2026-09-10"))
	assert.Equal(t, 1, StayNights("2026-09-13", "2026-09-10"), "inverted dates fall back to one night")
	assert.Equal(t, 1, StayNights("", "2026-09-13"))
	assert.Equal(t, 1, StayNights("next tuesday", "2026-09-13"))
}
