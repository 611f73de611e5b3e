package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSign(t *testing.T) {
	assert.NoError(t, Sign(50, 30))
	assert.ErrorIs(t, Sign(0, 1), ErrOutOfRange)
	assert.ErrorIs(t, Sign(1, 30.5), ErrOutOfRange)
	assert.EqualError(t, Sign(51, 1), "out of range: sign width must be between 0 and 50 meters")
}

func TestSite(t *testing.T) {
	assert.NoError(t, Site(0.3, 2, 0))
	assert.NoError(t, Site(10, 200, 2000))
	assert.Error(t, Site(0, 5, 10))
	assert.Error(t, Site(0.3, 1.9, 10))
	assert.Error(t, Site(0.3, 5, -1))
	assert.Error(t, Site(0.3, 5, 2001))
}

func TestPositiveAndFirst(t *testing.T) {
	assert.NoError(t, First(nil, Positive("spacing", 1)))
	assert.EqualError(t, First(nil, Positive("spacing", 0), Positive("x", -1)), "out of range: spacing must be positive")
}
