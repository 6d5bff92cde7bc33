package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Prince George downtown -> UNBC campus, about 5 km apart
	d := HaversineDistance(53.9171, -122.7497, 53.8926, -122.8138)
	assert.InDelta(t, 5.0, d, 0.1)

	assert.Equal(t, 0.0, HaversineDistance(53.9, -122.7, 53.9, -122.7))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(53.9, -122.7))
	assert.False(t, ValidateCoordinates(91, 0))
	assert.False(t, ValidateCoordinates(0, -181))
}

func TestValidateDistance(t *testing.T) {
	assert.True(t, ValidateDistance(0))
	assert.True(t, ValidateDistance(5))
	assert.False(t, ValidateDistance(-1))
	assert.False(t, ValidateDistance(150))
}
