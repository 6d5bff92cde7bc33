package validator

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspection-map/internal/pkg/errors"
)

type sample struct {
	Lat float64 `validate:"min=-90,max=90"`
	Lng float64 `validate:"min=-180,max=180"`
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&sample{Lat: 53.9, Lng: -122.7}))

	err := Validate(&sample{Lat: 120, Lng: -122.7})
	require.Error(t, err)

	var appErr *errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, "INVALID_REQUEST", appErr.Code)
	assert.Equal(t, "max", appErr.Details["lat"])
}
