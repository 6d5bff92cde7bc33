package errors

import "net/http"

var (
	ErrRestaurantNotFound = New(
		"RESTAURANT_NOT_FOUND",
		"Restaurant not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidDistance = New(
		"INVALID_DISTANCE",
		"Invalid max distance value",
		http.StatusBadRequest,
	)

	ErrInvalidDate = New(
		"INVALID_DATE",
		"Invalid date, expected YYYY-MM or YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidMode = New(
		"INVALID_MODE",
		"Invalid mode value",
		http.StatusBadRequest,
	)

	ErrInvalidWheelSize = New(
		"INVALID_WHEEL_SIZE",
		"Invalid wheel size",
		http.StatusBadRequest,
	)

	ErrDatasetLoadFailed = New(
		"DATASET_LOAD_FAILED",
		"Failed to load restaurant data",
		http.StatusBadGateway,
	)

	ErrDatasetNotLoaded = New(
		"DATASET_NOT_LOADED",
		"Restaurant data is not loaded",
		http.StatusServiceUnavailable,
	)

	ErrSessionNotFound = New(
		"ROULETTE_SESSION_NOT_FOUND",
		"Roulette session not found",
		http.StatusNotFound,
	)

	ErrSpinInProgress = New(
		"ROULETTE_SPIN_IN_PROGRESS",
		"A spin is already in progress",
		http.StatusConflict,
	)

	ErrGeolocationDenied = New(
		"GEOLOCATION_DENIED",
		"Location permission denied. Please enable location access in your browser settings.",
		http.StatusForbidden,
	)

	ErrGeolocationUnavailable = New(
		"GEOLOCATION_UNAVAILABLE",
		"Location information unavailable.",
		http.StatusServiceUnavailable,
	)

	ErrGeolocationTimeout = New(
		"GEOLOCATION_TIMEOUT",
		"Location request timed out. Please try again.",
		http.StatusGatewayTimeout,
	)

	ErrGeolocationUnsupported = New(
		"GEOLOCATION_UNSUPPORTED",
		"Geolocation is not supported by this server.",
		http.StatusNotImplemented,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)

	ErrRateLimited = New(
		"RATE_LIMITED",
		"Too many requests",
		http.StatusTooManyRequests,
	)
)
