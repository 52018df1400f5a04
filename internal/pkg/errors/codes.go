package errors

import "net/http"

var (
	ErrInvalidWindowDays = New(
		"INVALID_WINDOW_DAYS",
		"Analysis window must be one of 7, 30, 90 or 365 days",
		http.StatusBadRequest,
	)

	ErrAreaNotFound = New(
		"AREA_NOT_FOUND",
		"No roads registered for the requested area",
		http.StatusNotFound,
	)

	ErrRoadNotFound = New(
		"ROAD_NOT_FOUND",
		"Road not found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
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

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
