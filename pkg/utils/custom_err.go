package utils

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidResetToken   = errors.New("invalid or expired reset token")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrSearchNotFound      = errors.New("search not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDatabaseError       = errors.New("database error")
)
