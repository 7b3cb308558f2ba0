package services

import "errors"

var (
	// ErrUnknownCountry is returned when a city references a country that does not exist.
	ErrUnknownCountry = errors.New("unknown country")
	// ErrIDMismatch is returned when an update body names a different id than the path.
	ErrIDMismatch = errors.New("id in body does not match id in path")
)
