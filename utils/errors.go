package utils

import "github.com/pkg/errors"

// Sentinel errors shared by controllers and helpers. Controllers translate
// these into the JSON response envelope with the matching HTTP status;
// everything else maps to a 500 or a relayed upstream status.
var (
	ErrNotFound  = errors.New("not found")
	ErrInvalidID = errors.New("invalid id")
)
