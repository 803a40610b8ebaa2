package services

import "errors"

var (
	// ErrOutOfRange is returned for identifiers outside the catalog bounds.
	ErrOutOfRange = errors.New("identifier out of range")

	// ErrMalformedChain is returned when an evolution chain link cannot be parsed.
	ErrMalformedChain = errors.New("malformed evolution chain")
)
