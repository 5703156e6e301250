package domain

import "errors"

// Domain errors as sentinel values
var (
	// Price book errors
	ErrNoMasterBook  = errors.New("no active master price book")
	ErrNoMasterPrice = errors.New("no master price found for product")
	ErrBookNotFound  = errors.New("price book not found")
	ErrEntryNotFound = errors.New("price book entry not found")

	// Geo zone / segment errors
	ErrZoneNotFound    = errors.New("geo zone not found")
	ErrSegmentNotFound = errors.New("user segment not found")
	ErrSystemSegment   = errors.New("system segments cannot be removed")

	// Validation errors
	ErrInvalidBasePrice          = errors.New("base price must be non-negative")
	ErrInvalidModifierValue      = errors.New("modifier value out of range")
	ErrMissingScopeReference     = errors.New("modifier is missing the reference required by its scope")
	ErrMissingConditions         = errors.New("combination modifier requires a condition tree")
	ErrInvalidConditionTree      = errors.New("condition tree is malformed")
	ErrUnknownResolutionStrategy = errors.New("unknown conflict resolution strategy")
)
