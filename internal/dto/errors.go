package dto

import "errors"

var (
	// ErrNotFound is returned when an event id does not exist in the store.
	ErrNotFound = errors.New("event not found")

	// ErrOutOfRange is returned when a submission position does not exist
	// for the given event.
	ErrOutOfRange = errors.New("submission out of range")

	// ErrWindowClosed is returned when a submission or vote is attempted
	// after the event's scheduled start.
	ErrWindowClosed = errors.New("submission window closed")

	// ErrAlreadyVoted is returned when a voter attempts a second vote on
	// the same submission of the same event.
	ErrAlreadyVoted = errors.New("already voted")

	// ErrValidation is returned for malformed submission or vote input.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidSchedule is returned when an event's date and time cannot
	// be resolved to an instant.
	ErrInvalidSchedule = errors.New("invalid event schedule")

	ErrInternalFailure = errors.New("internal failure")
)
