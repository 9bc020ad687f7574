package project

import "errors"

var (
	// ErrProjectNotFound is returned when a project ID does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrRoomNotFound is returned when a room ID does not exist.
	ErrRoomNotFound = errors.New("room not found")

	// ErrEstimateNotFound is returned when a project has no estimates.
	ErrEstimateNotFound = errors.New("estimate not found")

	// ErrInvalidName is returned when a project name fails validation.
	ErrInvalidName = errors.New("invalid project name")

	// ErrInvalidRoom is returned when a room record fails validation.
	ErrInvalidRoom = errors.New("invalid room")
)
