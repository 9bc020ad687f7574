package project

import (
	"fmt"
	"strings"

	"github.com/sparkestimate/spark-core/internal/cec"
)

const (
	maxNameLength    = 100
	maxAddressLength = 200
	maxRoomsPerJob   = 200
	maxRoomAreaSqFt  = 10000
)

// ValidateName checks a project name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, maxNameLength)
	}
	return nil
}

// ValidateProject checks a project record before persisting.
func ValidateProject(p *Project) error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}
	if len(p.Address) > maxAddressLength {
		return fmt.Errorf("%w: address exceeds %d characters", ErrInvalidName, maxAddressLength)
	}
	if p.TotalSqFt < 0 {
		return fmt.Errorf("%w: total square footage cannot be negative", ErrInvalidName)
	}
	return nil
}

// ValidateRooms checks a room batch before it replaces a project's rooms.
// Unknown room types are allowed; the generator falls back to minimal
// defaults for them.
func ValidateRooms(rooms []Room) error {
	if len(rooms) > maxRoomsPerJob {
		return fmt.Errorf("%w: %d rooms exceeds limit of %d", ErrInvalidRoom, len(rooms), maxRoomsPerJob)
	}
	for i, rm := range rooms {
		if rm.RoomType == "" {
			return fmt.Errorf("%w: room %d has no type", ErrInvalidRoom, i)
		}
		if rm.ApproxAreaSqFt < 0 || rm.ApproxAreaSqFt > maxRoomAreaSqFt {
			return fmt.Errorf("%w: room %d area %.0f out of range", ErrInvalidRoom, i, rm.ApproxAreaSqFt)
		}
		if rm.Confidence < 0 || rm.Confidence > 1 {
			return fmt.Errorf("%w: room %d confidence %.2f out of range", ErrInvalidRoom, i, rm.Confidence)
		}
	}
	return nil
}

// KnownRoomType reports whether the catalog has a requirement entry for
// the given type.
func KnownRoomType(rt cec.RoomType) bool {
	_, ok := cec.RequirementFor(rt)
	return ok
}
