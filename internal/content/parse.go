package content

import (
	"errors"
	"strconv"
	"strings"
)

// Parse errors.
var (
	ErrInvalidType     = errors.New("type must be one of text, creative, recycled, flexible")
	ErrInvalidTimeSlot = errors.New("time slot must be 0 (morning), 1 (afternoon) or 2 (evening)")
)

// ParseType parses a content type name, case-insensitively.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// ParseTimeSlot parses a slot given as a digit (0-2) or a label
// ("morning", "afternoon", "evening").
func ParseTimeSlot(s string) (TimeSlot, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "morning":
		return SlotMorning, nil
	case "afternoon":
		return SlotAfternoon, nil
	case "evening":
		return SlotEvening, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !TimeSlot(n).Valid() {
		return 0, ErrInvalidTimeSlot
	}
	return TimeSlot(n), nil
}
