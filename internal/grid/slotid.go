package grid

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/dateutil"
)

var slotIDPattern = regexp.MustCompile(`^slot-(\d{4}-\d{2}-\d{2})-([012])$`)

// SlotID returns the drop-target token for a cell, e.g. "slot-2026-01-11-2".
func SlotID(date string, slot content.TimeSlot) string {
	return fmt.Sprintf("slot-%s-%d", date, slot)
}

// ID returns the token for k.
func (k SlotKey) ID() string {
	return SlotID(k.Date, k.Slot)
}

// ParseSlotID parses a token produced by SlotID.
// Tokens with an impossible calendar date are rejected.
func ParseSlotID(token string) (SlotKey, bool) {
	m := slotIDPattern.FindStringSubmatch(token)
	if m == nil || !dateutil.IsValidDay(m[1]) {
		return SlotKey{}, false
	}
	n, _ := strconv.Atoi(m[2])
	return SlotKey{Date: m[1], Slot: content.TimeSlot(n)}, true
}
