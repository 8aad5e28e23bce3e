// Package content defines the core domain types for twine.
package content

import (
	"time"
	"unicode/utf8"
)

// CharLimit is the platform character limit for a post draft.
// It is advisory: the store keeps over-length text as-is.
const CharLimit = 500

// Type is the content category of a block.
type Type string

const (
	TypeText     Type = "text"
	TypeCreative Type = "creative"
	TypeRecycled Type = "recycled"
	TypeFlexible Type = "flexible"
)

// Types lists every content type in display order.
var Types = []Type{TypeText, TypeCreative, TypeRecycled, TypeFlexible}

// Valid returns true if the type is one of the known content types.
func (t Type) Valid() bool {
	switch t {
	case TypeText, TypeCreative, TypeRecycled, TypeFlexible:
		return true
	default:
		return false
	}
}

// Label returns the capitalized display name of the type.
func (t Type) Label() string {
	switch t {
	case TypeText:
		return "Text"
	case TypeCreative:
		return "Creative"
	case TypeRecycled:
		return "Recycled"
	case TypeFlexible:
		return "Flexible"
	default:
		return string(t)
	}
}

// TimeSlot is the time of day a block is scheduled in.
type TimeSlot int

const (
	SlotMorning TimeSlot = iota
	SlotAfternoon
	SlotEvening
)

// SlotsPerDay is the number of time slots in a grid day.
const SlotsPerDay = 3

// Slots lists every time slot in order.
var Slots = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

// Valid returns true if the slot is Morning, Afternoon or Evening.
func (s TimeSlot) Valid() bool {
	return s >= SlotMorning && s <= SlotEvening
}

func (s TimeSlot) String() string {
	switch s {
	case SlotMorning:
		return "Morning"
	case SlotAfternoon:
		return "Afternoon"
	case SlotEvening:
		return "Evening"
	default:
		return "Unknown"
	}
}

// Block is one schedulable unit of planned content.
type Block struct {
	ID            string    `json:"id"`
	Type          Type      `json:"type"`
	Title         string    `json:"title"`
	Text          string    `json:"text"`
	Tags          []string  `json:"tags"`
	IsPromotional bool      `json:"isPromotional"`
	IsDone        bool      `json:"isDone"`
	Date          string    `json:"date"` // YYYY-MM-DD
	TimeSlot      TimeSlot  `json:"timeSlot"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewBlock is the payload used to create a block.
// The store assigns the ID and timestamps.
type NewBlock struct {
	Type          Type
	Title         string
	Text          string
	Tags          []string
	IsPromotional bool
	IsDone        bool
	Date          string
	TimeSlot      TimeSlot
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	if b.Tags != nil {
		b.Tags = append([]string{}, b.Tags...)
	}
	return b
}

// At reports whether the block is scheduled at the given date and slot.
func (b Block) At(date string, slot TimeSlot) bool {
	return b.Date == date && b.TimeSlot == slot
}

// CharsRemaining returns how many characters are left before CharLimit.
// The result is negative when the draft is over the limit.
func (b Block) CharsRemaining() int {
	return CharLimit - utf8.RuneCountInString(b.Text)
}

// OverLimit returns true if the draft text exceeds CharLimit.
func (b Block) OverLimit() bool {
	return b.CharsRemaining() < 0
}

// HasTag returns true if the block carries the exact tag.
func (b Block) HasTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
