package grid

import "github.com/javiermolinar/twine/internal/content"

// SlotKey identifies one cell of the board.
type SlotKey struct {
	Date string
	Slot content.TimeSlot
}

// Buckets maps cells to the blocks scheduled there, in collection order.
type Buckets map[SlotKey][]content.Block

// BucketBlocksBySlot groups blocks by (date, slot).
// Blocks keep their relative collection order within a cell.
func BucketBlocksBySlot(blocks []content.Block) Buckets {
	b := make(Buckets)
	for _, block := range blocks {
		key := SlotKey{Date: block.Date, Slot: block.TimeSlot}
		b[key] = append(b[key], block)
	}
	return b
}

// At returns the blocks in a cell, nil when it is empty.
func (b Buckets) At(date string, slot content.TimeSlot) []content.Block {
	return b[SlotKey{Date: date, Slot: slot}]
}

// Len returns the number of blocks across all cells.
func (b Buckets) Len() int {
	n := 0
	for _, blocks := range b {
		n += len(blocks)
	}
	return n
}
