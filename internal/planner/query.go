package planner

import "github.com/javiermolinar/twine/internal/content"

// Blocks returns a copy of the collection in insertion order.
func (s *Store) Blocks() []content.Block {
	_, blocks := s.Snapshot()
	return blocks
}

// Snapshot returns the current revision together with a copy of the collection.
func (s *Store) Snapshot() (uint64, []content.Block) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision, s.filter(func(content.Block) bool { return true })
}

// Revision increases on every mutation. Derived views can be cached by it.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// BlockByID returns a copy of block id.
func (s *Store) BlockByID(id string) (content.Block, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.blocks[i].Clone(), true
	}
	return content.Block{}, false
}

// BlocksByDate returns the blocks scheduled on date, in collection order.
func (s *Store) BlocksByDate(date string) []content.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(b content.Block) bool { return b.Date == date })
}

// BlocksInSlot returns the blocks scheduled at date and slot, in collection order.
func (s *Store) BlocksInSlot(date string, slot content.TimeSlot) []content.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(b content.Block) bool { return b.At(date, slot) })
}

// Count returns the number of blocks.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blocks)
}

// DoneCount returns the number of completed blocks.
func (s *Store) DoneCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, b := range s.blocks {
		if b.IsDone {
			n++
		}
	}
	return n
}

// filter copies the matching blocks. Callers hold s.mu.
func (s *Store) filter(keep func(content.Block) bool) []content.Block {
	out := make([]content.Block, 0, len(s.blocks))
	for _, b := range s.blocks {
		if keep(b) {
			out = append(out, b.Clone())
		}
	}
	return out
}
