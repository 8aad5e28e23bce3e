// Package planner owns the authoritative collection of content blocks.
//
// Every mutation is applied to the in-memory collection first and then
// written through to the "planner" namespace of a db.KV. Unknown ids are
// silent no-ops; persistence failures are logged and never surfaced.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/db"
)

// Namespace is the KV namespace holding the block collection.
const Namespace = "planner"

// persistedState is the JSON shape stored under Namespace.
type persistedState struct {
	Blocks []content.Block `json:"blocks"`
}

// Move places one block at a date and slot.
type Move struct {
	ID       string
	Date     string
	TimeSlot content.TimeSlot
}

// Store is the block collection. The zero value is not usable; use New or Open.
type Store struct {
	mu       sync.RWMutex
	blocks   []content.Block
	revision uint64

	kv    db.KV
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator sets the block id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New returns an empty store that writes through to kv.
// A nil kv keeps the collection in memory only.
func New(kv db.KV, opts ...Option) *Store {
	s := &Store{
		blocks: []content.Block{},
		kv:     kv,
		log:    slog.New(slog.DiscardHandler),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns a store loaded from kv. A missing namespace yields an empty
// store; an unreadable payload is logged and also yields an empty store.
// Only storage failures are returned.
func Open(ctx context.Context, kv db.KV, opts ...Option) (*Store, error) {
	s := New(kv, opts...)

	data, err := kv.Get(ctx, Namespace)
	if errors.Is(err, db.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading blocks: %w", err)
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Error("discarding unreadable block collection", "error", err)
		return s, nil
	}
	if state.Blocks != nil {
		s.blocks = state.Blocks
	}
	s.log.Debug("loaded blocks", "count", len(s.blocks))
	return s, nil
}

// timestamp returns the current time in UTC without a monotonic reading,
// so that it survives a JSON round trip unchanged.
func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

// touch refreshes UpdatedAt, never moving it backwards.
func (s *Store) touch(b *content.Block) {
	if t := s.timestamp(); t.After(b.UpdatedAt) {
		b.UpdatedAt = t
	}
}

// indexOf returns the position of id or -1. Callers hold s.mu.
func (s *Store) indexOf(id string) int {
	for i := range s.blocks {
		if s.blocks[i].ID == id {
			return i
		}
	}
	return -1
}

// commit bumps the revision and writes the collection through. Callers hold s.mu.
func (s *Store) commit(op string, attrs ...any) {
	s.revision++
	s.log.Debug(op, attrs...)
	s.persist()
}

// persist writes the full collection to the KV. Callers hold s.mu.
func (s *Store) persist() {
	if s.kv == nil {
		return
	}
	data, err := json.Marshal(persistedState{Blocks: s.blocks})
	if err != nil {
		s.log.Error("encoding blocks", "error", err)
		return
	}
	if err := s.kv.Put(context.Background(), Namespace, data); err != nil {
		s.log.Error("persisting blocks", "error", err, "count", len(s.blocks))
	}
}

// AddBlock stores a new block and returns its id.
// The input is not validated.
func (s *Store) AddBlock(nb content.NewBlock) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timestamp()
	b := content.Block{
		ID:            s.newID(),
		Type:          nb.Type,
		Title:         nb.Title,
		Text:          nb.Text,
		Tags:          append([]string{}, nb.Tags...),
		IsPromotional: nb.IsPromotional,
		IsDone:        nb.IsDone,
		Date:          nb.Date,
		TimeSlot:      nb.TimeSlot,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.blocks = append(s.blocks, b)
	s.commit("added block", "id", b.ID, "date", b.Date, "slot", int(b.TimeSlot))
	return b.ID
}

// UpdateBlock merges the present fields of u onto block id.
// Returns false if no block has that id.
func (s *Store) UpdateBlock(id string, u content.BlockUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	updated := u.Apply(s.blocks[i])
	s.touch(&updated)
	s.blocks[i] = updated
	s.commit("updated block", "id", id)
	return true
}

// DeleteBlock removes block id. Returns false if it was absent.
func (s *Store) DeleteBlock(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.blocks = append(s.blocks[:i:i], s.blocks[i+1:]...)
	s.commit("deleted block", "id", id)
	return true
}

// ToggleDone flips the completion flag of block id.
func (s *Store) ToggleDone(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	b := &s.blocks[i]
	b.IsDone = !b.IsDone
	s.touch(b)
	s.commit("toggled block", "id", id, "done", b.IsDone)
	return true
}

// MoveBlock places block id at date and slot. Other blocks already in the
// target slot are left in place; slots hold any number of blocks.
func (s *Store) MoveBlock(id, date string, slot content.TimeSlot) bool {
	return s.MoveBlocks([]Move{{ID: id, Date: date, TimeSlot: slot}}) == 1
}

// MoveBlocks applies several placements as one write. Each move is applied
// with exactly the position it carries, so a swap built from positions read
// beforehand cannot observe its own first write. Unknown ids are skipped.
// Returns the number of moves applied.
func (s *Store) MoveBlocks(moves []Move) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	for _, m := range moves {
		i := s.indexOf(m.ID)
		if i < 0 {
			continue
		}
		b := &s.blocks[i]
		b.Date = m.Date
		b.TimeSlot = m.TimeSlot
		s.touch(b)
		applied++
	}
	if applied > 0 {
		s.commit("moved blocks", "count", applied)
	}
	return applied
}

// ClearAllBlocks removes every block. This cannot be undone.
func (s *Store) ClearAllBlocks() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blocks = []content.Block{}
	s.commit("cleared blocks")
}
