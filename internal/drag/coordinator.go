// Package drag translates drag gestures over the board into swap and move
// operations on the block collection.
package drag

import (
	"log/slog"
	"sync"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/grid"
	"github.com/javiermolinar/twine/internal/planner"
)

// Blocks is the part of the block store the coordinator needs.
type Blocks interface {
	BlockByID(id string) (content.Block, bool)
	MoveBlocks(moves []planner.Move) int
}

// State is the coordinator's gesture state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Outcome reports what a drop did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSwap
	OutcomeMove
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSwap:
		return "swap"
	case OutcomeMove:
		return "move"
	default:
		return "none"
	}
}

// Coordinator tracks at most one drag at a time.
type Coordinator struct {
	blocks Blocks
	log    *slog.Logger

	mu     sync.Mutex
	state  State
	active content.Block
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Coordinator) { c.log = log }
}

// New returns an idle coordinator over blocks.
func New(blocks Blocks, opts ...Option) *Coordinator {
	c := &Coordinator{
		blocks: blocks,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins dragging blockID. Unknown ids leave the coordinator idle.
func (c *Coordinator) Start(blockID string) bool {
	b, ok := c.blocks.BlockByID(blockID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !ok {
		c.state, c.active = Idle, content.Block{}
		return false
	}
	c.state, c.active = Dragging, b
	c.log.Debug("drag started", "id", blockID)
	return true
}

// State returns the current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Active returns a snapshot of the dragged block taken when the drag started.
func (c *Coordinator) Active() (content.Block, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Dragging {
		return content.Block{}, false
	}
	return c.active.Clone(), true
}

// Cancel abandons the current drag without touching any block.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state, c.active = Idle, content.Block{}
}

// End drops draggedID on target and returns to Idle.
//
// A target naming another existing block swaps the two positions. A target
// that is a slot token moves the dragged block there. Anything else, including
// an empty target, leaves the collection unchanged.
func (c *Coordinator) End(draggedID, target string) Outcome {
	c.Cancel()

	if target == "" {
		return OutcomeNone
	}

	dragged, ok := c.blocks.BlockByID(draggedID)
	if !ok {
		return OutcomeNone
	}

	if target != draggedID {
		if other, ok := c.blocks.BlockByID(target); ok {
			// Positions are captured before either write.
			c.blocks.MoveBlocks([]planner.Move{
				{ID: dragged.ID, Date: other.Date, TimeSlot: other.TimeSlot},
				{ID: other.ID, Date: dragged.Date, TimeSlot: dragged.TimeSlot},
			})
			c.log.Debug("swapped blocks", "id", dragged.ID, "with", other.ID)
			return OutcomeSwap
		}
	}

	key, ok := grid.ParseSlotID(target)
	if !ok {
		c.log.Debug("ignored drop", "id", draggedID, "target", target)
		return OutcomeNone
	}
	c.blocks.MoveBlocks([]planner.Move{{ID: dragged.ID, Date: key.Date, TimeSlot: key.Slot}})
	c.log.Debug("moved block", "id", dragged.ID, "slot", key.ID())
	return OutcomeMove
}
