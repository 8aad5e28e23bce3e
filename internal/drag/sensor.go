package drag

import "math"

// DefaultActivationDistance is the pointer travel needed before a press becomes a drag.
const DefaultActivationDistance float64 = 8

// Sensor turns raw pointer events into coordinator calls.
// A press only becomes a drag once the pointer has travelled the activation
// distance; a release before that is a click.
type Sensor struct {
	c        *Coordinator
	distance float64

	pressed   bool
	activated bool
	id        string
	x, y      float64
}

// NewSensor returns a sensor driving c. A non-positive distance uses the default.
func NewSensor(c *Coordinator, distance float64) *Sensor {
	if distance <= 0 {
		distance = DefaultActivationDistance
	}
	return &Sensor{c: c, distance: distance}
}

// Press records a pointer press on block id at (x, y).
func (s *Sensor) Press(id string, x, y float64) {
	s.pressed, s.activated = true, false
	s.id, s.x, s.y = id, x, y
}

// Motion reports whether this motion activated the drag.
func (s *Sensor) Motion(x, y float64) bool {
	if !s.pressed || s.activated {
		return false
	}
	if math.Hypot(x-s.x, y-s.y) < s.distance {
		return false
	}
	if !s.c.Start(s.id) {
		s.pressed = false
		return false
	}
	s.activated = true
	return true
}

// Active reports whether a drag is in progress.
func (s *Sensor) Active() bool {
	return s.activated
}

// PressedID returns the block under the last press.
func (s *Sensor) PressedID() string {
	return s.id
}

// Release ends the gesture over target. clicked is true when the pointer was
// released before the drag activated.
func (s *Sensor) Release(target string) (outcome Outcome, clicked bool) {
	defer s.reset()
	if !s.pressed {
		return OutcomeNone, false
	}
	if !s.activated {
		return OutcomeNone, true
	}
	return s.c.End(s.id, target), false
}

// Cancel abandons the gesture.
func (s *Sensor) Cancel() {
	if s.activated {
		s.c.Cancel()
	}
	s.reset()
}

func (s *Sensor) reset() {
	s.pressed, s.activated = false, false
	s.id, s.x, s.y = "", 0, 0
}
