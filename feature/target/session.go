package target

import (
	"errors"
	"fmt"
	"sync"

	"factory-planner/core/rational"
	"factory-planner/core/reconcile"

	"github.com/google/uuid"
)

var (
	// ErrTargetNotFound is returned for an unknown target id.
	ErrTargetNotFound = errors.New("target not found")
	// ErrTooManyTargets is returned when the session is full.
	ErrTooManyTargets = errors.New("too many targets")
)

// Session is the ordered set of build targets. Every method runs to
// completion under one lock and hands out copies.
type Session struct {
	mu      sync.Mutex
	targets []*reconcile.Target
	count   int
	max     int
	newID   func() string
}

// NewSession creates an empty session holding at most max targets.
func NewSession(max int) *Session {
	return &Session{max: max, newID: uuid.NewString}
}

// Add appends a target for item with one building.
func (s *Session) Add(item string) (reconcile.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.max > 0 && len(s.targets) >= s.max {
		return reconcile.Target{}, fmt.Errorf("%w: limit is %d", ErrTooManyTargets, s.max)
	}
	s.count++
	t := reconcile.NewTarget(s.count, item)
	t.ID = s.newID()
	s.targets = append(s.targets, t)
	return *t, nil
}

// Get returns a copy of the target.
func (s *Session) Get(id string) (reconcile.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, _ := s.find(id)
	if t == nil {
		return reconcile.Target{}, ErrTargetNotFound
	}
	return *t, nil
}

// List returns copies of all targets in creation order.
func (s *Session) List() []reconcile.Target {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]reconcile.Target, 0, len(s.targets))
	for _, t := range s.targets {
		out = append(out, *t)
	}
	return out
}

// Remove deletes the target.
func (s *Session) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, i := s.find(id)
	if i < 0 {
		return ErrTargetNotFound
	}
	s.targets = append(s.targets[:i], s.targets[i+1:]...)
	return nil
}

// SelectItem changes the item of a target, keeping mode and values.
func (s *Session) SelectItem(id, item string) (reconcile.Target, error) {
	return s.apply(id, func(t *reconcile.Target) error {
		t.SelectedItem = item
		return nil
	})
}

// EditBuildings makes text the building count. On a parse error the
// target is returned unchanged with the error.
func (s *Session) EditBuildings(id, text string) (reconcile.Target, error) {
	return s.apply(id, func(t *reconcile.Target) error {
		return t.SwitchToBuildings(text)
	})
}

// EditRate makes text, in display units, the rate.
func (s *Session) EditRate(id, text string, rateUnitFactor rational.Rational) (reconcile.Target, error) {
	return s.apply(id, func(t *reconcile.Target) error {
		return t.SwitchToRate(text, rateUnitFactor)
	})
}

// apply runs fn on a copy and commits it only when fn succeeds.
func (s *Session) apply(id string, fn func(t *reconcile.Target) error) (reconcile.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, _ := s.find(id)
	if t == nil {
		return reconcile.Target{}, ErrTargetNotFound
	}
	next := *t
	if err := fn(&next); err != nil {
		return *t, err
	}
	*t = next
	return next, nil
}

func (s *Session) find(id string) (*reconcile.Target, int) {
	for i, t := range s.targets {
		if t.ID == id {
			return t, i
		}
	}
	return nil, -1
}
