// Package loginstate holds the state a UI observes around login attempts: a
// busy flag, the most recent outcome and whether the user is logged in.
package loginstate

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/segmentio/aws-cognito/lib/outcome"
)

var ErrBusy = errors.New("a login attempt is already in progress")

// Attempter is satisfied by *attempt.Attempter.
type Attempter interface {
	Attempt(ctx context.Context, username, password string) (outcome.Outcome, bool)
}

// Snapshot is what OnChange observers are given.
type Snapshot struct {
	Busy    bool
	Outcome outcome.Outcome
}

type State struct {
	attempter Attempter

	// OnChange, if set, is called after the busy flag or the outcome changes.
	// It runs on the goroutine that called Login.
	OnChange func(Snapshot)

	// Now defaults to time.Now.
	Now func() time.Time

	mu      sync.Mutex
	busy    bool
	outcome outcome.Outcome
}

func New(a Attempter) *State {
	return &State{attempter: a}
}

// Login runs one attempt unless one is already running, in which case it
// returns ErrBusy without touching the stored outcome.
func (s *State) Login(ctx context.Context, username, password string) (bool, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return false, ErrBusy
	}
	s.busy = true
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)

	o, ok := s.attempter.Attempt(ctx, username, password)

	s.mu.Lock()
	s.busy = false
	s.outcome = o
	snap = s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)

	return ok, nil
}

func (s *State) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Outcome is the result of the latest finished attempt, Unset before any.
func (s *State) Outcome() outcome.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// IsLoggedIn reports whether the latest attempt succeeded and its session has
// not expired yet.
func (s *State) IsLoggedIn() bool {
	o := s.Outcome()
	if o.Kind() != outcome.Success {
		return false
	}
	expiry, _ := o.SessionExpiry()
	return expiry.After(s.now())
}

func (s *State) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{Busy: s.busy, Outcome: s.outcome}
}

func (s *State) notify(snap Snapshot) {
	if s.OnChange != nil {
		s.OnChange(snap)
	}
}
