// Package session ties one user's array, target, step log and auto-play
// together. Any manual navigation or new search stops pending auto-play
// before touching the cursor, so a stale timer can never move a log that is
// no longer on screen.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bsviz/internal/arraygen"
	"bsviz/internal/logging"
	"bsviz/internal/search"
	"bsviz/internal/steplog"

	"github.com/google/uuid"
)

// ErrNoArray is returned when a search is started before an array exists.
var ErrNoArray = errors.New("no array: generate or load one first")

// ErrNoSearch is returned when navigation is attempted before a search.
var ErrNoSearch = errors.New("no search in progress")

// Session is owned by a single UI. Its methods may be called while auto-play
// is running.
type Session struct {
	ID string

	mu     sync.Mutex
	gen    *arraygen.Generator
	array  []int
	target int
	log    *steplog.Log
	player *steplog.Player
	logger *logging.Logger
}

// New creates an empty session drawing arrays from gen.
func New(gen *arraygen.Generator) *Session {
	id := uuid.NewString()
	return &Session{
		ID:     id,
		gen:    gen,
		logger: logging.WithSession(logging.CategorySession, id[:8]),
	}
}

// Generate draws a new array. The current search, if any, is discarded.
func (s *Session) Generate(size, target int, guarantee bool) ([]int, error) {
	a, err := s.gen.Generate(size, target, guarantee)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.array = a
	s.log = nil
	s.logger.Info("generated array size=%d guarantee=%v target=%d", size, guarantee, target)
	return copyInts(a), nil
}

// SetArray installs a caller supplied array. It must be sorted.
func (s *Session) SetArray(a []int) error {
	if err := arraygen.ValidateSorted(a); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.array = copyInts(a)
	s.log = nil
	s.logger.Info("array set size=%d", len(a))
	return nil
}

// Start runs a new search over the current array and positions the cursor
// before the first step.
func (s *Session) Start(target int) (steplog.Frame, error) {
	if err := s.gen.Bounds().ValidateTarget(target); err != nil {
		return steplog.Frame{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.array == nil {
		return steplog.Frame{}, ErrNoArray
	}
	s.stopLocked()

	timer := logging.StartTimer(logging.CategorySearch, "search")
	s.target = target
	s.log = steplog.New(s.array, target)
	timer.Stop()

	s.logger.Info("search started target=%d steps=%d result=%s", target, s.log.Len(), s.log.Result())
	logging.Search("target=%d n=%d comparisons=%d result=%s", target, len(s.array), s.log.Len(), s.log.Result())
	for _, step := range s.log.Steps() {
		logging.SearchDebug("%s", search.Describe(step, target))
	}
	return s.log.Frame(), nil
}

// Next advances one step, cancelling auto-play.
func (s *Session) Next() (steplog.Frame, error) {
	return s.navigate("next", (*steplog.Log).Next)
}

// Previous goes back one step, cancelling auto-play.
func (s *Session) Previous() (steplog.Frame, error) {
	return s.navigate("previous", (*steplog.Log).Previous)
}

// Reset returns to the position before the first step, cancelling auto-play.
func (s *Session) Reset() (steplog.Frame, error) {
	return s.navigate("reset", func(l *steplog.Log) bool {
		l.Reset()
		return true
	})
}

// Advance moves one step forward without touching auto-play. Tick-driven
// UIs call it from their own timer.
func (s *Session) Advance() (steplog.Frame, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.log == nil {
		return steplog.Frame{}, false, ErrNoSearch
	}
	moved := s.log.Next()
	return s.log.Frame(), moved, nil
}

func (s *Session) navigate(op string, fn func(*steplog.Log) bool) (steplog.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.log == nil {
		return steplog.Frame{}, ErrNoSearch
	}
	s.stopLocked()
	moved := fn(s.log)
	s.logger.Debug("%s moved=%v cursor=%d/%d", op, moved, s.log.Cursor(), s.log.Len())
	return s.log.Frame(), nil
}

// Play starts auto-play at the given interval, replacing any running player.
// onAdvance is called from the playback goroutine and must not call back
// into the Session.
func (s *Session) Play(ctx context.Context, interval time.Duration, onAdvance func(steplog.Frame)) (*steplog.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.log == nil {
		return nil, ErrNoSearch
	}
	s.stopLocked()
	logging.Playback("auto-play started interval=%v cursor=%d", interval, s.log.Cursor())
	s.player = s.log.AutoPlay(ctx, interval, onAdvance)
	return s.player, nil
}

// Stop cancels auto-play if it is running.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// stopLocked must not be called from inside onAdvance: Player.Stop waits for
// the playback goroutine.
func (s *Session) stopLocked() {
	if s.player == nil {
		return
	}
	s.player.Stop()
	s.player = nil
	logging.Playback("auto-play stopped")
}

// Playing reports whether auto-play is running.
func (s *Session) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.Running()
}

// Frame returns the current frame.
func (s *Session) Frame() (steplog.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.log == nil {
		return steplog.Frame{}, ErrNoSearch
	}
	return s.log.Frame(), nil
}

// Array returns a copy of the current array.
func (s *Session) Array() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyInts(s.array)
}

// Target returns the target of the current search.
func (s *Session) Target() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

// Searching reports whether a search has been started for the current array.
func (s *Session) Searching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log != nil
}

// Result returns the outcome of the current search.
func (s *Session) Result() (search.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.log == nil {
		return search.NotFound, ErrNoSearch
	}
	return s.log.Result(), nil
}

// Steps returns the steps of the current search.
func (s *Session) Steps() []search.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.log == nil {
		return nil
	}
	return s.log.Steps()
}

func (s *Session) String() string {
	return fmt.Sprintf("session %s", s.ID)
}

func copyInts(a []int) []int {
	if a == nil {
		return nil
	}
	out := make([]int, len(a))
	copy(out, a)
	return out
}
