// Package form implements the seeded controlled subform pattern used by every
// setup screen: a section owns a local editable copy of one slice of a larger
// record, can be re-seeded from outside without re-announcing the seed as a
// user edit, and reports every genuine edit upward as the full local record.
package form

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// State is a section's lifecycle state.
type State int

const (
	// Seeding means the section has just received initial data and the next
	// change cycle is an artifact of the reset, not a user action.
	Seeding State = iota
	// Ready means edits are genuine and must be reported.
	Ready
)

func (s State) String() string {
	switch s {
	case Seeding:
		return "seeding"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Section holds the local editable copy of one record slice. T must be a
// JSON-marshalable value type.
type Section[T any] struct {
	state        T
	phase        State
	seed         T
	seeded       bool
	suppressions int
	onChange     func(T)
}

// NewSection creates a section. onChange receives the full local record after
// every genuine edit; it may be nil.
func NewSection[T any](onChange func(T)) *Section[T] {
	return &Section[T]{phase: Ready, onChange: onChange}
}

// Seed installs initial data. A seed that is deeply equal to the previous one
// is ignored entirely: no reset, no suppression cycle, no notification. A
// genuinely new seed resets local state, runs exactly one suppressed change
// cycle for the reset artifact, and settles into Ready.
func (s *Section[T]) Seed(initial T) bool {
	if s.seeded && reflect.DeepEqual(initial, s.seed) {
		return false
	}

	s.seed = clone(initial)
	s.state = clone(initial)
	s.seeded = true
	s.phase = Seeding

	// The reset itself is the first post-seed change cycle. Swallow it and
	// settle so that only edits made after this point propagate.
	s.suppressions++
	s.phase = Ready
	return true
}

// Apply runs edit against the local record and, when the section is Ready,
// reports the full updated record upward. The edit is never a diff.
func (s *Section[T]) Apply(edit func(*T)) {
	edit(&s.state)
	if s.phase != Ready {
		s.suppressions++
		s.phase = Ready
		return
	}
	if s.onChange != nil {
		s.onChange(clone(s.state))
	}
}

// Value returns a copy of the current local record.
func (s *Section[T]) Value() T {
	return clone(s.state)
}

// Phase returns the section's lifecycle state.
func (s *Section[T]) Phase() State {
	return s.phase
}

// Suppressions returns how many change cycles were swallowed by seeding.
func (s *Section[T]) Suppressions() int {
	return s.suppressions
}

// clone deep-copies a JSON-marshalable value. Section payloads are plain
// records, so the round trip is lossless.
func clone[T any](value T) T {
	var out T
	raw, err := json.Marshal(value)
	if err != nil {
		return value
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return value
	}
	return out
}
