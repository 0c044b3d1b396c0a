package animation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-hello/engine/transform"
)

// ErrInvalidBinding is returned when a Binding is missing its target or rule, or names an unknown component.
var ErrInvalidBinding = errors.New("invalid animation binding")

// Rule computes a property value from the clock's elapsed time in seconds.
type Rule func(elapsed float64) float32

// Linear returns a Rule producing rate × elapsed.
//
// Parameters:
//   - rate: units per second
//
// Returns:
//   - Rule: the linear rule
func Linear(rate float64) Rule {
	return func(elapsed float64) float32 {
		return float32(rate * elapsed)
	}
}

// Binding ties one numeric transform field to a time-driven rule.
type Binding struct {
	// Name identifies the binding in logs.
	Name string
	// Target is the transform written on every evaluation.
	Target *transform.Transform
	// Component is the field of Target that receives the rule's value.
	Component transform.Component
	// Rule produces the value for a given elapsed time.
	Rule Rule
}

func (b Binding) validate() error {
	if b.Target == nil {
		return fmt.Errorf("%w %q: nil target", ErrInvalidBinding, b.Name)
	}
	if b.Rule == nil {
		return fmt.Errorf("%w %q: nil rule", ErrInvalidBinding, b.Name)
	}
	if !b.Component.Valid() {
		return fmt.Errorf("%w %q: unknown component %d", ErrInvalidBinding, b.Name, int(b.Component))
	}
	return nil
}

// Set is an ordered collection of bindings evaluated together once per frame.
type Set struct {
	mu       *sync.Mutex
	bindings []Binding
}

// NewSet creates a Set from the given bindings, validating each one.
//
// Parameters:
//   - bindings: bindings to register, evaluated in the given order
//
// Returns:
//   - *Set: the newly created set
//   - error: ErrInvalidBinding if any binding is malformed
func NewSet(bindings ...Binding) (*Set, error) {
	s := &Set{mu: &sync.Mutex{}}
	for _, b := range bindings {
		if err := s.Add(b); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends a binding after validating it.
//
// Parameters:
//   - b: the binding to add
//
// Returns:
//   - error: ErrInvalidBinding if b is malformed
func (s *Set) Add(b Binding) error {
	if err := b.validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings = append(s.bindings, b)
	return nil
}

// Evaluate writes every binding's rule result for the given elapsed time into its target.
// The result depends only on elapsed, never on how many frames were evaluated before.
//
// Parameters:
//   - elapsed: seconds since the clock started
func (s *Set) Evaluate(elapsed float64) {
	s.mu.Lock()
	bindings := s.bindings
	s.mu.Unlock()

	for _, b := range bindings {
		b.Target.SetComponent(b.Component, b.Rule(elapsed))
	}
}

// Len returns the number of registered bindings.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bindings)
}
