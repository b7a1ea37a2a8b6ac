/*
Binding store
==============

Store holds the engine's growing set of variable assignments in the order
they were made: a batch run is a sequential stream of directives, and
"assign" directives may rebind a name already in use. Lookup
always returns the most recent value; a rebinding overwrites the earlier
value, and Names preserves the order in which names were first bound.
*/

package binding

import "github.com/polysolve/polysolve/rational"

// Store maps each bound name to its latest value and remembers the order in
// which names were first bound. The zero value is ready to use.
type Store struct {
	order  []string
	latest map[string]rational.Q
}

// Set records name = value as the new current binding for name. If name was
// never bound before, it is appended to the store's iteration order;
// rebinding an existing name does not move it.
func (s *Store) Set(name string, value rational.Q) {
	if s.latest == nil {
		s.latest = make(map[string]rational.Q)
	}
	if _, exists := s.latest[name]; !exists {
		s.order = append(s.order, name)
	}
	s.latest[name] = value
}

// Get returns the current value bound to name, if any.
func (s *Store) Get(name string) (rational.Q, bool) {
	v, ok := s.latest[name]
	return v, ok
}

// Snapshot returns a fresh map of every currently bound name to its latest
// value, suitable for algebra.Polynomial.Substitute.
func (s *Store) Snapshot() map[string]rational.Q {
	out := make(map[string]rational.Q, len(s.latest))
	for k, v := range s.latest {
		out[k] = v
	}
	return out
}

// Names returns every bound name in first-assignment order.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
