package world

import "reflect"

// Singleton provides typed access to a single resource in a World. Use this
// for configuration, per-frame input, or any other state that exists once.
type Singleton[T any] struct {
	world *World
	ptr   *T
}

// NewSingleton creates a Singleton accessor for the given world.
// If the resource does not exist yet it is created from initializer, or from
// the zero value when no initializer is given. The resource is guaranteed to
// exist after the call.
func NewSingleton[T any](w *World, initializer ...T) *Singleton[T] {
	s := &Singleton[T]{world: w}
	if !s.Exists() {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		w.Add(value)
	}
	s.updateCache()
	return s
}

// Init binds the Singleton to a world.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(w *World) {
	s.world = w
	s.updateCache()
}

// Get returns a pointer to the resource, or nil if it has not been added.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.updateCache()
	}
	return s.ptr
}

// Exists reports whether the resource has been added to the world.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.world == nil {
		return
	}
	value, ok := s.world.lookup(reflect.TypeFor[T]())
	if !ok {
		s.ptr = nil
		return
	}
	s.ptr = value.(*T)
}
