// Package world provides typed resource storage and an ordered system
// scheduler for frame-driven simulations.
//
// A World holds at most one value per Go type. Systems reach those values
// through Singleton fields, which the Scheduler wires up on registration.
package world

import (
	"reflect"
	"sort"
)

// World stores one resource value per type.
type World struct {
	resources map[reflect.Type]reflect.Value
}

// Stats describes the resources currently held by a World.
type Stats struct {
	ResourceCount int
	ResourceTypes []string
}

// New creates an empty world.
func New() *World {
	return &World{
		resources: make(map[reflect.Type]reflect.Value),
	}
}

// Add stores value as the resource for its type. If a resource of that type
// already exists its contents are overwritten in place, so pointers handed
// out by Singleton.Get stay valid.
func (w *World) Add(value any) {
	typ := reflect.TypeOf(value)
	if typ == nil {
		panic("world: cannot add a nil resource")
	}

	if existing, ok := w.resources[typ]; ok {
		existing.Elem().Set(reflect.ValueOf(value))
		return
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(reflect.ValueOf(value))
	w.resources[typ] = ptr
}

// Read sets *out to point at the stored resource of the pointed-to type.
// out must be a pointer to a pointer, e.g. `var cfg *Config; w.Read(&cfg)`.
func (w *World) Read(out any) bool {
	outValue := reflect.ValueOf(out)
	if outValue.Kind() != reflect.Ptr || outValue.Elem().Kind() != reflect.Ptr {
		panic("world: Read expects a pointer to a pointer")
	}

	ptr, ok := w.resources[outValue.Elem().Type().Elem()]
	if !ok {
		return false
	}

	outValue.Elem().Set(ptr)
	return true
}

func (w *World) lookup(typ reflect.Type) (any, bool) {
	ptr, ok := w.resources[typ]
	if !ok {
		return nil, false
	}
	return ptr.Interface(), true
}

// CollectStats returns a snapshot of the world contents, with type names sorted.
func (w *World) CollectStats() *Stats {
	stats := &Stats{
		ResourceCount: len(w.resources),
		ResourceTypes: make([]string, 0, len(w.resources)),
	}
	for typ := range w.resources {
		stats.ResourceTypes = append(stats.ResourceTypes, typ.String())
	}
	sort.Strings(stats.ResourceTypes)
	return stats
}
