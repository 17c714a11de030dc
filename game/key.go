package game

import "github.com/kamstrup/intmap"

//go:generate go tool stringer -type=Key -trimprefix=Key

// Key identifies one of the directional keys the loop samples.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// DirectionKeys lists the keys sampled every frame.
var DirectionKeys = [...]Key{KeyUp, KeyDown, KeyLeft, KeyRight}

// KeyState reports whether a key is currently held.
type KeyState interface {
	Pressed(k Key) bool
}

// Keys is a mutable set of held keys. Frontends that receive key events or
// poll their own key codes fill it once per frame.
type Keys struct {
	down *intmap.Map[Key, struct{}]
}

// NewKeys creates a key set with the given keys held.
func NewKeys(pressed ...Key) *Keys {
	k := &Keys{down: intmap.New[Key, struct{}](len(DirectionKeys))}
	for _, key := range pressed {
		k.Press(key)
	}
	return k
}

// Press marks key as held.
func (k *Keys) Press(key Key) {
	k.down.Put(key, struct{}{})
}

// Release marks key as not held.
func (k *Keys) Release(key Key) {
	k.down.Del(key)
}

// Set presses or releases key.
func (k *Keys) Set(key Key, down bool) {
	if down {
		k.Press(key)
	} else {
		k.Release(key)
	}
}

// ReleaseAll clears every held key.
func (k *Keys) ReleaseAll() {
	for _, key := range DirectionKeys {
		k.down.Del(key)
	}
}

func (k *Keys) Pressed(key Key) bool {
	_, ok := k.down.Get(key)
	return ok
}

// Bindings maps directional keys to a platform's key codes.
type Bindings[C any] struct {
	codes *intmap.Map[Key, C]
}

// NewBindings creates a binding table from a key to code mapping.
func NewBindings[C any](codes map[Key]C) *Bindings[C] {
	b := &Bindings[C]{codes: intmap.New[Key, C](len(codes))}
	for key, code := range codes {
		b.codes.Put(key, code)
	}
	return b
}

// Code returns the platform code bound to key.
func (b *Bindings[C]) Code(key Key) (C, bool) {
	return b.codes.Get(key)
}

// Sample refreshes keys from a platform's key query. Unbound keys are
// released.
func (b *Bindings[C]) Sample(keys *Keys, pressed func(C) bool) {
	for _, key := range DirectionKeys {
		code, ok := b.codes.Get(key)
		keys.Set(key, ok && pressed(code))
	}
}
