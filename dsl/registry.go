package dsl

import (
	"reflect"
	"sync"

	dataapi "github.com/mschae23/data-api"
)

// Registry maps Go types to codecs for derivation. It is safe for
// concurrent use; registration normally happens once at startup.
type Registry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]AnyAdapter
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byType: map[reflect.Type]AnyAdapter{}}
}

// DefaultRegistry returns a Registry pre-seeded with the scalar codecs for
// bool, int32, int64, float32, float64 and string.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterCodec(reg, Bool())
	RegisterCodec(reg, Int())
	RegisterCodec(reg, Long())
	RegisterCodec(reg, Float())
	RegisterCodec(reg, Double())
	RegisterCodec(reg, String())
	return reg
}

// RegisterCodec registers c for values of type T, replacing any previous
// registration.
func RegisterCodec[T any](reg *Registry, c dataapi.Codec[T]) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.byType[reflect.TypeOf((*T)(nil)).Elem()] = Adapt(c)
}

// Lookup returns the adapter registered for t.
func (reg *Registry) Lookup(t reflect.Type) (AnyAdapter, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	ad, ok := reg.byType[t]
	return ad, ok
}
