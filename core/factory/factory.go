package factory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// Config selects a registered implementation by type name and carries its
// raw settings, exactly as they appear in the configuration file.
type Config struct {
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

// Builder turns raw settings into a concrete implementation of T.
type Builder[T any] func(conf map[string]any) (T, error)

// Registry maps type names to builders. Sinks register themselves at init
// time, so lookups happen after all registrations and never race with
// them; the mutex still guards against concurrent Create calls.
type Registry[T any] struct {
	mu       sync.RWMutex
	builders map[string]Builder[T]
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{builders: make(map[string]Builder[T])}
}

// Register adds a builder under the given type name. Registering the same
// name twice is an error so a misconfigured init is caught immediately.
func (r *Registry[T]) Register(name string, b Builder[T]) error {
	if b == nil {
		return fmt.Errorf("nil builder for type %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.builders[name]; ok {
		return fmt.Errorf("type %q already registered", name)
	}
	r.builders[name] = b
	return nil
}

// Types returns the registered type names in sorted order.
func (r *Registry[T]) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds the implementation named by cfg.Type. Unknown names report
// the available types so a typo in the config is easy to spot.
func (r *Registry[T]) Create(cfg Config) (T, error) {
	r.mu.RLock()
	b, ok := r.builders[cfg.Type]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown type %q (registered: %s)", cfg.Type, strings.Join(r.Types(), ", "))
	}
	return b(cfg.Conf)
}

// Decode fills out a settings struct from raw config using json tags, so
// builders share the field names of the configuration file.
func Decode(conf map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(conf)
}
