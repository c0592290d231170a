// Package extract scans text for structured entities: links, emails,
// hashtags, mentions and checksum-validated identifiers. A Registry maps a
// kind name to an extraction function; callers can register their own kinds
// at runtime, attach postprocessors, or compose two existing kinds.
package extract

import (
	"fmt"
	"sync"
)

// Func extracts matches of one kind from text. Implementations return nil
// for text that contains no matches and must not panic on any input.
type Func func(text string) []string

// Registry dispatches extraction requests by kind. It is safe for
// concurrent use.
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]Func
	order      []string
}

// NewRegistry creates an empty registry. Most callers want NewDefault.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[string]Func),
	}
}

// Register adds an extractor for kind. Registering a kind twice is an error.
func (r *Registry) Register(kind string, fn Func) error {
	if fn == nil {
		return fmt.Errorf("extractor for kind %s is nil", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.extractors[kind]; exists {
		return fmt.Errorf("kind %s is already registered", kind)
	}

	r.extractors[kind] = fn
	r.order = append(r.order, kind)
	return nil
}

// RegisterPostprocess registers kind as fn followed by a transform over the
// raw match list, e.g. lower-casing every match.
func (r *Registry) RegisterPostprocess(kind string, fn Func, post func([]string) []string) error {
	if post == nil {
		return fmt.Errorf("postprocessor for kind %s is nil", kind)
	}
	return r.Register(kind, func(text string) []string {
		return post(fn(text))
	})
}

// Compose registers kind as the chain of two existing kinds: the output of
// first becomes the input of second, match by match. Both kinds must
// already be registered.
func (r *Registry) Compose(kind, first, second string) error {
	r.mu.RLock()
	firstFn, firstOK := r.extractors[first]
	secondFn, secondOK := r.extractors[second]
	r.mu.RUnlock()

	if !firstOK {
		return fmt.Errorf("kind %s not found", first)
	}
	if !secondOK {
		return fmt.Errorf("kind %s not found", second)
	}

	return r.Register(kind, func(text string) []string {
		var combined []string
		for _, match := range firstFn(text) {
			combined = append(combined, secondFn(match)...)
		}
		return dedup(combined)
	})
}

// Kinds returns all registered kinds in registration order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, len(r.order))
	copy(kinds, r.order)
	return kinds
}

// Extract returns the matches of kind in text. Unknown kinds and empty
// text yield nil, never an error.
func (r *Registry) Extract(text, kind string) []string {
	if text == "" {
		return nil
	}

	r.mu.RLock()
	fn, ok := r.extractors[kind]
	r.mu.RUnlock()

	if !ok {
		return nil
	}
	return fn(text)
}

// ExtractAll runs every registered kind over text and returns the combined
// results keyed by kind.
func (r *Registry) ExtractAll(text string) map[string][]string {
	results := make(map[string][]string)
	for _, kind := range r.Kinds() {
		results[kind] = r.Extract(text, kind)
	}
	return results
}

// dedup removes duplicates from values, keeping the first occurrence of
// each. Comparison is exact and case-sensitive.
func dedup(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(values))
	var result []string
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		result = append(result, v)
	}
	return result
}
