package combi

import (
	"slices"
	"sync"
)

// Registry maps names to [RetryParams]. It is safe for concurrent use.
//
// Pattern: Singleton - DefaultRegistry uses sync.OnceValue for lazy init;
// explicit registries can be created for tests or loaded from files with
// [LoadConfig].
type Registry struct {
	params map[string]RetryParams
	mu     sync.Mutex
}

//nolint:gochecknoglobals // singleton via sync.OnceValue
var defaultRegistry = sync.OnceValue(NewRegistry)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{params: make(map[string]RetryParams)}
}

// DefaultRegistry returns the package-level registry, creating it on first
// call.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Set validates p and stores it under name, replacing any previous entry.
func (r *Registry) Set(name string, p RetryParams) error {
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.params[name] = p

	return nil
}

// Params returns the parameters stored under name. The optional overrides
// run in order on the returned copy, typically to attach a Clock or Hooks.
func (r *Registry) Params(name string, overrides ...func(*RetryParams)) (RetryParams, bool) {
	r.mu.Lock()
	p, ok := r.params[name]
	r.mu.Unlock()

	if !ok {
		return RetryParams{}, false
	}

	for _, o := range overrides {
		o(&p)
	}

	return p, true
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.params))
	for name := range r.params {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
