package llm

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Credentials are the resolved settings a provider is constructed from.
// The CLI resolves them (flags over environment over config file) before
// asking the registry for a provider.
type Credentials struct {
	APIKey string

	// Model overrides the provider's default model when non-empty.
	Model string

	// Endpoint overrides the provider's base URL when non-empty. Only
	// OpenAI-compatible providers honor it.
	Endpoint string
}

// Constructor builds a provider from resolved credentials.
type Constructor func(creds Credentials) Provider

// Registry maps provider names to constructors.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[string]Constructor),
	}
}

// Register adds a constructor under the given name.
func (r *Registry) Register(name string, c Constructor) error {
	if c == nil {
		return fmt.Errorf("cannot register nil constructor")
	}
	if name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.constructors[name]; exists {
		return fmt.Errorf("provider already registered: %s", name)
	}

	r.constructors[name] = c
	return nil
}

// New builds the named provider from the given credentials.
func (r *Registry) New(name string, creds Credentials) (Provider, error) {
	r.mu.RLock()
	c, ok := r.constructors[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown provider: %s (supported: %s)", name, strings.Join(r.List(), ", "))
	}
	return c(creds), nil
}

// List returns all registered provider names (sorted).
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has checks if a provider is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.constructors[name]
	return ok
}

// Count returns the number of registered providers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.constructors)
}

// Unregister removes a provider from the registry.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.constructors[name]; !ok {
		return fmt.Errorf("provider not found: %s", name)
	}
	delete(r.constructors, name)
	return nil
}

// DefaultRegistry is the global provider registry. Provider packages are
// registered into it at CLI startup.
var DefaultRegistry = NewRegistry()

// Register adds a constructor to the default registry.
func Register(name string, c Constructor) error {
	return DefaultRegistry.Register(name, c)
}

// New builds a provider from the default registry.
func New(name string, creds Credentials) (Provider, error) {
	return DefaultRegistry.New(name, creds)
}

// List returns all provider names from the default registry.
func List() []string {
	return DefaultRegistry.List()
}
