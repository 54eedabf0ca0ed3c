package coinaddr

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// ValidatorFactory constructs a validator bound to a single request.
type ValidatorFactory func(*ValidationRequest) Validator

// Registry maps validator algorithm names to factories. Built-in
// validators register during package initialization; the lock only
// matters when validators are registered at runtime.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ValidatorFactory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]ValidatorFactory{}}
}

// Register adds factory under name. The first registration for a name
// wins; registering the same name again is a no-op.
func (r *Registry) Register(name string, factory ValidatorFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		log.WithField("validator", name).Debug("validator already registered, keeping existing")
		return
	}
	r.factories[name] = factory
}

// Get returns the factory registered under name.
func (r *Registry) Get(name string) (ValidatorFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[name]
	return factory, ok
}

// Contains reports whether a validator is registered under name.
func (r *Registry) Contains(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Validators is the default registry consulted by
// ValidationRequest.Execute.
var Validators = NewRegistry()
