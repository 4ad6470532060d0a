package provider

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/paimon/gateway/internal/config"
)

// Mega is the only service name registered by default.
const Mega = "mega"

// Registry maps service names to provider instances. Adapters are built
// lazily on first resolution and cached for the process lifetime, so each
// service shares one session across all requests. Construct it once in main
// and pass it down; tests swap in fake factories via Register.
type Registry struct {
	log *zap.SugaredLogger

	mu        sync.Mutex
	factories map[string]func() Provider
	providers map[string]Provider
}

// NewRegistry returns a registry with the MEGA factory installed.
func NewRegistry(cfg *config.Config, log *zap.SugaredLogger) *Registry {
	r := &Registry{
		log:       log,
		factories: make(map[string]func() Provider),
		providers: make(map[string]Provider),
	}
	r.Register(Mega, func() Provider {
		return NewMegaProvider(cfg.MegaEmail, cfg.MegaPassword, cfg.UploadWorkers, log)
	})
	return r
}

// Register installs (or replaces) the factory for a service name. Any cached
// instance for that name is discarded.
func (r *Registry) Register(name string, factory func() Provider) {
	name = strings.ToLower(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
	delete(r.providers, name)
}

// Supports reports whether the service name is known. Case-insensitive.
func (r *Registry) Supports(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.factories[strings.ToLower(name)]
	return ok
}

// Supported returns the known service names, sorted.
func (r *Registry) Supported() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the provider for the service name, constructing and caching
// it on first use. Unknown names yield an UnsupportedServiceError.
func (r *Registry) Resolve(name string) (Provider, error) {
	name = strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.providers[name]; ok {
		return p, nil
	}
	factory, ok := r.factories[name]
	if !ok {
		supported := make([]string, 0, len(r.factories))
		for n := range r.factories {
			supported = append(supported, n)
		}
		sort.Strings(supported)
		return nil, &UnsupportedServiceError{Name: name, Supported: supported}
	}

	p := factory()
	r.providers[name] = p
	r.log.Debugw("provider constructed", "service", name)
	return p, nil
}
