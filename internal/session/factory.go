package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/seren4de/a11ylead/internal/interfaces"
)

// Constructor builds an interfaces.Session given the config and logger.
type Constructor func(cfg Config, logger interfaces.Logger) (interfaces.Session, error)

var (
	mu       sync.RWMutex
	registry = map[string]Constructor{}
)

// RegisterBackend registers a named session constructor. Name is
// lower-cased internally. Registering the same name again overwrites the
// previous constructor.
func RegisterBackend(name Backend, ctor Constructor) {
	if name == "" || ctor == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(string(name))] = ctor
}

// NewSession constructs the configured session backend. It returns an
// error if the named backend has not been registered or the backend fails
// to start, which callers must treat as a fatal initialization failure.
func NewSession(cfg Config, logger interfaces.Logger) (interfaces.Session, error) {
	backend := strings.ToLower(strings.TrimSpace(string(cfg.Backend)))
	if backend == "" {
		backend = string(BackendChrome)
	}

	mu.RLock()
	ctor, ok := registry[backend]
	mu.RUnlock()
	if !ok || ctor == nil {
		return nil, fmt.Errorf("session backend %q not registered: available backends=%v", backend, ListBackends())
	}

	s, err := ctor(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to construct session backend %q: %w", backend, err)
	}
	if s == nil {
		return nil, errors.New("session constructor returned nil")
	}
	return s, nil
}

// ListBackends returns the list of registered backend names.
func ListBackends() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	return out
}
