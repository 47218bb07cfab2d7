package ai

import (
	"context"
	"strings"
	"time"

	"github.com/chainguard-dev/clog"
)

// Manager picks a provider for each request and falls back through the
// others when one fails. Attempts are strictly sequential.
type Manager struct {
	providers       []Provider
	defaultProvider string
	attemptTimeout  time.Duration
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithDefaultProvider sets the provider tried first. The name is matched
// case-insensitively; an unknown name is ignored.
func WithDefaultProvider(name string) ManagerOption {
	return func(m *Manager) {
		m.defaultProvider = strings.TrimSpace(name)
	}
}

// WithAttemptTimeout bounds every single provider call. Zero disables it.
func WithAttemptTimeout(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.attemptTimeout = d
	}
}

// NewManager keeps the available providers, in the given order. It returns
// ErrNoProviders when none is available.
func NewManager(providers []Provider, opts ...ManagerOption) (*Manager, error) {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	for _, p := range providers {
		if p != nil && p.Available() {
			m.providers = append(m.providers, p)
		}
	}
	if !m.HasAvailableProviders() {
		return nil, ErrNoProviders
	}
	return m, nil
}

// HasAvailableProviders reports whether at least one provider can be used.
func (m *Manager) HasAvailableProviders() bool {
	return len(m.providers) > 0
}

// AvailableProviders returns a copy of the available providers in fallback order.
func (m *Manager) AvailableProviders() []Provider {
	out := make([]Provider, len(m.providers))
	copy(out, m.providers)
	return out
}

// DefaultProvider returns the name of the configured default provider when it
// is available, or "" otherwise.
func (m *Manager) DefaultProvider() string {
	if p := m.find(m.defaultProvider); p != nil {
		return p.Name()
	}
	return ""
}

// CurrentProvider returns the provider a plain GenerateContent call starts with.
func (m *Manager) CurrentProvider() string {
	if name := m.DefaultProvider(); name != "" {
		return name
	}
	if len(m.providers) > 0 {
		return m.providers[0].Name()
	}
	return "None"
}

// GenerateContent tries the default provider, then every other provider in
// order, and returns the first success. Individual failures are logged; if
// all of them fail ErrAllProvidersFailed is returned.
func (m *Manager) GenerateContent(ctx context.Context, prompt string) (Response, error) {
	if !m.HasAvailableProviders() {
		return Response{}, ErrNoProviders
	}
	log := clog.FromContext(ctx)

	preferred := m.find(m.defaultProvider)
	if preferred != nil {
		log.Debugf("Using default provider: %s", preferred.Name())
		resp, err := m.attempt(ctx, preferred, prompt)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return Response{}, ctx.Err()
		}
		log.With("provider", preferred.Name()).Warnf("Provider %s failed: %v", preferred.Name(), err)
	}

	for _, p := range m.providers {
		if p == preferred {
			continue
		}
		log.Debugf("Trying provider: %s", p.Name())
		resp, err := m.attempt(ctx, p, prompt)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return Response{}, ctx.Err()
		}
		log.With("provider", p.Name()).Warnf("Provider %s failed: %v", p.Name(), err)
	}

	log.Error(ErrAllProvidersFailed.Error())
	return Response{}, ErrAllProvidersFailed
}

// GenerateContentWithProvider calls the named provider only. It fails
// without any attempt when the name is not an available provider.
func (m *Manager) GenerateContentWithProvider(ctx context.Context, name, prompt string) (Response, error) {
	p := m.find(name)
	if p == nil {
		return Response{}, &ProviderNotFoundError{Name: name}
	}
	return m.attempt(ctx, p, prompt)
}

func (m *Manager) attempt(ctx context.Context, p Provider, prompt string) (Response, error) {
	if m.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.attemptTimeout)
		defer cancel()
	}
	return p.GenerateContent(ctx, prompt)
}

func (m *Manager) find(name string) Provider {
	if name == "" {
		return nil
	}
	for _, p := range m.providers {
		if strings.EqualFold(p.Name(), name) {
			return p
		}
	}
	return nil
}
