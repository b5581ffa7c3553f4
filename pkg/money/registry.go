package money

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ledgerkit/moneykit/pkg/apperrors"
)

// Registry is a thread-safe currency lookup table keyed by ISO code.
// Registration is only ever additive, so readers take a shared lock and
// registered currencies never change underneath them.
type Registry struct {
	mu     sync.RWMutex
	byCode map[string]Currency
}

// NewRegistry returns an empty registry. Most callers want the package-level
// default registry instead; an explicit registry is for tests and for callers
// that need an isolated currency set.
func NewRegistry() *Registry {
	return &Registry{byCode: make(map[string]Currency)}
}

// Register inserts a currency if its code is not already present.
// Registering an existing code is a no-op, so registration is idempotent.
func (r *Registry) Register(c Currency) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byCode[c.Code]; !ok {
		r.byCode[c.Code] = c
	}
}

// Lookup finds a currency by ISO code, case-insensitively.
func (r *Registry) Lookup(code string) (Currency, error) {
	key := strings.ToUpper(code)

	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byCode[key]
	if !ok {
		return Currency{}, fmt.Errorf("%w: currency %q is not registered", apperrors.ErrNotFound, code)
	}
	return c, nil
}

// List returns all registered currencies sorted by ISO code.
// The returned slice is a fresh copy and may be modified by the caller.
func (r *Registry) List() []Currency {
	r.mu.RLock()
	out := make([]Currency, 0, len(r.byCode))
	for _, c := range r.byCode {
		out = append(out, c)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// defaultRegistry holds the common currencies plus anything registered at runtime.
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	for _, c := range []Currency{USD, EUR, GBP, JPY, CHF, CNY, CAD, AUD, INR, BRL, MXN, RUB, BTC, ETH} {
		r.Register(c)
	}
	return r
}()

// DefaultRegistry exposes the process-wide registry for callers that want to
// pass it around as a dependency.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Lookup finds a currency in the default registry by ISO code, case-insensitively.
func Lookup(code string) (Currency, error) {
	return defaultRegistry.Lookup(code)
}

// RegisterCurrency adds a currency to the default registry (no-op if present).
func RegisterCurrency(c Currency) {
	defaultRegistry.Register(c)
}

// ListCurrencies returns all currencies in the default registry sorted by code.
func ListCurrencies() []Currency {
	return defaultRegistry.List()
}
