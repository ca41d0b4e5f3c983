// Package hooks implements named filter chains other parts of the system
// register against to alter values this service produces.
package hooks

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-comments-api/domain"
)

// Filter receives the current value and returns the value handed to the
// next filter.
type Filter[T any] func(ctx context.Context, value T, args domain.HookArgs) T

// Pipeline is an ordered chain of filters registered under one name.
type Pipeline[T any] struct {
	name    string
	mu      sync.RWMutex
	filters []Filter[T]
}

func New[T any](name string) *Pipeline[T] {
	return &Pipeline[T]{name: name}
}

func (p *Pipeline[T]) Name() string {
	return p.name
}

// Register appends fn. Filters run in registration order.
func (p *Pipeline[T]) Register(fn Filter[T]) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	p.filters = append(p.filters, fn)
	p.mu.Unlock()
}

// Len returns the number of registered filters.
func (p *Pipeline[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.filters)
}

// Apply runs value through every filter. With no filters it returns value.
func (p *Pipeline[T]) Apply(ctx context.Context, value T, args domain.HookArgs) T {
	p.mu.RLock()
	filters := p.filters
	p.mu.RUnlock()

	if len(filters) > 0 {
		logrus.WithFields(logrus.Fields{"hook": p.name, "filters": len(filters)}).Debug("applying hook")
	}
	for _, fn := range filters {
		value = fn(ctx, value, args)
	}
	return value
}
