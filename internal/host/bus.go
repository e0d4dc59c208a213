// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package host

import (
	"context"
	"fmt"
	"sync"
)

// Listener receives climate queries posted on a [Bus].
type Listener interface {
	OnClimateQuery(ctx context.Context, query *ClimateQuery)
}

// ListenerFunc allows plain functions to satisfy Listener.
type ListenerFunc func(ctx context.Context, query *ClimateQuery)

// OnClimateQuery dispatches to the underlying function.
func (fn ListenerFunc) OnClimateQuery(ctx context.Context, query *ClimateQuery) {
	if fn == nil {
		return
	}
	fn(ctx, query)
}

// Bus fans climate queries out to listeners in priority order. Within one
// priority, listeners run in registration order.
type Bus struct {
	mu        sync.RWMutex
	listeners [priorityCount][]Listener
}

func NewBus() *Bus {
	return &Bus{}
}

// AddListener registers l at priority p.
func (b *Bus) AddListener(p Priority, l Listener) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPriority, int(p))
	}
	if l == nil {
		return ErrNilListener
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[p] = append(b.listeners[p], l)
	return nil
}

// Len returns the number of registered listeners.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, ls := range b.listeners {
		n += len(ls)
	}
	return n
}

// Post delivers query to every listener and returns it. Every listener runs
// even when ctx is done; ctx is only passed through to the listeners.
func (b *Bus) Post(ctx context.Context, query *ClimateQuery) *ClimateQuery {
	b.mu.RLock()
	var ordered []Listener
	for _, ls := range b.listeners {
		ordered = append(ordered, ls...)
	}
	b.mu.RUnlock()

	for _, l := range ordered {
		l.OnClimateQuery(ctx, query)
	}

	return query
}
