// Package inflight tracks vote and submit actions that have started but not finished,
// so the same action cannot be sent twice concurrently.
package inflight

import (
	"context"
	"strings"
	"sync"
)

//go:generate mockgen -destination=mock_guard.go -package=inflight competition-hub/internal/inflight Guard

// Guard hands out single-holder claims on action keys
type Guard interface {
	// Acquire claims key. When acquired is false another holder is active and release is nil.
	Acquire(ctx context.Context, key string) (release func(), acquired bool, err error)
	// InFlight reports whether key is currently claimed
	InFlight(ctx context.Context, key string) (bool, error)
}

// Action kinds used in keys
const (
	ActionVote   = "vote"
	ActionSubmit = "submit"
)

// Key builds the guard key for one actor's action on a competition
func Key(action, competitionID, actor string) string {
	return strings.Join([]string{"action", action, competitionID, strings.ToLower(actor)}, ":")
}

// MemoryGuard is a process-local Guard
type MemoryGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemoryGuard creates an empty MemoryGuard
func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{held: make(map[string]struct{})}
}

// Acquire claims key if nobody holds it
func (g *MemoryGuard) Acquire(ctx context.Context, key string) (func(), bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.held[key]; busy {
		return nil, false, nil
	}
	g.held[key] = struct{}{}

	var once sync.Once
	release := func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}
	return release, true, nil
}

// InFlight reports whether key is held
func (g *MemoryGuard) InFlight(ctx context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.held[key]
	return busy, nil
}
