// Package observability provides hooks for instrumenting chart rendering
// and site builds.
//
// Libraries call the registered hooks; the CLI registers implementations at
// startup (debug logging with --verbose). Nothing in the libraries depends
// on a particular backend, and the defaults are no-ops.
//
// Register hooks at application startup:
//
//	observability.SetPipelineHooks(&myPipelineHooks{})
//
// Libraries emit events through the accessors:
//
//	observability.Pipeline().OnParseStart(ctx, input)
//	// ... parse ...
//	observability.Pipeline().OnParseComplete(ctx, input, strings, skipped, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the chart pipeline.
type PipelineHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, input string)
	OnParseComplete(ctx context.Context, input string, strings, skipped int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, tables int)
	OnRenderComplete(ctx context.Context, tables int, duration time.Duration, err error)

	// OnAnalyzeComplete reports the interval summary counts.
	OnAnalyzeComplete(ctx context.Context, available, missing int, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Site Hooks
// =============================================================================

// SiteHooks receives events from the site generator.
type SiteHooks interface {
	// OnEntryStart records the start of rendering one tuning entry.
	OnEntryStart(ctx context.Context, index int, notes string)

	// OnEntryComplete records the renderer's exit code for one entry.
	OnEntryComplete(ctx context.Context, index int, notes string, exitCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string) {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnRenderStart(context.Context, int)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, int, time.Duration, error) {}
func (NoopPipelineHooks) OnAnalyzeComplete(context.Context, int, int, error)          {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopSiteHooks is a no-op implementation of SiteHooks.
type NoopSiteHooks struct{}

func (NoopSiteHooks) OnEntryStart(context.Context, int, string)                        {}
func (NoopSiteHooks) OnEntryComplete(context.Context, int, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	siteHooks     SiteHooks     = NoopSiteHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetSiteHooks registers custom site generator hooks.
func SetSiteHooks(h SiteHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		siteHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Site returns the registered site hooks.
func Site() SiteHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return siteHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	siteHooks = NoopSiteHooks{}
}
