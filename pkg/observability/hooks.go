// Package observability provides hooks for instrumenting the filter run.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific backends. Consumers register hooks at startup to
// receive events about rendering, PNG conversion, and temp-artifact writes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for filter events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This keeps the filter packages free of logging or metrics imports while
// letting the CLI attach debug logging (or any other backend) when asked.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetFilterHooks(&myHooks{})
//	    // ... run the filter
//	}
//
// The filter calls hooks as it processes code blocks:
//
//	observability.Filter().OnRenderStart(ctx)
//	// ... render ...
//	observability.Filter().OnRenderComplete(ctx, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// FilterHooks receives events from the document filter.
type FilterHooks interface {
	// Render events, one pair per svgdx code block.
	OnRenderStart(ctx context.Context)
	OnRenderComplete(ctx context.Context, duration time.Duration, err error)

	// Conversion events, one pair per SVG-to-PNG conversion.
	OnConvertStart(ctx context.Context, backend, svgPath string)
	OnConvertComplete(ctx context.Context, backend string, duration time.Duration, err error)

	// OnArtifactWritten records a temp image file handed over to pandoc.
	OnArtifactWritten(ctx context.Context, path string, size int)
}

// NoopFilterHooks is a no-op implementation of FilterHooks.
type NoopFilterHooks struct{}

func (NoopFilterHooks) OnRenderStart(context.Context)                                    {}
func (NoopFilterHooks) OnRenderComplete(context.Context, time.Duration, error)           {}
func (NoopFilterHooks) OnConvertStart(context.Context, string, string)                   {}
func (NoopFilterHooks) OnConvertComplete(context.Context, string, time.Duration, error) {}
func (NoopFilterHooks) OnArtifactWritten(context.Context, string, int)                   {}

var (
	filterHooks FilterHooks = NoopFilterHooks{}
	hooksMu     sync.RWMutex
)

// SetFilterHooks registers custom filter hooks.
// This should be called once at application startup, before processing begins.
func SetFilterHooks(h FilterHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		filterHooks = h
	}
}

// Filter returns the registered filter hooks.
func Filter() FilterHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return filterHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	filterHooks = NoopFilterHooks{}
}
