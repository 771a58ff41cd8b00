package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fretboard/pkg/observability"
)

// logHooks reports pipeline, cache and site events at debug level.
type logHooks struct {
	logger *log.Logger
}

// registerLogHooks installs logHooks for every hook family.
func registerLogHooks(l *log.Logger) {
	h := &logHooks{logger: l}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetSiteHooks(h)
}

func (h *logHooks) OnParseStart(_ context.Context, input string) {
	h.logger.Debug("parse start", "input", input)
}

func (h *logHooks) OnParseComplete(_ context.Context, input string, strings, skipped int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("parse failed", "input", input, "error", err)
		return
	}
	h.logger.Debug("parse complete", "strings", strings, "skipped", skipped, "duration", d)
}

func (h *logHooks) OnRenderStart(_ context.Context, tables int) {
	h.logger.Debug("render start", "tables", tables)
}

func (h *logHooks) OnRenderComplete(_ context.Context, tables int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "error", err)
		return
	}
	h.logger.Debug("render complete", "tables", tables, "duration", d)
}

func (h *logHooks) OnAnalyzeComplete(_ context.Context, available, missing int, err error) {
	if err != nil {
		h.logger.Debug("analyze failed", "error", err)
		return
	}
	h.logger.Debug("analyze complete", "available", available, "missing", missing)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnEntryStart(_ context.Context, index int, notes string) {
	h.logger.Debug("render entry", "index", index+1, "notes", notes)
}

func (h *logHooks) OnEntryComplete(_ context.Context, index int, notes string, exitCode int, d time.Duration) {
	if exitCode != 0 {
		h.logger.Warn("entry failed", "index", index+1, "notes", notes, "exit", exitCode)
		return
	}
	h.logger.Debug("entry complete", "index", index+1, "duration", d)
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.CacheHooks    = (*logHooks)(nil)
	_ observability.SiteHooks     = (*logHooks)(nil)
)
