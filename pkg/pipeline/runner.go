package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fretboard/pkg/cache"
	pkgio "github.com/matzehuels/fretboard/pkg/io"
	"github.com/matzehuels/fretboard/pkg/intervals"
	"github.com/matzehuels/fretboard/pkg/observability"
	"github.com/matzehuels/fretboard/pkg/tuning"
)

// keyTypeChart labels chart entries in cache hooks.
const keyTypeChart = "chart"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can share one with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → render → analyze pipeline with
// caching and writes the chart in opts.Format to Result.Output.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	t, skipped, err := Parse(ctx, opts.Tuning)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Tuning = t
	result.Skipped = skipped
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.Strings = t.Len()

	for _, tok := range skipped {
		r.Logger.Debug("skipped character", "raw", tok.Raw, "pos", tok.Pos)
	}
	r.Logger.Debug("parsed tuning",
		"notes", t.String(),
		"skipped", len(skipped),
		"duration", result.Stats.ParseTime)

	// Stages 2 and 3: Render and Analyze, cached together
	chart, hit, err := r.ChartWithCacheInfo(ctx, t, opts, &result.Stats)
	if err != nil {
		return nil, err
	}
	result.Tables = chart.Tables
	if chart.Intervals != nil {
		result.Report = *chart.Intervals
	}
	result.Stats.Tables = len(chart.Tables)
	result.CacheHit = hit

	var buf bytes.Buffer
	if err := Write(&buf, chart, opts.Format); err != nil {
		return nil, fmt.Errorf("write %s: %w", opts.Format, err)
	}
	result.Output = buf.Bytes()

	r.Logger.Debug("rendered chart",
		"tables", result.Stats.Tables,
		"format", opts.Format,
		"bytes", len(result.Output),
		"cached", hit)

	return result, nil
}

// ChartWithCacheInfo lays out and analyzes t, consulting the cache first.
// Timings are recorded in stats when it is non-nil.
func (r *Runner) ChartWithCacheInfo(ctx context.Context, t tuning.Tuning, opts Options, stats *Stats) (pkgio.Chart, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pkgio.Chart{}, false, err
	}
	if stats == nil {
		stats = &Stats{}
	}
	hooks := observability.Cache()
	cacheKey := r.Keyer.ChartKey(t.String(), opts.ChartKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached pkgio.Chart
			if err := json.Unmarshal(data, &cached); err == nil {
				hooks.OnCacheHit(ctx, keyTypeChart)
				return cached, true, nil
			}
			// undecodable entries are recomputed and overwritten
		}
		hooks.OnCacheMiss(ctx, keyTypeChart)
	}

	chart, err := r.chart(ctx, t, opts, stats)
	if err != nil {
		return pkgio.Chart{}, false, err
	}

	if data, err := json.Marshal(chart); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.DefaultTTL); err == nil {
			hooks.OnCacheSet(ctx, keyTypeChart, len(data))
		} else {
			r.Logger.Warn("cache write failed", "error", err)
		}
	}
	return chart, false, nil
}

func (r *Runner) chart(ctx context.Context, t tuning.Tuning, opts Options, stats *Stats) (pkgio.Chart, error) {
	hooks := observability.Pipeline()

	// Render
	hooks.OnRenderStart(ctx, 1+boolInt(opts.Degrees)+len(opts.scales))
	renderStart := time.Now()
	tables, err := Tables(t, opts)
	stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, len(tables), stats.RenderTime, err)
	if err != nil {
		return pkgio.Chart{}, fmt.Errorf("render: %w", err)
	}
	chart := pkgio.Chart{Tuning: t, Tables: tables}

	// Analyze
	if opts.ShouldAnalyze() {
		analyzeStart := time.Now()
		report, err := intervals.Analyze(t.Notes())
		stats.AnalyzeTime = time.Since(analyzeStart)
		hooks.OnAnalyzeComplete(ctx, len(report.Available), len(report.Missing), err)
		if err != nil {
			return pkgio.Chart{}, err
		}
		chart.Intervals = &report
	}
	return chart, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
