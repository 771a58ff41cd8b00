// Package pipeline provides the chart pipeline shared by the CLI, the
// site generator and the browser.
//
// # Architecture
//
// A chart is produced in three stages:
//
//  1. Parse: scan the tuning argument into notes, dropping unknown characters
//  2. Render: lay out the notes table, the optional degree table and one
//     masked degree table per requested scale
//  3. Analyze: summarize the intervals the open strings span
//
// The assembled chart is written as text (tables separated by blank
// lines, then the interval summary) or JSON.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Tuning:  "EADGBE",
//	    Degrees: true,
//	    Scales:  []string{"Minor pentatonic"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Output)
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fretboard/pkg/cache"
	"github.com/matzehuels/fretboard/pkg/errors"
	"github.com/matzehuels/fretboard/pkg/fretboard"
	"github.com/matzehuels/fretboard/pkg/intervals"
	"github.com/matzehuels/fretboard/pkg/music"
	"github.com/matzehuels/fretboard/pkg/tuning"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultFrets is the fret count drawn when none is given.
const DefaultFrets = fretboard.DefaultFrets

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultFormat is the default output format.
const DefaultFormat = FormatText

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// ValidFrets is the set of supported fret counts.
var ValidFrets = fretboard.ValidFrets

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a chart.
type Options struct {
	// Parse options
	Tuning string `json:"tuning"`

	// Render options
	Frets     int      `json:"frets,omitempty"`
	Degrees   bool     `json:"degrees,omitempty"`
	Scales    []string `json:"scales,omitempty"`
	AllScales bool     `json:"all_scales,omitempty"`
	Reference string   `json:"reference,omitempty"` // Degree reference note (default: lowest string)
	Format    string   `json:"format,omitempty"`

	// Analyze options
	SkipIntervals bool `json:"skip_intervals,omitempty"` // Omit the interval summary (default: false = analyze)

	// Runtime options (not serialized)
	Refresh bool        `json:"-"`
	Logger  *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
	scales    []music.Scale
	reference *music.Note
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tuning is the parsed tuning.
	Tuning tuning.Tuning

	// Skipped lists the input characters that were not notes.
	Skipped []tuning.Token

	// Tables are the laid-out tables in output order.
	Tables []fretboard.Table

	// Report is the interval summary. It is empty when intervals were
	// skipped or the tuning has a single string.
	Report intervals.Report

	// Output is the rendered chart in the requested format.
	Output []byte

	// Stats contains timing information.
	Stats Stats

	// CacheHit reports whether the chart came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Strings     int
	Tables      int
	ParseTime   time.Duration
	RenderTime  time.Duration
	AnalyzeTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// ValidateFrets checks that a fret count is supported.
func ValidateFrets(n int) error {
	return fretboard.ValidateFrets(n)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// Scale names are resolved against the catalogue and replaced by their
// canonical spelling. Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateTuningArg(o.Tuning); err != nil {
		return err
	}

	if o.Frets == 0 {
		o.Frets = DefaultFrets
	}
	if err := ValidateFrets(o.Frets); err != nil {
		return err
	}

	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}

	if err := o.resolveScales(); err != nil {
		return err
	}

	if o.Reference != "" {
		ref, err := music.ParseNote(o.Reference)
		if err != nil {
			return fmt.Errorf("reference: %w", err)
		}
		o.Reference = ref.String()
		o.reference = &ref
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

func (o *Options) resolveScales() error {
	o.scales = nil
	if o.AllScales {
		o.scales = append(o.scales, music.Scales...)
		o.Scales = music.ScaleNames()
		return nil
	}
	names := make([]string, 0, len(o.Scales))
	for _, name := range o.Scales {
		if strings.TrimSpace(name) == "" {
			continue
		}
		s, err := music.LookupScale(name)
		if err != nil {
			return err
		}
		o.scales = append(o.scales, s)
		names = append(names, s.Name)
	}
	o.Scales = names
	return nil
}

// ShouldAnalyze returns whether the interval summary is included.
func (o *Options) ShouldAnalyze() bool {
	return !o.SkipIntervals
}

// ChartKeyOpts returns cache key options for the rendered chart.
func (o *Options) ChartKeyOpts() cache.ChartKeyOpts {
	return cache.ChartKeyOpts{
		Frets:     o.Frets,
		Degrees:   o.Degrees,
		Scales:    o.Scales,
		Reference: o.Reference,
		Intervals: o.ShouldAnalyze(),
	}
}

// tableOptions returns the formatter options shared by every table.
func (o *Options) tableOptions() []fretboard.Option {
	opts := []fretboard.Option{fretboard.WithFrets(o.Frets)}
	if o.reference != nil {
		opts = append(opts, fretboard.WithReference(*o.reference))
	}
	return opts
}
