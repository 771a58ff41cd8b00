package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/fretboard/pkg/cache"
	"github.com/matzehuels/fretboard/pkg/errors"
	"github.com/matzehuels/fretboard/pkg/fretboard"
	"github.com/matzehuels/fretboard/pkg/intervals"
	"github.com/matzehuels/fretboard/pkg/music"
	"github.com/matzehuels/fretboard/pkg/observability"
	"github.com/matzehuels/fretboard/pkg/tuning"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(c, nil, nil)
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil {
		t.Errorf("NewRunner should fill defaults: %+v", r)
	}
}

func TestExecuteText(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Execute(context.Background(), Options{Tuning: "EAEAC#E", Degrees: true, Scales: []string{"Minor pentatonic"}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	tu := tuning.MustParse("EAEAC#E")
	notes, _ := fretboard.Build(tu)
	degrees, _ := fretboard.Build(tu, fretboard.WithView(fretboard.ViewDegrees))
	minor, _ := music.LookupScale("Minor pentatonic")
	masked, _ := fretboard.Build(tu, fretboard.WithView(fretboard.ViewDegrees), fretboard.WithMask(minor))
	report, _ := intervals.Analyze(tu.Notes())

	var want bytes.Buffer
	_ = fretboard.WriteTables(&want, notes, degrees, masked)
	want.WriteString("\n")
	_ = report.WriteText(&want)

	if string(res.Output) != want.String() {
		t.Errorf("Output mismatch:\ngot:\n%s\nwant:\n%s", res.Output, want.String())
	}
	if res.Stats.Strings != 6 || res.Stats.Tables != 3 {
		t.Errorf("Stats = %+v, want 6 strings and 3 tables", res.Stats)
	}
	if !strings.HasSuffix(string(res.Output), "Missing intervals (13): m2 M2 TT m6 m7 M7 m9 M9 m10 A11 m13 m14 M14\n") {
		t.Errorf("unexpected summary tail:\n%s", res.Output)
	}
	if len(res.Report.Available) != 11 {
		t.Errorf("Report.Available = %v", res.Report.Available)
	}
}

func TestExecuteSkipIntervals(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Execute(context.Background(), Options{Tuning: "DG", SkipIntervals: true})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(res.Output), "intervals") {
		t.Errorf("summary should be omitted:\n%s", res.Output)
	}
	if !res.Report.Empty() {
		t.Errorf("Report = %+v, want empty", res.Report)
	}
}

func TestExecuteSingleString(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Execute(context.Background(), Options{Tuning: "E"})
	if err != nil {
		t.Fatal(err)
	}
	tb, _ := fretboard.Build(tuning.MustParse("E"))
	if string(res.Output) != tb.String() {
		t.Errorf("single string chart should be just the notes table:\n%s", res.Output)
	}
}

func TestExecuteSkippedCharacters(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Execute(context.Background(), Options{Tuning: "C6 add9"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Tuning.String() != "C A D D" {
		t.Errorf("Tuning = %q, want %q", res.Tuning.String(), "C A D D")
	}
	if len(res.Skipped) == 0 {
		t.Error("expected skipped characters")
	}
}

func TestExecuteErrors(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	if _, err := r.Execute(ctx, Options{}); !errors.Is(err, errors.ErrCodeMissingArgument) {
		t.Errorf("empty argument: got %v", err)
	}
	if _, err := r.Execute(ctx, Options{Tuning: "xyz 123"}); !errors.Is(err, errors.ErrCodeEmptyTuning) {
		t.Errorf("no notes: got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := r.Execute(cancelled, Options{Tuning: "E"}); err != context.Canceled {
		t.Errorf("cancelled context: got %v", err)
	}
}

func TestExecuteCacheHit(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{Tuning: "DGDGBD", Degrees: true, AllScales: true}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit {
		t.Error("first run should miss")
	}

	// different spelling of the same tuning shares the entry
	opts.Tuning = "d g d g b d"
	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("second run should hit")
	}
	if !bytes.Equal(first.Output, second.Output) {
		t.Error("cached output differs from computed output")
	}
	if len(second.Tables) != len(first.Tables) || second.Report.Gaps[0] != first.Report.Gaps[0] {
		t.Error("cached chart should carry tables and report")
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestExecuteJSON(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Execute(context.Background(), Options{Tuning: "EADGBE", Format: FormatJSON, Frets: 15})
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Tuning []string `json:"tuning"`
		Tables []struct {
			Frets int `json:"frets"`
		} `json:"tables"`
	}
	if err := json.Unmarshal(res.Output, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, res.Output)
	}
	if strings.Join(decoded.Tuning, "") != "EADGBE" {
		t.Errorf("tuning = %v", decoded.Tuning)
	}
	if len(decoded.Tables) != 1 || decoded.Tables[0].Frets != 15 {
		t.Errorf("tables = %+v", decoded.Tables)
	}
}

func TestTablesOrder(t *testing.T) {
	opts := Options{Tuning: "EADGBE", Degrees: true, Scales: []string{"Blues scale", "Major triad"}, Reference: "A"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	tables, err := Tables(tuning.MustParse(opts.Tuning), opts)
	if err != nil {
		t.Fatal(err)
	}

	want := []struct{ view, title string }{
		{"notes", ""},
		{"degrees", ""},
		{"degrees", "Blues scale"},
		{"degrees", "Major triad"},
	}
	if len(tables) != len(want) {
		t.Fatalf("got %d tables, want %d", len(tables), len(want))
	}
	for i, w := range want {
		if tables[i].View != w.view || tables[i].Title != w.title {
			t.Errorf("table %d = %s/%q, want %s/%q", i, tables[i].View, tables[i].Title, w.view, w.title)
		}
		if tables[i].Reference != music.A {
			t.Errorf("table %d reference = %s, want A", i, tables[i].Reference)
		}
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnParseStart(context.Context, string) { h.record("parse-start") }
func (h *recordingHooks) OnParseComplete(context.Context, string, int, int, time.Duration, error) {
	h.record("parse-complete")
}
func (h *recordingHooks) OnRenderStart(context.Context, int) { h.record("render-start") }
func (h *recordingHooks) OnRenderComplete(context.Context, int, time.Duration, error) {
	h.record("render-complete")
}
func (h *recordingHooks) OnAnalyzeComplete(context.Context, int, int, error) { h.record("analyze") }

func TestExecuteHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	r := newTestRunner(t)
	if _, err := r.Execute(context.Background(), Options{Tuning: "DG"}); err != nil {
		t.Fatal(err)
	}

	want := "parse-start,parse-complete,render-start,render-complete,analyze"
	if got := strings.Join(hooks.events, ","); got != want {
		t.Errorf("events = %s, want %s", got, want)
	}
}
