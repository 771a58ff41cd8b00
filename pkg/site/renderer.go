package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/matzehuels/fretboard/pkg/cache"
	fberrors "github.com/matzehuels/fretboard/pkg/errors"
	"github.com/matzehuels/fretboard/pkg/observability"
	"github.com/matzehuels/fretboard/pkg/pipeline"
)

// NotRun is the exit code of an outcome whose command never started.
const NotRun = -1

// Outcome is what rendering one tuning produced.
type Outcome struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exit_code"`
}

// Failed reports whether the renderer exited non-zero or never ran.
func (o Outcome) Failed() bool { return o.ExitCode != 0 }

// Renderer produces the chart for one tuning.
type Renderer interface {
	// Render never returns an error; failures are described in the
	// outcome's Stderr and ExitCode.
	Render(ctx context.Context, notes string) Outcome

	// Command returns the command line equivalent to rendering notes.
	// It identifies the outcome for caching and logs.
	Command(notes string) (name string, args []string)
}

// ExecRenderer runs an external chart command: Binary Args... -- notes.
// The "--" keeps tunings such as "-E-A-D-G-B-E" from parsing as flags.
type ExecRenderer struct {
	Binary string
	Args   []string
	Env    []string // added to the current environment
}

// NewExecRenderer runs "<binary> chart <flags...> -- <notes>".
func NewExecRenderer(binary string, flags []string) *ExecRenderer {
	return &ExecRenderer{
		Binary: binary,
		Args:   append([]string{"chart"}, flags...),
	}
}

// Command implements Renderer.
func (r *ExecRenderer) Command(notes string) (string, []string) {
	args := make([]string, 0, len(r.Args)+2)
	args = append(args, r.Args...)
	return r.Binary, append(args, "--", notes)
}

// Render implements Renderer.
func (r *ExecRenderer) Render(ctx context.Context, notes string) Outcome {
	name, args := r.Command(notes)
	cmd := exec.CommandContext(ctx, name, args...)
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if err == nil {
		return Outcome{Stdout: out.String(), Stderr: errBuf.String()}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return Outcome{Stdout: out.String(), Stderr: errBuf.String(), ExitCode: exitErr.ExitCode()}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return Outcome{Stderr: fmt.Sprintf("Error: %s not found.\n", name), ExitCode: NotRun}
	}
	return Outcome{Stderr: fmt.Sprintf("Error running %s: %v\n", name, err), ExitCode: NotRun}
}

// InProcessRenderer renders with a pipeline runner in the current process.
// Its outcomes match what the chart command prints.
type InProcessRenderer struct {
	Runner  *pipeline.Runner
	Options pipeline.Options // Tuning is replaced per call
}

// Command implements Renderer.
func (r *InProcessRenderer) Command(notes string) (string, []string) {
	cfg := ChartConfig{
		Frets:       r.Options.Frets,
		Degrees:     r.Options.Degrees,
		Scales:      r.Options.Scales,
		AllScales:   r.Options.AllScales,
		Reference:   r.Options.Reference,
		NoIntervals: r.Options.SkipIntervals,
	}
	args := append([]string{"chart"}, ChartArgs(cfg)...)
	return "in-process", append(args, "--", notes)
}

// Render implements Renderer.
func (r *InProcessRenderer) Render(ctx context.Context, notes string) Outcome {
	opts := r.Options
	opts.Tuning = notes
	opts.Format = pipeline.FormatText

	res, err := r.Runner.Execute(ctx, opts)
	if err != nil {
		return Outcome{Stderr: fmt.Sprintf("Error: %s\n", fberrors.UserMessage(err)), ExitCode: 1}
	}
	return Outcome{Stdout: string(res.Output)}
}

// CachedRenderer reuses outcomes of Inner keyed by its command line.
// Outcomes of commands that never ran are not cached.
type CachedRenderer struct {
	Inner Renderer
	Cache cache.Cache
	Keyer cache.Keyer
}

// NewCachedRenderer wraps inner. A nil keyer uses the default keyer.
func NewCachedRenderer(inner Renderer, c cache.Cache, keyer cache.Keyer) *CachedRenderer {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &CachedRenderer{Inner: inner, Cache: c, Keyer: keyer}
}

// Command implements Renderer.
func (r *CachedRenderer) Command(notes string) (string, []string) {
	return r.Inner.Command(notes)
}

const keyTypeOutcome = "outcome"

// Render implements Renderer.
func (r *CachedRenderer) Render(ctx context.Context, notes string) Outcome {
	hooks := observability.Cache()
	key := r.Keyer.OutcomeKey(r.Inner.Command(notes))

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var o Outcome
		if json.Unmarshal(data, &o) == nil {
			hooks.OnCacheHit(ctx, keyTypeOutcome)
			return o
		}
	}
	hooks.OnCacheMiss(ctx, keyTypeOutcome)

	o := r.Inner.Render(ctx, notes)
	if o.ExitCode == NotRun || ctx.Err() != nil {
		return o
	}
	if data, err := json.Marshal(o); err == nil {
		if r.Cache.Set(ctx, key, data, cache.DefaultTTL) == nil {
			hooks.OnCacheSet(ctx, keyTypeOutcome, len(data))
		}
	}
	return o
}

var (
	_ Renderer = (*ExecRenderer)(nil)
	_ Renderer = (*InProcessRenderer)(nil)
	_ Renderer = (*CachedRenderer)(nil)
)
