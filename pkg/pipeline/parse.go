package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/fretboard/pkg/observability"
	"github.com/matzehuels/fretboard/pkg/tuning"
)

// Parse scans the tuning argument. Characters that are not notes come back
// as skipped tokens; only input with no notes at all is an error.
func Parse(ctx context.Context, input string) (tuning.Tuning, []tuning.Token, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, input)
	start := time.Now()

	skipped := tuning.Skipped(tuning.Scan(input))
	t, err := tuning.Parse(input)

	hooks.OnParseComplete(ctx, input, t.Len(), len(skipped), time.Since(start), err)
	if err != nil {
		return tuning.Tuning{}, skipped, err
	}
	return t, skipped, nil
}
