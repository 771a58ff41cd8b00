// Package pkg provides the libraries behind the fretboard command: ASCII
// fretboard charts for guitar and lap steel tunings, the intervals a
// tuning's open strings span, and a page generator for tuning lists.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. Domain: [music] (notes, degrees, intervals, scale masks), [tuning]
//     (parsing a tuning string), [fretboard] (laying out and drawing tables),
//     [intervals] (interval analysis and the gap seeker)
//  2. Orchestration: [pipeline] (parse → lay out → analyze → write) used by
//     the chart command, the browser and the in-process site renderer
//  3. Pages: [site] (render a tuning list into one HTML or Markdown page)
//  4. Support: [cache], [io], [errors], [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	"D G D G B D"
//	      ↓
//	  [tuning] package (scan notes, lowest string first)
//	      ↓
//	  [fretboard] package (notes, degree and masked tables)
//	      ↓
//	  [intervals] package (available and missing intervals)
//	      ↓
//	  text or JSON
//
// # Quick Start
//
//	t, _ := tuning.Parse("EADGBE")
//	_ = fretboard.Render(os.Stdout, t, fretboard.WithFrets(15))
//
//	report, _ := intervals.Analyze(t.Notes())
//	_ = report.WriteText(os.Stdout)
//
// Or run the whole chart through the cached pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, _ := runner.Execute(ctx, pipeline.Options{Tuning: "C E G A C E", Degrees: true})
//	os.Stdout.Write(res.Output)
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test -run Example ./... # Examples only
//
// [music]: https://pkg.go.dev/github.com/matzehuels/fretboard/pkg/music
// [tuning]: https://pkg.go.dev/github.com/matzehuels/fretboard/pkg/tuning
// [fretboard]: https://pkg.go.dev/github.com/matzehuels/fretboard/pkg/fretboard
// [intervals]: https://pkg.go.dev/github.com/matzehuels/fretboard/pkg/intervals
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/fretboard/pkg/pipeline
// [site]: https://pkg.go.dev/github.com/matzehuels/fretboard/pkg/site
// [cache]: https://pkg.go.dev/github.com/matzehuels/fretboard/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/fretboard/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/fretboard/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/fretboard/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/fretboard/pkg/buildinfo
package pkg
