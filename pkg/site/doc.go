// Package site builds a single-page report of fretboard charts for a list
// of tunings, as HTML or Markdown.
//
// Each tuning is handed to a [Renderer]. [ExecRenderer] runs the fretboard
// binary as a subprocess and captures its stdout, stderr and exit code;
// [InProcessRenderer] calls the chart pipeline directly. Wrap either in a
// [CachedRenderer] to reuse outcomes across builds.
//
// A failing tuning never stops the build: its section shows whatever the
// renderer wrote to stderr and the exit code.
//
//	entries, _ := io.ReadTunings("tunings.csv")
//	r := site.NewExecRenderer("fretboard", site.ChartArgs(cfg.Chart))
//	summary, err := site.Generate(ctx, entries, r, out, site.Options{
//	    Title:  "Lap steel tuning charts",
//	    Format: site.FormatHTML,
//	})
package site
