package site

import (
	"context"
	"fmt"
	htmltemplate "html/template"
	"io"
	"regexp"
	"strings"
	"text/template"
	"time"

	"github.com/matzehuels/fretboard/pkg/errors"
	pkgio "github.com/matzehuels/fretboard/pkg/io"
	"github.com/matzehuels/fretboard/pkg/observability"
)

// Options controls report output.
type Options struct {
	Title  string
	Format string // FormatHTML or FormatMarkdown
}

// Summary counts what a build produced.
type Summary struct {
	Entries int
	Failed  int
}

// Section is one rendered tuning.
type Section struct {
	ID      string
	Title   string // name, or notes when unnamed
	Name    string
	Notes   string
	Comment string
	Outcome
}

var (
	whitespace = regexp.MustCompile(`\s+`)
	unsafeID   = regexp.MustCompile(`[^A-Za-z0-9\-_]`)
)

// SectionID returns the anchor id for the entry at index (zero-based):
// the slug of base with the one-based index appended, or "tuning-N" when
// nothing survives slugging.
func SectionID(base string, index int) string {
	slug := whitespace.ReplaceAllString(base, "-")
	slug = unsafeID.ReplaceAllString(slug, "")
	slug = strings.ToLower(strings.Trim(slug, "-_"))
	if slug == "" {
		return fmt.Sprintf("tuning-%d", index+1)
	}
	return fmt.Sprintf("%s-%d", slug, index+1)
}

// Generate renders every entry with r and writes the report to w. Entries
// that fail to render still get a section. It stops early only when ctx is
// cancelled or writing fails.
func Generate(ctx context.Context, entries []pkgio.Entry, r Renderer, w io.Writer, opts Options) (Summary, error) {
	if len(entries) == 0 {
		return Summary{}, errors.New(errors.ErrCodeInvalidInput, "no tunings to render")
	}
	if opts.Format == "" {
		opts.Format = FormatHTML
	}
	tmpl, err := reportTemplate(opts.Format)
	if err != nil {
		return Summary{}, err
	}

	hooks := observability.Site()
	sections := make([]Section, len(entries))
	summary := Summary{Entries: len(entries)}

	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		hooks.OnEntryStart(ctx, i, e.Notes)
		start := time.Now()

		out := r.Render(ctx, e.Notes)
		if out.Failed() {
			summary.Failed++
		}
		hooks.OnEntryComplete(ctx, i, e.Notes, out.ExitCode, time.Since(start))

		sections[i] = Section{
			ID:      SectionID(e.Title(), i),
			Title:   e.Title(),
			Name:    e.Name,
			Notes:   e.Notes,
			Comment: e.Comment,
			Outcome: out,
		}
	}

	data := struct {
		Title    string
		Sections []Section
	}{opts.Title, sections}
	if err := tmpl.Execute(w, data); err != nil {
		return summary, fmt.Errorf("write report: %w", err)
	}
	return summary, nil
}

type executor interface {
	Execute(w io.Writer, data any) error
}

var (
	htmlTemplate     = htmltemplate.Must(htmltemplate.New("report").Parse(htmlReport))
	markdownTemplate = template.Must(template.New("report").Funcs(template.FuncMap{"nl": endLine}).Parse(markdownReport))
)

func reportTemplate(format string) (executor, error) {
	switch format {
	case FormatHTML:
		return htmlTemplate, nil
	case FormatMarkdown:
		return markdownTemplate, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid report format: %q (must be one of: html, markdown)", format)
	}
}

// endLine terminates s with a newline so a closing code fence starts its
// own line.
func endLine(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

const htmlReport = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, -apple-system, "Segoe UI", Roboto, "Helvetica Neue", Arial; padding: 1rem; max-width: 960px; margin: auto; }
pre { background: #f8f8f8; padding: 1rem; border-radius: 6px; overflow: auto; white-space: pre-wrap; }
h1, h2 { margin-top: 1.25rem; }
.section { margin-bottom: 1.5rem; }
.stderr { color: #b22222; font-weight: 600; }
.meta { color: #666; font-size: 0.9rem; margin-bottom: 0.5rem; }
.tuning-header { display:flex; gap:1rem; align-items:baseline; flex-wrap:wrap; }
.tuning-notes { font-family: ui-monospace, SFMono-Regular, Menlo, Monaco, "Roboto Mono", monospace; font-weight:600; }
@media print {
    .pagebreak { page-break-before: always; }
}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<nav>
<h2>Contents</h2>
<ul>
{{- range .Sections}}
<li><a href="#{{.ID}}">{{.Title}}</a></li>
{{- end}}
</ul>
</nav>
{{- range .Sections}}
<div class="pagebreak"> </div><div class="section" id="{{.ID}}">
<div class="tuning-header">
{{- if .Name}}
<h2>{{.Name}}</h2>
{{- end}}
<div class="tuning-notes">{{.Notes}}</div>
</div>
{{- if .Comment}}
<div class="meta">{{.Comment}}</div>
{{- end}}
{{- if .Stdout}}
<pre>
{{.Stdout}}
</pre>
{{- end}}
{{- if .Stderr}}
<div class="meta stderr">STDERR:</div>
<pre>
{{.Stderr}}
</pre>
{{- end}}
{{- if gt .ExitCode 0}}
<div class="meta">Exit code: {{.ExitCode}}</div>
{{- end}}
</div>
{{- end}}
</body>
</html>
`

const markdownReport = `# {{.Title}}

## Contents
{{range .Sections}}
- [{{.Title}}](#{{.ID}})
{{- end}}
{{range .Sections}}
<a id="{{.ID}}"></a>

## {{.Title}}
{{if .Name}}
` + "`{{.Notes}}`" + `
{{end}}
{{- if .Comment}}
_{{.Comment}}_
{{end}}
{{- if .Stdout}}
` + "```text" + `
{{nl .Stdout}}` + "```" + `
{{end}}
{{- if .Stderr}}
**STDERR:**

` + "```text" + `
{{nl .Stderr}}` + "```" + `
{{end}}
{{- if gt .ExitCode 0}}
Exit code: {{.ExitCode}}
{{end}}
{{- end}}`
