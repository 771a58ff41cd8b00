package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fretboard/pkg/errors"
	pkgio "github.com/matzehuels/fretboard/pkg/io"
	"github.com/matzehuels/fretboard/pkg/observability"
	"github.com/matzehuels/fretboard/pkg/site"
)

// siteFlags are the site command's overrides of the config file.
type siteFlags struct {
	config    string
	input     string
	output    string
	format    string
	title     string
	inProcess bool
	noCache   bool
}

// siteCommand creates the site command for building a page of charts.
func (c *CLI) siteCommand() *cobra.Command {
	var flags siteFlags

	cmd := &cobra.Command{
		Use:   "site",
		Short: "Build an HTML or Markdown page of charts for a tuning list",
		Long: `Build an HTML or Markdown page of charts for a tuning list.

Settings come from fretboard.toml when present; flags override them. The
tuning list is a CSV (notes,name,comment), a TOML file of [[tuning]] tables,
or plain text with one tuning per line.

Each tuning is charted by running "fretboard chart" as a subprocess, so a
tuning that fails shows its error in the page without stopping the build.
--in-process renders in this process instead.`,
		Example: `  fretboard site
  fretboard site --input tunings.csv --output docs/index.html
  fretboard site --output README.md --in-process`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSiteConfig(cmd, flags)
			if err != nil {
				return err
			}
			return c.runSite(cmd.Context(), cfg, flags.noCache)
		},
	}

	cmd.Flags().StringVar(&flags.config, "config", site.DefaultConfigFile, "config file")
	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "tuning list (default "+site.DefaultInput+")")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default "+site.DefaultOutput+")")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "html or markdown (default: from the output extension)")
	cmd.Flags().StringVar(&flags.title, "title", "", "page title")
	cmd.Flags().BoolVar(&flags.inProcess, "in-process", false, "render charts in this process instead of a subprocess")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{site.FormatHTML, site.FormatMarkdown}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// loadSiteConfig reads the config file and applies flag overrides. A
// missing default config file is not an error.
func loadSiteConfig(cmd *cobra.Command, flags siteFlags) (site.Config, error) {
	var cfg site.Config
	loaded, err := site.LoadConfig(flags.config)
	switch {
	case err == nil:
		cfg = loaded
	case errors.Is(err, errors.ErrCodeFileNotFound) && !cmd.Flags().Changed("config"):
		// no config file; flags and defaults only
	default:
		return cfg, err
	}

	if flags.input != "" {
		cfg.Input = flags.input
	}
	if flags.output != "" {
		cfg.Output = flags.output
		if flags.format == "" {
			cfg.Format = "" // infer from the new extension
		}
	}
	if flags.format != "" {
		cfg.Format = flags.format
	}
	if flags.title != "" {
		cfg.Title = flags.title
	}
	if cmd.Flags().Changed("in-process") {
		cfg.InProcess = flags.inProcess
	}

	cfg.ApplyDefaults()
	return cfg, cfg.Validate()
}

// runSite renders every tuning and writes the page.
func (c *CLI) runSite(ctx context.Context, cfg site.Config, noCache bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	entries, err := pkgio.ReadTunings(cfg.Input)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no tunings found in %s", cfg.Input)
	}

	renderer, err := c.siteRenderer(cfg, noCache)
	if err != nil {
		return err
	}
	switch r := renderer.(type) {
	case *site.CachedRenderer:
		defer r.Cache.Close()
	case *site.InProcessRenderer:
		defer r.Runner.Cache.Close()
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d tunings...", len(entries)))
	spinner.Start()
	defer followEntries(spinner, len(entries))()

	var buf bytes.Buffer
	summary, err := site.Generate(ctx, entries, renderer, &buf, site.Options{Title: cfg.Title, Format: cfg.Format})
	if err != nil {
		spinner.StopWithError("Site build failed")
		return err
	}
	spinner.Stop()

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}

	printSuccess("Wrote %d tunings", summary.Entries)
	printFile(cfg.Output)
	if summary.Failed > 0 {
		printWarning("%d of %d tunings failed to render", summary.Failed, summary.Entries)
	}
	prog.done("Site build complete")
	return nil
}

// siteRenderer picks the renderer. Subprocess outcomes are cached by
// command line; the in-process runner caches charts itself.
func (c *CLI) siteRenderer(cfg site.Config, noCache bool) (site.Renderer, error) {
	if cfg.InProcess {
		opts := cfg.Chart.Options()
		opts.Logger = c.Logger
		return &site.InProcessRenderer{Runner: c.newRunner(noCache), Options: opts}, nil
	}

	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate %s binary: %w", appName, err)
	}
	args := site.ChartArgs(cfg.Chart)
	if noCache {
		return site.NewExecRenderer(self, append(args, "--no-cache")), nil
	}
	return site.NewCachedRenderer(site.NewExecRenderer(self, args), c.newCache(false), newKeyer()), nil
}

// spinnerHooks forwards site events to the registered hooks and shows the
// entry being rendered next to the spinner.
type spinnerHooks struct {
	observability.SiteHooks
	spinner *Spinner
	total   int
}

func (h *spinnerHooks) OnEntryStart(ctx context.Context, index int, notes string) {
	h.SiteHooks.OnEntryStart(ctx, index, notes)
	h.spinner.SetMessage(fmt.Sprintf("Rendering %d/%d: %s", index+1, h.total, notes))
}

// followEntries installs spinnerHooks and returns a func that restores the
// previous site hooks.
func followEntries(s *Spinner, total int) func() {
	prev := observability.Site()
	observability.SetSiteHooks(&spinnerHooks{SiteHooks: prev, spinner: s, total: total})
	return func() { observability.SetSiteHooks(prev) }
}
