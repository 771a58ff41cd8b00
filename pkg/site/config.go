package site

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/fretboard/pkg/errors"
	"github.com/matzehuels/fretboard/pkg/fretboard"
	"github.com/matzehuels/fretboard/pkg/pipeline"
)

// Report formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Defaults used when the config file leaves a field empty.
const (
	DefaultConfigFile = "fretboard.toml"
	DefaultTitle      = "Lap steel tuning charts"
	DefaultInput      = "tunings.csv"
	DefaultOutput     = "docs/index.html"
)

// Config describes a site build. It is read from fretboard.toml:
//
//	title = "Lap steel tuning charts"
//	input = "tunings.csv"
//	output = "docs/index.html"
//	in_process = false
//
//	[chart]
//	frets = 12
//	degrees = true
//	scales = ["Major scale", "Minor pentatonic"]
type Config struct {
	Title     string      `toml:"title"`
	Input     string      `toml:"input"`
	Output    string      `toml:"output"`
	Format    string      `toml:"format"`
	InProcess bool        `toml:"in_process"`
	Chart     ChartConfig `toml:"chart"`
}

// ChartConfig holds the chart options applied to every tuning.
type ChartConfig struct {
	Frets       int      `toml:"frets"`
	Degrees     bool     `toml:"degrees"`
	Scales      []string `toml:"scales"`
	AllScales   bool     `toml:"all_scales"`
	Reference   string   `toml:"reference"`
	NoIntervals bool     `toml:"no_intervals"`
}

// LoadConfig reads a config file. A missing file is FILE_NOT_FOUND.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// ApplyDefaults fills empty fields and infers the format from the output
// extension (.md and .markdown mean Markdown, anything else HTML).
func (c *Config) ApplyDefaults() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Format == "" {
		c.Format = FormatFromPath(c.Output)
	}
	if c.Chart.Frets == 0 {
		c.Chart.Frets = fretboard.DefaultFrets
	}
}

// Validate checks the config after defaults are applied.
func (c *Config) Validate() error {
	if c.Format != FormatHTML && c.Format != FormatMarkdown {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid format: %q (must be one of: html, markdown)", c.Format)
	}
	if err := errors.ValidateOutputPath(c.Output); err != nil {
		return err
	}
	return fretboard.ValidateFrets(c.Chart.Frets)
}

// FormatFromPath infers the report format from a file name.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatHTML
	}
}

// ChartArgs returns the chart command flags equivalent to c.
func ChartArgs(c ChartConfig) []string {
	var args []string
	if c.Frets != 0 && c.Frets != fretboard.DefaultFrets {
		args = append(args, "--frets", strconv.Itoa(c.Frets))
	}
	if c.Degrees {
		args = append(args, "--degrees")
	}
	if c.AllScales {
		args = append(args, "--all-scales")
	} else if len(c.Scales) > 0 {
		args = append(args, "--scales", strings.Join(c.Scales, ","))
	}
	if c.Reference != "" {
		args = append(args, "--reference", c.Reference)
	}
	if c.NoIntervals {
		args = append(args, "--no-intervals")
	}
	return args
}

// Options returns the pipeline options equivalent to c, for in-process
// rendering.
func (c ChartConfig) Options() pipeline.Options {
	return pipeline.Options{
		Frets:         c.Frets,
		Degrees:       c.Degrees,
		Scales:        c.Scales,
		AllScales:     c.AllScales,
		Reference:     c.Reference,
		SkipIntervals: c.NoIntervals,
	}
}
