package pipeline

import (
	"testing"

	"github.com/matzehuels/fretboard/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"svg", true},
		{"TEXT", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Tuning: "EADGBE", Scales: []string{"minor-pentatonic", " ", "MAJOR SCALE"}, Reference: "c#"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Frets != DefaultFrets {
		t.Errorf("Frets = %d, want %d", opts.Frets, DefaultFrets)
	}
	if opts.Format != FormatText {
		t.Errorf("Format = %q, want %q", opts.Format, FormatText)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}
	want := []string{"Minor pentatonic", "Major scale"}
	if len(opts.Scales) != len(want) {
		t.Fatalf("Scales = %v, want %v", opts.Scales, want)
	}
	for i := range want {
		if opts.Scales[i] != want[i] {
			t.Errorf("Scales[%d] = %q, want %q", i, opts.Scales[i], want[i])
		}
	}
	if opts.Reference != "C#" {
		t.Errorf("Reference = %q, want C#", opts.Reference)
	}

	// idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call: %v", err)
	}
}

func TestValidateAndSetDefaultsAllScales(t *testing.T) {
	opts := Options{Tuning: "DG", AllScales: true, Scales: []string{"ignored"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if len(opts.Scales) != 15 || opts.Scales[0] != "Major scale" {
		t.Errorf("Scales = %v, want the full catalogue", opts.Scales)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing tuning", Options{}, errors.ErrCodeMissingArgument},
		{"blank tuning", Options{Tuning: "   "}, errors.ErrCodeEmptyTuning},
		{"bad frets", Options{Tuning: "E", Frets: 14}, errors.ErrCodeInvalidFrets},
		{"bad format", Options{Tuning: "E", Format: "svg"}, errors.ErrCodeInvalidFormat},
		{"bad scale", Options{Tuning: "E", Scales: []string{"lydian dominant"}}, errors.ErrCodeUnknownScale},
		{"bad reference", Options{Tuning: "E", Reference: "H"}, errors.ErrCodeUnknownNote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestChartKeyOpts(t *testing.T) {
	a := Options{Tuning: "EADGBE", Format: "text"}
	b := Options{Tuning: "EADGBE", Format: "json"}
	_ = a.ValidateAndSetDefaults()
	_ = b.ValidateAndSetDefaults()

	ka, kb := a.ChartKeyOpts(), b.ChartKeyOpts()
	if ka.Frets != kb.Frets || ka.Intervals != kb.Intervals || !ka.Intervals {
		t.Errorf("format must not change the chart key: %+v vs %+v", ka, kb)
	}

	c := Options{Tuning: "EADGBE", SkipIntervals: true}
	_ = c.ValidateAndSetDefaults()
	if c.ChartKeyOpts().Intervals {
		t.Error("SkipIntervals should clear Intervals in the key")
	}
}
