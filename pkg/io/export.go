package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/fretboard/pkg/fretboard"
	"github.com/matzehuels/fretboard/pkg/intervals"
	"github.com/matzehuels/fretboard/pkg/tuning"
)

// Chart is the exported form of a rendered chart.
type Chart struct {
	Tuning    tuning.Tuning     `json:"tuning"`
	Tables    []fretboard.Table `json:"tables"`
	Intervals *intervals.Report `json:"intervals,omitempty"`
}

// WriteJSON encodes c as indented JSON and writes it to w.
func WriteJSON(w io.Writer, c Chart) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
