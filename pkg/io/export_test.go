package io

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/fretboard/pkg/fretboard"
	"github.com/matzehuels/fretboard/pkg/intervals"
	"github.com/matzehuels/fretboard/pkg/tuning"
)

func testChart(t *testing.T) Chart {
	t.Helper()
	tu := tuning.MustParse("DG")
	tb, err := fretboard.Build(tu)
	require.NoError(t, err)
	report, err := intervals.Analyze(tu.Notes())
	require.NoError(t, err)
	return Chart{Tuning: tu, Tables: []fretboard.Table{tb}, Intervals: &report}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testChart(t)))

	var decoded struct {
		Tuning []string `json:"tuning"`
		Tables []struct {
			View      string `json:"view"`
			Frets     int    `json:"frets"`
			Reference string `json:"reference"`
			Rows      []struct {
				Open  string   `json:"open"`
				Cells []string `json:"cells"`
			} `json:"rows"`
		} `json:"tables"`
		Intervals struct {
			Gaps      []int `json:"gaps"`
			Available []struct {
				Distance int    `json:"distance"`
				Name     string `json:"name"`
			} `json:"available"`
		} `json:"intervals"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, []string{"D", "G"}, decoded.Tuning)
	require.Len(t, decoded.Tables, 1)
	tb := decoded.Tables[0]
	assert.Equal(t, "notes", tb.View)
	assert.Equal(t, 12, tb.Frets)
	assert.Equal(t, "D", tb.Reference)
	require.Len(t, tb.Rows, 2)
	assert.Equal(t, "G", tb.Rows[0].Open)
	assert.Equal(t, "G#", tb.Rows[0].Cells[1])
	assert.Equal(t, []int{5}, decoded.Intervals.Gaps)
	require.Len(t, decoded.Intervals.Available, 1)
	assert.Equal(t, "P4", decoded.Intervals.Available[0].Name)
}

func TestWriteJSONWithoutIntervals(t *testing.T) {
	c := testChart(t)
	c.Intervals = nil

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, c))
	assert.NotContains(t, buf.String(), `"intervals"`)
}
