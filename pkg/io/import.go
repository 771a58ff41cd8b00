package io

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/fretboard/pkg/errors"
)

// Entry is one tuning in a list.
type Entry struct {
	Notes   string `toml:"notes" json:"notes"`
	Name    string `toml:"name" json:"name,omitempty"`
	Comment string `toml:"comment" json:"comment,omitempty"`
}

// Title is the name if set, otherwise the notes.
func (e Entry) Title() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Notes
}

var csvColumns = []string{"notes", "name", "comment"}

// ReadTunings reads a tuning list from path, choosing the format by
// extension.
func ReadTunings(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "tuning list %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		entries, err = ReadCSV(bytes.NewReader(data))
	case ".toml":
		entries, err = ReadTOML(bytes.NewReader(data))
	default:
		entries, err = ReadText(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// ReadCSV decodes a notes,name,comment table, with or without a header.
func ReadCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse csv")
	}

	var rows [][]string
	for _, rec := range records {
		if !blankRecord(rec) {
			rows = append(rows, rec)
		}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// column index per field; headerless files use the fixed order
	index := map[string]int{"notes": 0, "name": 1, "comment": 2}
	if header, ok := detectHeader(rows[0]); ok {
		index = header
		rows = rows[1:]
	}

	var entries []Entry
	for _, row := range rows {
		e := Entry{
			Notes:   field(row, index, "notes"),
			Name:    field(row, index, "name"),
			Comment: field(row, index, "comment"),
		}
		if e.Notes == "" {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func detectHeader(row []string) (map[string]int, bool) {
	index := make(map[string]int)
	for i, cell := range row {
		name := strings.ToLower(strings.TrimSpace(cell))
		for _, col := range csvColumns {
			if name == col {
				if _, seen := index[col]; !seen {
					index[col] = i
				}
			}
		}
	}
	return index, len(index) > 0
}

func field(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blankRecord(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ReadTOML decodes [[tuning]] tables.
func ReadTOML(r io.Reader) ([]Entry, error) {
	var doc struct {
		Tuning []Entry `toml:"tuning"`
	}
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse toml")
	}

	entries := make([]Entry, 0, len(doc.Tuning))
	for _, e := range doc.Tuning {
		e.Notes = strings.TrimSpace(e.Notes)
		if e.Notes == "" {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ReadText reads one tuning per line. The whole trimmed line is the notes.
func ReadText(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, Entry{Notes: line})
	}
	return entries, nil
}
