// Package importer reads checklist definitions from tabular files.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lbruni/collaudo/internal/domain/checklist"
)

var (
	// ErrMissingTitleColumn indicates the header row has no "title" column.
	ErrMissingTitleColumn = errors.New(`csv must contain a "title" column`)
	// ErrEmptyFile indicates the file has no header row.
	ErrEmptyFile = errors.New("csv file is empty")
)

// delimiters the sniffer chooses among.
var delimiters = []rune{',', ';', '\t'}

// ReadChecklistCSV parses a checklist file. The delimiter is auto-detected
// among comma, semicolon and tab. The header must contain a "title" column
// (case-insensitive, trimmed); "category" and "expected" are optional and
// default to empty. Rows whose title is blank after trimming are dropped.
func ReadChecklistCSV(path string) ([]checklist.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv header: %w", err)
	}

	titleCol := columnIndex(header, "title")
	if titleCol < 0 {
		return nil, ErrMissingTitleColumn
	}
	categoryCol := columnIndex(header, "category")
	expectedCol := columnIndex(header, "expected")

	var entries []checklist.Entry
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv row: %w", err)
		}

		title := strings.TrimSpace(field(row, titleCol))
		if title == "" {
			continue
		}
		entries = append(entries, checklist.Entry{
			Title:    title,
			Category: strings.TrimSpace(field(row, categoryCol)),
			Expected: strings.TrimSpace(field(row, expectedCol)),
		})
	}

	return entries, nil
}

// detectDelimiter picks the delimiter occurring most often in the first
// line, defaulting to comma.
func detectDelimiter(data []byte) rune {
	line := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		line = data[:idx]
	}

	best := ','
	bestCount := 0
	for _, d := range delimiters {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best = d
			bestCount = n
		}
	}
	return best
}

// columnIndex finds a header column by case-insensitive, trimmed name.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
