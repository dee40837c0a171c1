package kprintf

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedTrace is returned for an unknown trace format name.
var ErrUnsupportedTrace = errors.New("unsupported trace format")

// TraceFormat selects how [WriteTrace] prints recorded calls.
type TraceFormat string

const (
	TraceTable TraceFormat = "table"
	TraceYAML  TraceFormat = "yaml"
	TraceJSON  TraceFormat = "json"
	TraceCSV   TraceFormat = "csv"
)

var traceFormats = []TraceFormat{TraceTable, TraceYAML, TraceJSON, TraceCSV}

func (f TraceFormat) String() string { return string(f) }

// TraceFormats returns all trace format names.
func TraceFormats() []TraceFormat {
	out := make([]TraceFormat, len(traceFormats))
	copy(out, traceFormats)
	return out
}

// ParseTraceFormat parses a trace format name.
func ParseTraceFormat(s string) (TraceFormat, error) {
	for _, f := range traceFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedTrace, s)
}

// WriteTrace prints calls to w in format f.
func WriteTrace(w io.Writer, f TraceFormat, calls []Call) error {
	switch f {
	case TraceTable:
		return writeTraceTable(w, calls)
	case TraceYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(calls); err != nil {
			return err
		}
		return enc.Close()
	case TraceJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(calls)
	case TraceCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(traceHeader); err != nil {
			return err
		}
		for i, c := range calls {
			if err := cw.Write(c.row(i)); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedTrace, f)
	}
}

var traceHeader = []string{"#", "op", "text", "value", "base", "precision", "width", "align", "fill"}

// row flattens c into display cells. Text is quoted so whitespace shows.
func (c Call) row(i int) []string {
	row := []string{strconv.Itoa(i + 1), string(c.Op), "", "", "", "", "", "", ""}
	if c.Text != "" || c.Op == OpBytes || c.Op == OpPaddedString {
		row[2] = strconv.Quote(c.Text)
	}
	switch c.Op {
	case OpSignedInt:
		row[3] = strconv.FormatInt(c.Int, 10)
	case OpUnsignedInt:
		base := int(c.Base)
		if base < 2 || base > 36 {
			base = 10
		}
		row[3] = strconv.FormatUint(c.Uint, base)
		if c.Upper {
			row[3] = strings.ToUpper(row[3])
		}
	}
	if c.Base != 0 {
		row[4] = strconv.Itoa(int(c.Base))
	}
	if c.Precision != nil {
		row[5] = c.Precision.String()
		row[6] = strconv.FormatUint(uint64(c.Width), 10)
	}
	if c.Align != nil {
		row[7] = c.Align.String()
	}
	if c.Fill != "" {
		row[8] = strconv.Quote(c.Fill)
	}
	return row
}

func writeTraceTable(w io.Writer, calls []Call) error {
	rows := make([][]string, len(calls))
	for i, c := range calls {
		rows[i] = c.row(i)
	}
	widths := make([]int, len(traceHeader))
	for _, row := range append([][]string{traceHeader}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	if err := writeTraceRow(w, traceHeader, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if err := writeTraceRow(w, sep, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeTraceRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeTraceRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = runewidth.FillRight(cell, widths[i])
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}
