// Package render writes a report.Report in one of the supported output formats.
package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"adexdump/internal/report"
)

// Format is an output format name as accepted on the command line.
type Format string

const (
	FormatText   Format = "txt"
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

// Formats lists the accepted formats in help order.
var Formats = []Format{FormatText, FormatCSV, FormatJSON, FormatSQLite}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format %q (valid: %s)", s, FormatNames())
}

// FormatNames returns the accepted format names joined for help text.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Streams reports whether the format can be written to standard output.
func (f Format) Streams() bool {
	return f != FormatSQLite
}

// Options carries per-invocation metadata for formats that record it.
type Options struct {
	RunID string
}

// FileError is returned when the output destination cannot be written.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Write renders r in format f to the destination at path. The path "-"
// selects stdout for streaming formats.
func Write(ctx context.Context, path string, stdout io.Writer, r *report.Report, f Format, opts Options) error {
	if !f.Streams() {
		if path == Stdout {
			return fmt.Errorf("format %s requires an output file", f)
		}
		return SQLite(ctx, path, r, opts)
	}

	out, err := Open(path, stdout)
	if err != nil {
		return err
	}
	if err := Render(out, r, f, opts); err != nil {
		_ = out.Close()
		return &FileError{Path: path, Err: err}
	}
	if err := out.Close(); err != nil {
		return &FileError{Path: path, Err: err}
	}
	return nil
}

// Render writes r to w in a streaming format.
func Render(w io.Writer, r *report.Report, f Format, opts Options) error {
	switch f {
	case FormatText:
		return Text(w, r)
	case FormatCSV:
		return CSV(w, r)
	case FormatJSON:
		return JSON(w, r, opts)
	default:
		return fmt.Errorf("format %s cannot be streamed", f)
	}
}
