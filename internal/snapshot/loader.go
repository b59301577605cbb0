package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// FileError is returned when the snapshot file cannot be opened or read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to read snapshot: %v", e.Err)
	}
	return fmt.Sprintf("failed to read snapshot %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ParseError is returned when the snapshot content is not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to parse snapshot: %v", e.Err)
	}
	return fmt.Sprintf("failed to parse snapshot %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and parses the snapshot at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		var fileErr *FileError
		var parseErr *ParseError
		switch {
		case errors.As(err, &fileErr):
			fileErr.Path = path
		case errors.As(err, &parseErr):
			parseErr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Decode parses a whole snapshot document from r.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FileError{Err: err}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &doc, nil
}
