package render

import (
	"io"
	"os"
)

// Stdout is the output path meaning "write to standard output".
const Stdout = "-"

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Open resolves an output path. Stdout yields stdout wrapped so that Close
// leaves it open; any other path is created or truncated.
func Open(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == Stdout {
		if stdout == nil {
			stdout = os.Stdout
		}
		return nopCloser{stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return f, nil
}
