package render

import (
	"encoding/csv"
	"io"

	"adexdump/internal/report"
)

// CSV writes the kind's header row followed by one row per finding.
// Records end in CRLF as RFC 4180 requires.
func CSV(w io.Writer, r *report.Report) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	headers := r.Kind.Headers()
	if err := cw.Write(headers[:]); err != nil {
		return err
	}
	for _, f := range r.Findings {
		if err := cw.Write([]string{f.Label, f.Detail}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
