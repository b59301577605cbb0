package render

import (
	"encoding/json"
	"io"

	"adexdump/internal/report"
)

type jsonReport struct {
	RunID    string           `json:"run_id,omitempty"`
	Kind     string           `json:"kind"`
	Headers  [2]string        `json:"headers"`
	Count    int              `json:"count"`
	Findings []report.Finding `json:"findings"`
}

// JSON writes r as an indented JSON document.
func JSON(w io.Writer, r *report.Report, opts Options) error {
	findings := r.Findings
	if findings == nil {
		findings = []report.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(jsonReport{
		RunID:    opts.RunID,
		Kind:     r.Kind.String(),
		Headers:  r.Kind.Headers(),
		Count:    len(findings),
		Findings: findings,
	})
}
