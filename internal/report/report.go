// Package report turns a loaded snapshot into findings.
//
// A Report carries exactly one Kind of finding: long-standing accounts
// (password age) or objects whose description matched a search.
package report

import "fmt"

// Kind identifies which filter produced a Report.
type Kind int

const (
	// KindPasswordAge marks findings from LongStandingAccounts.
	KindPasswordAge Kind = iota + 1
	// KindDescription marks findings from DescriptionSearch.
	KindDescription
)

// String returns the stable name used in machine-readable output.
func (k Kind) String() string {
	switch k {
	case KindPasswordAge:
		return "longstanding"
	case KindDescription:
		return "description"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Headers returns the two column titles for the kind.
func (k Kind) Headers() [2]string {
	switch k {
	case KindPasswordAge:
		return [2]string{"User", "Password Last Set"}
	case KindDescription:
		return [2]string{"Object", "Description"}
	default:
		return [2]string{"Label", "Detail"}
	}
}

// Finding is a single (label, detail) result row.
type Finding struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
}

// Report is the ordered result of one filter run.
type Report struct {
	Kind     Kind
	Findings []Finding
}

// Len returns the number of findings.
func (r *Report) Len() int {
	return len(r.Findings)
}

// Empty reports whether the filter matched nothing.
func (r *Report) Empty() bool {
	return len(r.Findings) == 0
}
