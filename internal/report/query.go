package report

import (
	"fmt"
	"time"

	"adexdump/internal/snapshot"
)

// Query is the filter selected for one invocation. Exactly one
// implementation runs per report.
type Query interface {
	Kind() Kind
	// Status is the progress line printed before the filter runs.
	Status() string
	Run(doc *snapshot.Document) *Report
}

// PasswordAgeQuery selects LongStandingAccounts.
type PasswordAgeQuery struct {
	MaxAgeDays int
	Clock      Clock
	Location   *time.Location
}

func (PasswordAgeQuery) Kind() Kind { return KindPasswordAge }

func (PasswordAgeQuery) Status() string {
	return "[+] Checking for long standing accounts without recent password changes..."
}

func (q PasswordAgeQuery) Run(doc *snapshot.Document) *Report {
	return LongStandingAccounts(doc, q.MaxAgeDays, q.Clock, q.Location)
}

// DescriptionQuery selects DescriptionSearch.
type DescriptionQuery struct {
	Text string
}

func (DescriptionQuery) Kind() Kind { return KindDescription }

func (q DescriptionQuery) Status() string {
	return fmt.Sprintf("[+] Searching for %s in object descriptions...", q.Text)
}

func (q DescriptionQuery) Run(doc *snapshot.Document) *Report {
	return DescriptionSearch(doc, q.Text)
}
