package report

import (
	"math"
	"strings"
	"time"

	"adexdump/internal/snapshot"
)

const (
	// DefaultMaxPasswordAge is the password age threshold in days.
	DefaultMaxPasswordAge = 365

	// TimestampLayout renders pwdlastset as DD/MM/YYYY, HH:MM:SS.
	TimestampLayout = "02/01/2006, 15:04:05"

	secondsPerDay = 24 * 60 * 60
)

// Cutoff returns the epoch second before which a password counts as stale.
// Ages reaching past the start of int64 time saturate to math.MinInt64, so
// nothing is stale. maxAgeDays must not be negative.
func Cutoff(now time.Time, maxAgeDays int) int64 {
	if int64(maxAgeDays) > math.MaxInt64/secondsPerDay {
		return math.MinInt64
	}
	nowSec := now.UTC().Unix()
	span := int64(maxAgeDays) * secondsPerDay
	if nowSec < math.MinInt64+span {
		return math.MinInt64
	}
	return nowSec - span
}

// IsLongStanding reports whether a pwdlastset value is older than cutoff.
// A zero value means the password was never set and is never reported.
func IsLongStanding(pwdLastSet, cutoff int64) bool {
	return pwdLastSet != snapshot.PasswordNeverSet && pwdLastSet < cutoff
}

// FormatTimestamp renders an epoch-seconds value in loc using TimestampLayout.
func FormatTimestamp(epoch int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(epoch, 0).In(loc).Format(TimestampLayout)
}

// LongStandingAccounts returns every object whose password was last set more
// than maxAgeDays ago. Objects without pwdlastset are skipped. The detail is
// the pwdlastset timestamp rendered in loc (local time when nil).
func LongStandingAccounts(doc *snapshot.Document, maxAgeDays int, clock Clock, loc *time.Location) *Report {
	if clock == nil {
		clock = SystemClock{}
	}
	cutoff := Cutoff(clock.Now(), maxAgeDays)

	r := &Report{Kind: KindPasswordAge, Findings: []Finding{}}
	if doc == nil {
		return r
	}
	for _, rec := range doc.Records {
		props := rec.Properties
		if !props.HasPwdLastSet() {
			continue
		}
		if !IsLongStanding(*props.PwdLastSet, cutoff) {
			continue
		}
		r.Findings = append(r.Findings, Finding{
			Label:  props.Name,
			Detail: FormatTimestamp(*props.PwdLastSet, loc),
		})
	}
	return r
}

// DescriptionSearch returns every object whose description contains text.
// Matching is a case-sensitive substring test; objects without a description
// are skipped.
func DescriptionSearch(doc *snapshot.Document, text string) *Report {
	r := &Report{Kind: KindDescription, Findings: []Finding{}}
	if doc == nil {
		return r
	}
	for _, rec := range doc.Records {
		props := rec.Properties
		if !props.HasDescription() {
			continue
		}
		if !strings.Contains(*props.Description, text) {
			continue
		}
		r.Findings = append(r.Findings, Finding{
			Label:  props.Name,
			Detail: *props.Description,
		})
	}
	return r
}
