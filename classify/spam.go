package classify

import (
	"time"

	"github.com/civicwatch/complaint-api/schema"
)

const (
	// Rule 1: a reporter with this many prior reports inside the trailing
	// 24 hours makes the candidate a High-Volume Reporter submission.
	ReporterVolumeWindow = 24 * time.Hour
	ReporterVolumeLimit  = 5

	// Rule 2: distinct establishments reported inside the trailing 7 days,
	// the candidate's own establishment included in the distinct set.
	ReporterBreadthWindow = 7 * 24 * time.Hour
	ReporterBreadthLimit  = 10

	// Rule 3: prior reports against one establishment inside the trailing
	// 7 days; the candidate would be report number EstablishmentVolumeLimit+1.
	EstablishmentVolumeWindow = 7 * 24 * time.Hour
	EstablishmentVolumeLimit  = 9
)

const (
	ceilingNone             = schema.MaxAuthenticityLevel
	ceilingAnyRule          = 50
	ceilingVolumeAndBreadth = 25
)

// WindowCounts are aggregates over previously committed reports, computed
// against the snapshot visible at evaluation time. Concurrent submissions
// from the same reporter may each observe a snapshot that excludes the
// other; the rules are advisory classification, not access control.
type WindowCounts struct {
	// ReporterReports counts prior reports from the same normalized
	// reporter email in the trailing 24 hours, candidate excluded.
	ReporterReports int64

	// DistinctEstablishments counts distinct (name, address) pairs reported
	// by the same reporter in the trailing 7 days, candidate included.
	DistinctEstablishments int64

	// EstablishmentReports counts prior reports against the same
	// (name, address) pair in the trailing 7 days, candidate excluded.
	EstablishmentReports int64
}

// EvaluateSpamPatterns runs the three windowed rules and returns the tags
// to merge into the candidate's tag set plus a ceiling to clamp the working
// score with. The evaluator only annotates; it never rejects a report.
func EvaluateSpamPatterns(counts WindowCounts) ([]schema.Tag, int) {
	tags := make([]schema.Tag, 0, 3)

	highVolume := counts.ReporterReports >= ReporterVolumeLimit
	if highVolume {
		tags = append(tags, schema.TagHighVolumeReporter)
	}

	multiEstablishment := counts.DistinctEstablishments >= ReporterBreadthLimit
	if multiEstablishment {
		tags = append(tags, schema.TagMultiEstablishmentReporter)
	}

	if counts.EstablishmentReports >= EstablishmentVolumeLimit {
		tags = append(tags, schema.TagExistingCase)
	}

	ceiling := ceilingNone
	if len(tags) > 0 {
		ceiling = ceilingAnyRule
	}
	if highVolume && multiEstablishment {
		ceiling = ceilingVolumeAndBreadth
	}

	return tags, ceiling
}

// ClampScore applies a rule ceiling to the working score and keeps the
// result inside the valid authenticity range.
func ClampScore(score, ceiling int) int {
	if score > ceiling {
		score = ceiling
	}
	if score > schema.MaxAuthenticityLevel {
		score = schema.MaxAuthenticityLevel
	}
	if score < schema.MinAuthenticityLevel {
		score = schema.MinAuthenticityLevel
	}
	return score
}
