package schema

import (
	"strings"
)

const (
	ReportCollection = "report"
)

const (
	ReportStatusSubmitted   = "Submitted"
	ReportStatusUnderReview = "Under Review"
	ReportStatusResolved    = "Resolved"
)

// AuthenticityTier is the canonical three-level trust classification.
type AuthenticityTier string

const (
	TierLow    AuthenticityTier = "Low"
	TierMedium AuthenticityTier = "Medium"
	TierHigh   AuthenticityTier = "High"
)

const (
	MinAuthenticityLevel     = 0
	MaxAuthenticityLevel     = 100
	DefaultAuthenticityLevel = 100
)

type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// DeviceLocation is the reporter's captured device position at submission time.
type DeviceLocation struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty" bson:"accuracy,omitempty"`
	Timestamp int64   `json:"timestamp_ms" bson:"timestamp_ms"`
}

// EstablishmentKey identifies a reported establishment by its denormalized
// (name, address) pair as captured on the report.
type EstablishmentKey struct {
	Name    string `bson:"business_name"`
	Address string `bson:"business_address"`
}

// Report is the unit under classification. Content fields come from the
// intake form; tags, authenticity_level and authenticity_tier are written
// exactly once by the engine before the document becomes visible and are
// never mutated afterward.
type Report struct {
	ID                string           `json:"id" bson:"id"`
	BusinessName      string           `json:"business_name" bson:"business_name"`
	BusinessAddress   string           `json:"business_address" bson:"business_address"`
	Description       string           `json:"description" bson:"description"`
	ReporterEmail     string           `json:"reporter_email" bson:"reporter_email"`
	Images            []string         `json:"images" bson:"images"`
	Documents         []string         `json:"documents" bson:"documents"`
	BusinessID        *int64           `json:"business_pk,omitempty" bson:"business_id,omitempty"`
	Location          *DeviceLocation  `json:"location,omitempty" bson:"location,omitempty"`
	PinnedLocation    *Location        `json:"pinned_location,omitempty" bson:"pinned_location,omitempty"`
	Tags              []Tag            `json:"tags" bson:"tags"`
	AuthenticityLevel int              `json:"authenticity_level" bson:"authenticity_level"`
	AuthenticityTier  AuthenticityTier `json:"authenticity_tier" bson:"authenticity_tier"`
	Status            string           `json:"status" bson:"status"`
	Timestamp         int64            `json:"ts" bson:"ts"`
}

// AddTag appends t if it is not already present. Adding an existing tag is
// a no-op; tags are never removed once set.
func (r *Report) AddTag(t Tag) {
	if r.HasTag(t) {
		return
	}
	r.Tags = append(r.Tags, t)
}

// HasTag reports whether t is already set on the report.
func (r *Report) HasTag(t Tag) bool {
	for _, existing := range r.Tags {
		if existing == t {
			return true
		}
	}
	return false
}

// Establishment returns the report's denormalized establishment key.
func (r *Report) Establishment() EstablishmentKey {
	return EstablishmentKey{
		Name:    r.BusinessName,
		Address: r.BusinessAddress,
	}
}

// NormalizeEmail canonicalizes a reporter email for windowed aggregation.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
