package schema

// Tag is a piece of classification evidence attached to a report. The
// vocabulary is closed: rules and verifiers only emit tags defined here.
type Tag string

const (
	TagHighVolumeReporter         Tag = "High-Volume Reporter"
	TagMultiEstablishmentReporter Tag = "Multi-Establishment Reporter"
	TagExistingCase               Tag = "Existing Case"
	TagFailedLocationVerification Tag = "Failed Location Verification"

	// reserved for the review workflow, not emitted by any rule yet
	TagReporterUnderReview    Tag = "Reporter Under Review"
	TagPostClearanceComplaint Tag = "Post-Clearance Complaint"

	TagLocationVerified Tag = "Location Verified"

	// reserved
	TagCredibleReporter      Tag = "Credible Reporter"
	TagConsistentWithHistory Tag = "Consistent With History"
)

// NegativeTags mark evidence against a report's authenticity. Any one of
// them forces the Low tier regardless of positive evidence.
var NegativeTags = []Tag{
	TagHighVolumeReporter,
	TagMultiEstablishmentReporter,
	TagExistingCase,
	TagFailedLocationVerification,
	TagReporterUnderReview,
	TagPostClearanceComplaint,
}

// PositiveTags mark evidence supporting a report's authenticity.
var PositiveTags = []Tag{
	TagLocationVerified,
	TagCredibleReporter,
	TagConsistentWithHistory,
}

// IsNegativeTag reports whether t belongs to the negative vocabulary.
func IsNegativeTag(t Tag) bool {
	for _, n := range NegativeTags {
		if t == n {
			return true
		}
	}
	return false
}

// IsPositiveTag reports whether t belongs to the positive vocabulary.
func IsPositiveTag(t Tag) bool {
	for _, p := range PositiveTags {
		if t == p {
			return true
		}
	}
	return false
}

// IsProximityTag reports whether t is one of the two tags a client may
// attach after running location verification. All other tags are written
// by the engine only.
func IsProximityTag(t Tag) bool {
	return t == TagLocationVerified || t == TagFailedLocationVerification
}
