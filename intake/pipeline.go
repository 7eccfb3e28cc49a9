package intake

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/civicwatch/complaint-api/classify"
	"github.com/civicwatch/complaint-api/schema"
)

const logPrefix = "intake"

var (
	ErrMissingReporterEmail = fmt.Errorf("reporter email is required")
	ErrMissingEstablishment = fmt.Errorf("business name and address are required")
	ErrInvalidProximityTag  = fmt.Errorf("client may only attach a location verification tag")
)

// ReportStore is the slice of the report store the pipeline needs. The
// windowed reads observe previously committed reports only.
type ReportStore interface {
	CountReporterReports(email string, from, until int64) (int64, error)
	DistinctEstablishments(email string, from, until int64) ([]schema.EstablishmentKey, error)
	CountEstablishmentReports(key schema.EstablishmentKey, from, until int64) (int64, error)
	InsertReport(report *schema.Report) error
}

// Pipeline classifies and persists candidate reports. It replaces the
// database-trigger dispatch of the legacy intake with one explicit
// function: spam rules run first, the tier reduction second, and the
// insert commits content and classification as a single document.
type Pipeline struct {
	store ReportStore
	now   func() time.Time
}

func NewPipeline(store ReportStore) *Pipeline {
	return &Pipeline{
		store: store,
		now:   time.Now,
	}
}

// Submit runs the candidate through the classification rules and commits
// it. Candidates are annotated and down-ranked, never rejected: the only
// failures are invalid input (nothing written) and a failed insert.
func (p *Pipeline) Submit(candidate *schema.Report) (*schema.Report, error) {
	if err := p.prepare(candidate); err != nil {
		return nil, err
	}

	counts, err := p.gatherWindowCounts(candidate)
	if err != nil {
		return nil, err
	}

	tags, ceiling := classify.EvaluateSpamPatterns(counts)
	for _, tag := range tags {
		candidate.AddTag(tag)
	}
	candidate.AuthenticityLevel = classify.ClampScore(candidate.AuthenticityLevel, ceiling)

	tier, score := classify.ClassifyTier(candidate.Tags, candidate.AuthenticityLevel)
	candidate.AuthenticityTier = tier
	candidate.AuthenticityLevel = score

	if err := p.store.InsertReport(candidate); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"report": candidate.ID,
		"tier":   candidate.AuthenticityTier,
		"level":  candidate.AuthenticityLevel,
		"tags":   candidate.Tags,
	}).Info("report classified and stored")

	return candidate, nil
}

// prepare validates the candidate and fills classification defaults. The
// only tags accepted from the caller are the two proximity tags; every
// other classification field is owned by the engine.
func (p *Pipeline) prepare(candidate *schema.Report) error {
	candidate.ReporterEmail = schema.NormalizeEmail(candidate.ReporterEmail)
	if candidate.ReporterEmail == "" {
		return ErrMissingReporterEmail
	}

	candidate.BusinessName = strings.TrimSpace(candidate.BusinessName)
	candidate.BusinessAddress = strings.TrimSpace(candidate.BusinessAddress)
	if candidate.BusinessName == "" || candidate.BusinessAddress == "" {
		return ErrMissingEstablishment
	}

	for _, tag := range candidate.Tags {
		if !schema.IsProximityTag(tag) {
			return ErrInvalidProximityTag
		}
	}

	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
	}
	if candidate.Timestamp == 0 {
		candidate.Timestamp = p.now().Unix()
	}
	if candidate.Tags == nil {
		candidate.Tags = []schema.Tag{}
	}
	if candidate.AuthenticityLevel == 0 {
		candidate.AuthenticityLevel = schema.DefaultAuthenticityLevel
	}
	if candidate.AuthenticityTier == "" {
		candidate.AuthenticityTier = schema.TierMedium
	}
	if candidate.Status == "" {
		candidate.Status = schema.ReportStatusSubmitted
	}

	return nil
}

// gatherWindowCounts reads the three windowed aggregates. Every window
// ends at the candidate's creation instant, exclusive. Rules 1 and 3
// exclude the candidate from their own counts; Rule 2 counts the
// candidate's own establishment in the distinct set, so it is unioned in
// here rather than hidden inside a query.
func (p *Pipeline) gatherWindowCounts(candidate *schema.Report) (classify.WindowCounts, error) {
	until := candidate.Timestamp
	dayFrom := until - int64(classify.ReporterVolumeWindow/time.Second)
	weekFrom := until - int64(classify.ReporterBreadthWindow/time.Second)

	reporterCount, err := p.store.CountReporterReports(candidate.ReporterEmail, dayFrom, until)
	if err != nil {
		return classify.WindowCounts{}, err
	}

	keys, err := p.store.DistinctEstablishments(candidate.ReporterEmail, weekFrom, until)
	if err != nil {
		return classify.WindowCounts{}, err
	}
	distinct := int64(len(keys))
	own := candidate.Establishment()
	seen := false
	for _, key := range keys {
		if key == own {
			seen = true
			break
		}
	}
	if !seen {
		distinct++
	}

	establishmentFrom := until - int64(classify.EstablishmentVolumeWindow/time.Second)
	establishmentCount, err := p.store.CountEstablishmentReports(own, establishmentFrom, until)
	if err != nil {
		return classify.WindowCounts{}, err
	}

	return classify.WindowCounts{
		ReporterReports:        reporterCount,
		DistinctEstablishments: distinct,
		EstablishmentReports:   establishmentCount,
	}, nil
}
