package geo

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/civicwatch/complaint-api/external/geoinfo"
	"github.com/civicwatch/complaint-api/schema"
)

const logPrefix = "verifier"

// DefaultProximityThreshold is the verification radius in meters.
const DefaultProximityThreshold = 200

var (
	ErrBusinessNotFound    = fmt.Errorf("business not found")
	ErrUnresolvableAddress = fmt.Errorf("business address cannot be resolved")
	ErrGeocodingFailed     = fmt.Errorf("geocoding request failed")
)

// BusinessGeoStore is the slice of the business registry the verifier needs.
type BusinessGeoStore interface {
	GetBusiness(id int64) (*schema.Business, error)
	UpdateBusinessCoordinates(id int64, latitude, longitude float64) error
}

// VerificationResult carries the outcome of one proximity check.
type VerificationResult struct {
	Tag              schema.Tag
	DistanceMeters   float64
	ThresholdMeters  int
	BusinessLocation schema.Location
}

// Verifier resolves a business's coordinates and classifies the reporter's
// distance against a threshold. It performs at most one geocoding call per
// verification and never retries; the caller may retry the whole call.
type Verifier struct {
	businesses BusinessGeoStore
	geoClient  geoinfo.GeoInfo
}

func NewVerifier(businesses BusinessGeoStore, geoClient geoinfo.GeoInfo) *Verifier {
	return &Verifier{
		businesses: businesses,
		geoClient:  geoClient,
	}
}

// Verify classifies the reporter's distance to the business. A verification
// failure is advisory: the caller attaches Failed Location Verification to
// the candidate report and submits it anyway.
func (v *Verifier) Verify(businessID int64, reporterLat, reporterLng float64, thresholdMeters int) (*VerificationResult, error) {
	if thresholdMeters <= 0 {
		thresholdMeters = DefaultProximityThreshold
	}

	business, err := v.businesses.GetBusiness(businessID)
	if err != nil {
		return nil, ErrBusinessNotFound
	}

	location, err := v.resolveCoordinates(business)
	if err != nil {
		return nil, err
	}

	distance := Distance(reporterLat, reporterLng, location.Latitude, location.Longitude)

	tag := schema.TagFailedLocationVerification
	if distance <= float64(thresholdMeters) {
		tag = schema.TagLocationVerified
	}

	return &VerificationResult{
		Tag:              tag,
		DistanceMeters:   distance,
		ThresholdMeters:  thresholdMeters,
		BusinessLocation: *location,
	}, nil
}

// resolveCoordinates prefers registered coordinates and falls back to
// geocoding the free-text address. A successful geocode is written back to
// the business row as a cache fill; that write is best-effort and its
// failure never affects the verification result.
func (v *Verifier) resolveCoordinates(business *schema.Business) (*schema.Location, error) {
	if business.HasCoordinates() {
		return &schema.Location{
			Latitude:  *business.Latitude,
			Longitude: *business.Longitude,
		}, nil
	}

	if !business.Geocodable() {
		return nil, ErrUnresolvableAddress
	}

	results, err := v.geoClient.Get(business.FullAddress())
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"business": business.ID,
			"error":    err,
		}).Warn("geocode business address")
		return nil, ErrGeocodingFailed
	}
	if len(results) == 0 {
		return nil, ErrUnresolvableAddress
	}

	location := schema.Location{
		Latitude:  results[0].Geometry.Location.Lat,
		Longitude: results[0].Geometry.Location.Lng,
	}

	if err := v.businesses.UpdateBusinessCoordinates(business.ID, location.Latitude, location.Longitude); err != nil {
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"business": business.ID,
			"error":    err,
		}).Error("save resolved business coordinates")
	}

	return &location, nil
}
