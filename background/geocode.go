package background

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// TaskGeocodeBusiness resolves a business address into coordinates and
// caches them on the business row.
const TaskGeocodeBusiness = "geocode_business"

// GeocodeBusiness fills in the coordinates of a business that has none
// registered. The task is idempotent: businesses that already carry
// coordinates are skipped, and a repeated geocode of the same address
// overwrites with the same values (last write wins).
func (m *Manager) GeocodeBusiness(businessID int64) error {
	business, err := m.store.GetBusiness(businessID)
	if err != nil {
		return err
	}

	if business.HasCoordinates() {
		return nil
	}

	if !business.Geocodable() {
		log.WithFields(log.Fields{
			"prefix":   "background",
			"business": business.ID,
		}).Warn("business address too short to geocode")
		return nil
	}

	results, err := m.geoClient.Get(business.FullAddress())
	if err != nil {
		return fmt.Errorf("geocode business %d: %s", business.ID, err)
	}
	if len(results) == 0 {
		log.WithFields(log.Fields{
			"prefix":   "background",
			"business": business.ID,
			"address":  business.FullAddress(),
		}).Warn("business address not resolvable")
		return nil
	}

	location := results[0].Geometry.Location
	if err := m.store.UpdateBusinessCoordinates(business.ID, location.Lat, location.Lng); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":    "background",
		"business":  business.ID,
		"latitude":  location.Lat,
		"longitude": location.Lng,
	}).Info("business coordinates resolved")

	return nil
}
