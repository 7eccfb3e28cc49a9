package store

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/civicwatch/complaint-api/schema"
)

var (
	ErrBusinessNotFound = fmt.Errorf("business not found")
)

// GetBusiness returns the registered business of a given primary key
func (s *ComplaintStore) GetBusiness(id int64) (*schema.Business, error) {
	var b schema.Business
	if err := s.ormDB.Where("id = ?", id).First(&b).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &b, nil
}

// UpdateBusinessCoordinates caches geocoded coordinates on the business
// row. Concurrent verifications may write redundantly; last write wins.
func (s *ComplaintStore) UpdateBusinessCoordinates(id int64, latitude, longitude float64) error {
	result := s.ormDB.Model(schema.Business{}).Where("id = ?", id).Updates(map[string]interface{}{
		"latitude":  latitude,
		"longitude": longitude,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBusinessNotFound
	}
	return nil
}

// ListBusinessesWithoutCoordinates returns businesses whose coordinates
// have not been registered or resolved yet, for the geocode backfill task.
func (s *ComplaintStore) ListBusinessesWithoutCoordinates(limit int) ([]schema.Business, error) {
	businesses := []schema.Business{}
	if err := s.ormDB.
		Where("latitude IS NULL OR longitude IS NULL").
		Order("id").
		Limit(limit).
		Find(&businesses).Error; err != nil {
		return nil, err
	}
	return businesses, nil
}
