package store

import (
	"github.com/jinzhu/gorm"

	"github.com/civicwatch/complaint-api/schema"
)

// complaint-api main datastore
type ComplaintCore interface {
	Ping() error

	// Business registry
	GetBusiness(id int64) (*schema.Business, error)
	UpdateBusinessCoordinates(id int64, latitude, longitude float64) error
	ListBusinessesWithoutCoordinates(limit int) ([]schema.Business, error)
}

// ComplaintStore is an implementation of ComplaintCore
type ComplaintStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewComplaintStore(ormDB *gorm.DB, mongo MongoStore) *ComplaintStore {
	return &ComplaintStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *ComplaintStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}
