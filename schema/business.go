package schema

import (
	"strings"
	"time"
)

// minimum address length worth sending to the geocoder
const minGeocodableAddress = 5

// Business is a registered establishment. Rows are created and maintained
// by the administrative console; the engine only reads coordinates and may
// cache resolved coordinates back after a successful geocode.
type Business struct {
	ID         int64     `json:"id" gorm:"primary_key"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasCoordinates reports whether registered coordinates are present. When
// they are, they are authoritative and no geocoding happens.
func (b *Business) HasCoordinates() bool {
	return b.Latitude != nil && b.Longitude != nil
}

// FullAddress joins the free-text address fields for geocoding.
func (b *Business) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{b.Address, b.City, b.PostalCode} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}

// Geocodable reports whether the address is long enough to be worth a
// geocoding request.
func (b *Business) Geocodable() bool {
	return len(strings.TrimSpace(b.FullAddress())) >= minGeocodableAddress
}
