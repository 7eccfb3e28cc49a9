package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddTagIdempotent(t *testing.T) {
	r := Report{}

	r.AddTag(TagLocationVerified)
	r.AddTag(TagHighVolumeReporter)
	r.AddTag(TagLocationVerified)

	assert.Equal(t, []Tag{TagLocationVerified, TagHighVolumeReporter}, r.Tags)
	assert.True(t, r.HasTag(TagLocationVerified))
	assert.True(t, r.HasTag(TagHighVolumeReporter))
	assert.False(t, r.HasTag(TagExistingCase))
}

func TestTagPolarity(t *testing.T) {
	for _, tag := range NegativeTags {
		assert.True(t, IsNegativeTag(tag))
		assert.False(t, IsPositiveTag(tag))
	}
	for _, tag := range PositiveTags {
		assert.True(t, IsPositiveTag(tag))
		assert.False(t, IsNegativeTag(tag))
	}
}

func TestIsProximityTag(t *testing.T) {
	assert.True(t, IsProximityTag(TagLocationVerified))
	assert.True(t, IsProximityTag(TagFailedLocationVerification))
	assert.False(t, IsProximityTag(TagExistingCase))
	assert.False(t, IsProximityTag(TagCredibleReporter))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "reporter@example.com", NormalizeEmail(" Reporter@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestBusinessFullAddress(t *testing.T) {
	b := Business{
		Address:    "100 Main St",
		City:       "Springfield",
		PostalCode: "62704",
	}
	assert.Equal(t, "100 Main St, Springfield, 62704", b.FullAddress())
	assert.True(t, b.Geocodable())

	short := Business{Address: "x"}
	assert.False(t, short.Geocodable())
	assert.False(t, short.HasCoordinates())
}
