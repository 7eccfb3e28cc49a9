package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicwatch/complaint-api/geo"
)

// verifyLocation runs a synchronous proximity check for the intake form. The
// form calls it before submission and attaches the returned tag to the
// candidate report. Resolution failures are soft: the response carries
// ok=false with a distinguishable cause instead of an HTTP error.
func (s *Server) verifyLocation(c *gin.Context) {
	var params struct {
		BusinessPk      *int64   `json:"business_pk"`
		ReporterLat     *float64 `json:"reporter_lat"`
		ReporterLng     *float64 `json:"reporter_lng"`
		ThresholdMeters int      `json:"threshold_meters"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.BusinessPk == nil || params.ReporterLat == nil || params.ReporterLng == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !geo.ValidCoordinates(*params.ReporterLat, *params.ReporterLng) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidCoordinates)
		return
	}

	result, err := s.verifier.Verify(*params.BusinessPk, *params.ReporterLat, *params.ReporterLng, params.ThresholdMeters)
	switch err {
	case nil:
	case geo.ErrBusinessNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorBusinessNotFound)
		return
	case geo.ErrUnresolvableAddress, geo.ErrGeocodingFailed:
		c.Error(err)
		c.JSON(http.StatusOK, gin.H{
			"ok":    false,
			"error": err.Error(),
		})
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":               true,
		"tag":              result.Tag,
		"distance_meters":  result.DistanceMeters,
		"threshold_meters": result.ThresholdMeters,
		"business_coords": gin.H{
			"lat": result.BusinessLocation.Latitude,
			"lng": result.BusinessLocation.Longitude,
		},
	})
}
