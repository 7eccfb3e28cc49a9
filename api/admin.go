package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/civicwatch/complaint-api/background"
)

const geocodeBackfillBatch = 100

// adminGeocodeBackfill is an internal only api to enqueue geocoding tasks
// for businesses that have no registered coordinates yet
func (s *Server) adminGeocodeBackfill(c *gin.Context) {
	businesses, err := s.store.ListBusinessesWithoutCoordinates(geocodeBackfillBatch)
	if shouldInterupt(err, c) {
		return
	}

	enqueued := 0
	for _, business := range businesses {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: background.TaskGeocodeBusiness,
			Args: []tasks.Arg{
				{
					Type:  "int64",
					Value: business.ID,
				},
			},
		}); err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		enqueued++
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK", "enqueued": enqueued})
}
