package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/civicwatch/complaint-api/store"
)

// getBusiness looks a registered business up for the intake form.
func (s *Server) getBusiness(c *gin.Context) {
	businessID, err := strconv.ParseInt(c.Param("businessID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	business, err := s.store.GetBusiness(businessID)
	if err == store.ErrBusinessNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorBusinessNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"business": business})
}
