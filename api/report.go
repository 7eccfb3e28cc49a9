package api

import (
	"fmt"
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/civicwatch/complaint-api/background"
	"github.com/civicwatch/complaint-api/intake"
	"github.com/civicwatch/complaint-api/schema"
	"github.com/civicwatch/complaint-api/store"
)

// submitReport accepts a candidate complaint report from the intake form,
// runs it through the classification pipeline and returns the persisted
// report. A report is down-ranked by the rules, never rejected by them.
func (s *Server) submitReport(c *gin.Context) {
	var params struct {
		BusinessName            string                 `json:"businessName"`
		BusinessAddress         string                 `json:"businessAddress"`
		ComplaintDescription    string                 `json:"complaintDescription"`
		ReporterEmail           string                 `json:"reporterEmail"`
		Images                  []string               `json:"images"`
		Documents               []string               `json:"documents"`
		BusinessPk              *int64                 `json:"businessPk"`
		Location                *schema.DeviceLocation `json:"location"`
		LocationVerificationTag string                 `json:"locationVerificationTag"`
		CertificationAccepted   bool                   `json:"certificationAccepted"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	candidate := &schema.Report{
		BusinessName:    params.BusinessName,
		BusinessAddress: params.BusinessAddress,
		Description:     params.ComplaintDescription,
		ReporterEmail:   params.ReporterEmail,
		Images:          params.Images,
		Documents:       params.Documents,
		BusinessID:      params.BusinessPk,
		Location:        params.Location,
	}
	if params.LocationVerificationTag != "" {
		candidate.Tags = []schema.Tag{schema.Tag(params.LocationVerificationTag)}
	}

	report, err := s.pipeline.Submit(candidate)
	switch err {
	case nil:
	case intake.ErrMissingReporterEmail:
		abortWithEncoding(c, http.StatusBadRequest, errorMissingReporterEmail)
		return
	case intake.ErrMissingEstablishment:
		abortWithEncoding(c, http.StatusBadRequest, errorMissingEstablishment)
		return
	case intake.ErrInvalidProximityTag:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidProximityTag)
		return
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.enqueueGeocode(c, report)

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// enqueueGeocode schedules a coordinate backfill for the referenced business
// when it has none registered yet. The task is best-effort; a failed enqueue
// is recorded on the gin context and does not affect the submission.
func (s *Server) enqueueGeocode(c *gin.Context, report *schema.Report) {
	if s.background == nil || report.BusinessID == nil {
		return
	}

	business, err := s.store.GetBusiness(*report.BusinessID)
	if err != nil || business.HasCoordinates() {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: background.TaskGeocodeBusiness,
		Args: []tasks.Arg{
			{
				Type:  "int64",
				Value: business.ID,
			},
		},
	}); err != nil {
		c.Error(fmt.Errorf("enqueue geocode for business %d: %s", business.ID, err))
	}
}

func (s *Server) getReport(c *gin.Context) {
	reportID := c.Param("reportID")

	report, err := s.mongoStore.GetReport(reportID)
	if err == store.ErrReportNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorReportNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}
