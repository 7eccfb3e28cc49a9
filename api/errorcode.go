package api

import (
	"github.com/civicwatch/complaint-api/geo"
	"github.com/civicwatch/complaint-api/intake"
	"github.com/civicwatch/complaint-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrBusinessNotFound.Error(),
		1101: "invalid coordinates",
		1102: geo.ErrUnresolvableAddress.Error(),
		1103: geo.ErrGeocodingFailed.Error(),

		1200: intake.ErrMissingReporterEmail.Error(),
		1201: intake.ErrMissingEstablishment.Error(),
		1202: intake.ErrInvalidProximityTag.Error(),
		1203: "report not found",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorBusinessNotFound    = errorJSON(1100)
	errorInvalidCoordinates  = errorJSON(1101)
	errorUnresolvableAddress = errorJSON(1102)
	errorGeocodingFailed     = errorJSON(1103)

	errorMissingReporterEmail = errorJSON(1200)
	errorMissingEstablishment = errorJSON(1201)
	errorInvalidProximityTag  = errorJSON(1202)
	errorReportNotFound       = errorJSON(1203)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
