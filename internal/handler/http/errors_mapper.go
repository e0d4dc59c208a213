package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/climate-adjuster/internal/app"
	"github.com/MKhiriev/climate-adjuster/internal/service"
	"github.com/MKhiriev/climate-adjuster/internal/validators"
	"github.com/MKhiriev/climate-adjuster/models"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order, so a decode error that wraps a more
// specific cause is reported by that cause.
var errorResponses = []errorResponse{
	{models.ErrMalformedKey, http.StatusBadRequest, app.MsgMalformedName},
	{models.ErrUnknownEnumValue, http.StatusBadRequest, app.MsgUnknownEnumValue},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},

	{validators.ErrEmptyName, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrInvalidPrecipitation, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrInvalidTemperatureModifier, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrNonFiniteTemperature, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrNonFiniteDownfall, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrOverridesUnavailable, http.StatusServiceUnavailable, app.MsgOverridesUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, app.MsgRequestTimeout},
	{context.Canceled, http.StatusServiceUnavailable, app.MsgRequestCanceled},
}

func statusFromError(err error) (int, string) {
	for _, response := range errorResponses {
		if errors.Is(err, response.target) {
			return response.status, response.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
