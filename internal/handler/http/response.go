package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/climate-adjuster/internal/app"
	"github.com/MKhiriev/climate-adjuster/internal/logger"
)

// writeJSON serializes data and writes it with statusCode. A marshaling
// failure is logged and answered with 500 instead.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing data to JSON")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(jsonData)
}

// writeError maps err to a status and message and writes them. Client
// errors are logged at warn level, server errors at error level.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(message)
	}

	http.Error(w, message, status)
}
