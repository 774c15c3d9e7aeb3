package handlers

import (
	"context"
	"errors"
	"net/http"

	"marketcrown/backend-go/internal/models"
	"marketcrown/backend-go/internal/storage"
)

func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Message: notFoundMsg})
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		writeJSON(w, http.StatusGatewayTimeout, models.ErrorResponse{Message: "timeout"})
		return
	}
	a.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Message: "internal error"})
}
