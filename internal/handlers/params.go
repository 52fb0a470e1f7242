package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/mundo-divertido/internal/models"
)

// int64Param reads an integer path parameter.
func int64Param(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		verr := models.NewValidationError()
		verr.Add(name, "must be an integer")
		return 0, verr
	}
	return v, nil
}
