package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shopping-sync/internal/service"
	"github.com/MKhiriev/go-shopping-sync/internal/store"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order, so an error wrapping both a service
// sentinel and the store error beneath it gets the service status.
var errorStatuses = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrDanglingReference, http.StatusUnprocessableEntity},
	{service.ErrNoFallbackReference, http.StatusInternalServerError},
	{ErrReconcilePanicked, http.StatusInternalServerError},

	{store.ErrRecordNotFound, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
