package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shopping-sync/internal/validators"
	"github.com/MKhiriev/go-shopping-sync/models"
)

// SyncValidationService rejects malformed sync requests before they reach
// the reconciliation engine.
type SyncValidationService struct {
	inner     SyncService
	validator validators.Validator
}

func NewSyncValidationService() SyncServiceWrapper {
	return &SyncValidationService{
		validator: validators.NewSyncValidator(),
	}
}

func (v *SyncValidationService) Reconcile(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		return models.NewErrorSyncResponse(err.Error()), err
	}

	return v.inner.Reconcile(ctx, req)
}

func (v *SyncValidationService) Wrap(wrapped SyncService) SyncService {
	v.inner = wrapped
	return v
}
