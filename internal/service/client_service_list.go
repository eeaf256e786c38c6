package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/internal/store"
	"github.com/MKhiriev/go-shopping-sync/internal/utils"
	"github.com/MKhiriev/go-shopping-sync/internal/validators"
	"github.com/MKhiriev/go-shopping-sync/models"
)

type idGenerator interface {
	Generate() uuid.UUID
}

type clientListService struct {
	storage   store.LocalStorage
	ids       idGenerator
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

// NewClientListService creates a [ClientListService] backed by storage.
func NewClientListService(storage store.LocalStorage, logger *logger.Logger) ClientListService {
	return &clientListService{
		storage:   storage,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewSyncValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *clientListService) AddListItem(ctx context.Context, item models.ListItem) (models.ListItem, error) {
	log := logger.FromContext(ctx)

	if item.ID == uuid.Nil {
		item.ID = s.ids.Generate()
	}
	if err := s.validator.Validate(ctx, item); err != nil {
		return models.ListItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.storage.Repositories().ListItems.InsertListItem(ctx, item); err != nil {
		log.Err(err).Str("func", "clientListService.AddListItem").Str("id", item.ID.String()).Msg("failed to store list item")
		return models.ListItem{}, err
	}

	return item, nil
}

func (s *clientListService) UpdateListItem(ctx context.Context, item models.ListItem) error {
	if err := s.validator.Validate(ctx, item); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	err := s.storage.Repositories().ListItems.UpdateListItem(ctx, item)
	if errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrListItemNotFound, item.ID)
	}
	return err
}

func (s *clientListService) DeleteListItem(ctx context.Context, id uuid.UUID) error {
	return s.storage.WithinTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		deleted, err := repos.ListItems.DeleteListItem(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			logger.FromContext(ctx).Debug().
				Str("func", "clientListService.DeleteListItem").
				Str("id", id.String()).
				Msg("list item already absent")
			return nil
		}
		return repos.PendingDeletions.AddPendingDeletion(ctx, id, s.now().UTC())
	})
}

func (s *clientListService) GetListItem(ctx context.Context, id uuid.UUID) (models.ListItem, error) {
	item, err := s.storage.Repositories().ListItems.GetListItem(ctx, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.ListItem{}, fmt.Errorf("%w: %s", ErrListItemNotFound, id)
	}
	return item, err
}

func (s *clientListService) GetAllListItems(ctx context.Context) ([]models.ListItem, error) {
	return s.storage.Repositories().ListItems.GetAllListItems(ctx)
}

func (s *clientListService) GetActiveListItems(ctx context.Context) ([]models.ListItem, error) {
	return s.storage.Repositories().ListItems.GetActiveListItems(ctx)
}

func (s *clientListService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.storage.Repositories().Categories.GetAll(ctx)
}

func (s *clientListService) GetStores(ctx context.Context) ([]models.Store, error) {
	return s.storage.Repositories().Stores.GetAll(ctx)
}

func (s *clientListService) GetUserLists(ctx context.Context) ([]models.UserList, error) {
	return s.storage.Repositories().UserLists.GetAll(ctx)
}
