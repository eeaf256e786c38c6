package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-shopping-sync/internal/logger"
	"github.com/MKhiriev/go-shopping-sync/models"
)

// Field names accepted by [SyncValidator.Validate] to restrict validation of
// a [models.ListItem] to a subset of its fields. They match the JSON names.
const (
	FieldID           = "id"
	FieldName         = "name"
	FieldPurchaseType = "purchase_type"
)

// tagPurchaseType is the custom tag checking [models.PurchaseType.Valid].
const tagPurchaseType = "purchase_type"

// nameRule applies to list items entered locally. Sync requests skip it so
// one odd name already stored cannot block every later sync.
const nameRule = "required,max=256"

// SyncValidator validates sync requests and the list items they carry.
type SyncValidator struct {
	validate *validator.Validate
}

// NewSyncValidator constructs a validator with the custom purchase_type rule
// registered. Field names in errors are the JSON names.
func NewSyncValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	_ = validate.RegisterValidation(tagPurchaseType, validatePurchaseType)

	return &SyncValidator{validate: validate}
}

// Validate accepts [models.SyncRequest] and [models.ListItem], by value or
// pointer. Fields restrict a ListItem check to the named JSON fields.
func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value)
	case *models.SyncRequest:
		if value == nil {
			return ErrInvalidSyncRequest
		}
		return v.validateSyncRequest(ctx, *value)

	case models.ListItem:
		return v.validateListItem(ctx, value, fields...)
	case *models.ListItem:
		if value == nil {
			return ErrInvalidListItem
		}
		return v.validateListItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncValidator) validateSyncRequest(ctx context.Context, request models.SyncRequest) error {
	if err := v.validate.StructCtx(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().
			Str("func", "SyncValidator.validateSyncRequest").
			Interface("violations", FieldErrors(err)).
			Msg("sync request rejected")
		return fmt.Errorf("%w: %w", ErrInvalidSyncRequest, err)
	}
	return nil
}

func (v *SyncValidator) validateListItem(ctx context.Context, item models.ListItem, fields ...string) error {
	checkName := len(fields) == 0

	if len(fields) == 0 {
		if err := v.validate.StructCtx(ctx, item); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidListItem, err)
		}
	} else {
		structFields := make([]string, 0, len(fields))
		for _, field := range fields {
			name, ok := listItemFields[field]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownField, field)
			}
			checkName = checkName || field == FieldName
			structFields = append(structFields, name)
		}

		if err := v.validate.StructPartialCtx(ctx, item, structFields...); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidListItem, err)
		}
	}

	if checkName {
		if err := v.validate.VarCtx(ctx, item.Name, nameRule); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidListItem, FieldName, err)
		}
	}
	return nil
}

// listItemFields maps the scoping names to the Go field names expected by
// StructPartial.
var listItemFields = map[string]string{
	FieldID:           "ID",
	FieldName:         "Name",
	FieldPurchaseType: "PurchaseType",
}

// FieldErrors flattens validation errors into a namespace → failed tag map,
// e.g. "updated_items[0].name" → "required". Other errors yield nil.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	result := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		namespace := fe.Namespace()
		if i := strings.IndexByte(namespace, '.'); i >= 0 {
			namespace = namespace[i+1:]
		}
		result[namespace] = fe.Tag()
	}
	return result
}

func validatePurchaseType(fl validator.FieldLevel) bool {
	return models.PurchaseType(fl.Field().Int()).Valid()
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
