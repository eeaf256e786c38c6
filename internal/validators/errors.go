package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSyncRequest = errors.New("invalid sync request")
	ErrInvalidListItem    = errors.New("invalid list item")
)
