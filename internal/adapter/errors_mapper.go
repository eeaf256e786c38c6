package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for a 2xx response. Any other status becomes an
// [ErrTransport] error that also matches the sentinel of the status class.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrTransport, ErrBadRequest, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w: %s", ErrTransport, ErrUnprocessable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrTransport, ErrInternalServerError, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrTransport, resp.StatusCode(), body)
	}
}
