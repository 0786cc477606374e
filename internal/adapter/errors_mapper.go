package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/salestrak-pa/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return mapStatusError(resp.StatusCode(), resp.Body())
}

func mapStatusError(status int, body []byte) error {
	httpErr := &HTTPError{Status: status, Message: errorMessage(status, body)}

	switch status {
	case http.StatusBadRequest:
		httpErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		httpErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		httpErr.kind = ErrForbidden
	case http.StatusNotFound:
		httpErr.kind = ErrNotFound
	case http.StatusConflict:
		httpErr.kind = ErrConflict
	case http.StatusBadGateway:
		httpErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		httpErr.kind = ErrInternalServerError
	default:
		httpErr.kind = fmt.Errorf("%w %d", ErrUnexpectedStatus, status)
	}

	return httpErr
}

// errorMessage prefers the "error" field of a JSON body, then "message",
// then the raw body, then the status text.
func errorMessage(status int, raw []byte) string {
	body := strings.TrimSpace(string(raw))

	var apiErr models.APIError
	if body != "" && json.Unmarshal([]byte(body), &apiErr) == nil {
		if text := apiErr.Text(); text != "" {
			return text
		}
	}

	if body != "" && !strings.HasPrefix(body, "{") {
		return body
	}

	return http.StatusText(status)
}

func networkError(op string, err error) error {
	return fmt.Errorf("%s request: %w: %w", op, ErrNetwork, err)
}
