package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/pass-the-pages/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses. Otherwise it wraps the sentinel
// for the status code with the {"message": ...} text from the body, falling
// back to the raw body and then to the status text.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := responseMessage(resp)

	if target, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", target, message)
	}
	return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode(), message)
}

func responseMessage(resp *resty.Response) string {
	body := resp.Body()

	var errResponse models.ErrorResponse
	if err := json.Unmarshal(body, &errResponse); err == nil && errResponse.Message != "" {
		return errResponse.Message
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode())
}
