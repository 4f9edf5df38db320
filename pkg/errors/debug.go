package errors

import (
	"errors"
	"fmt"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	HTTPStatus int    `json:"http_status,omitempty"`
	Endpoint   string `json:"endpoint,omitempty"`
}

// Dump flattens an error chain into loggable diagnostic fields. Remote
// API failures contribute the upstream status and endpoint when known.
func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var remote *RemoteError
	if errors.As(err, &remote) {
		d.HTTPStatus = remote.StatusCode
		d.Endpoint = remote.Endpoint
	}

	return d
}

// RemoteError carries the upstream HTTP detail for a failed loyalty API call.
type RemoteError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *RemoteError) Error() string {
	if e == nil {
		return ""
	}
	if e.Body != "" {
		return fmt.Sprintf("remote status %d on %s: %s", e.StatusCode, e.Endpoint, e.Body)
	}
	return fmt.Sprintf("remote status %d on %s", e.StatusCode, e.Endpoint)
}
