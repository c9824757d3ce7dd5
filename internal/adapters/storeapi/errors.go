package storeapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/storefront-cli/internal/domain"
)

// APIError describes a failed request. It unwraps to one of the domain
// sentinels (ErrTransport, ErrUnauthorized, ErrNotFound, ErrInvalidInput,
// ErrRemote) and to the underlying transport error when there is one.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Code    string
	Message string

	kind error
	err  error
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s", e.Method, e.Path, e.kind)
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.err != nil {
		b.WriteString(": ")
		b.WriteString(e.err.Error())
	}
	return b.String()
}

func (e *APIError) Unwrap() []error {
	if e.err == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.err}
}

// UserMessage is the server-provided message, or a generic one for the kind.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.kind.Error()
}

// MessageOf returns the server-provided message carried by err, if any.
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

type structuredError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func transportError(method string, path string, err error) error {
	return &APIError{Method: method, Path: path, kind: domain.ErrTransport, err: err}
}

func malformedResponse(method string, path string, status int, err error) error {
	return &APIError{
		Method:  method,
		Path:    path,
		Status:  status,
		Message: "malformed response body",
		kind:    domain.ErrRemote,
		err:     err,
	}
}

func parseResponseError(method string, path string, status int, payload []byte) error {
	code, message := decodeErrorBody(payload)

	return &APIError{
		Method:  method,
		Path:    path,
		Status:  status,
		Code:    code,
		Message: message,
		kind:    kindForStatus(status),
	}
}

func kindForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	default:
		return domain.ErrRemote
	}
}

func decodeErrorBody(payload []byte) (string, string) {
	var body errorBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return "", truncate(strings.TrimSpace(string(payload)), 200)
	}

	if len(body.Error) > 0 {
		var structured structuredError
		if json.Unmarshal(body.Error, &structured) == nil && structured.Message != "" {
			return structured.Code, structured.Message
		}
		var plain string
		if json.Unmarshal(body.Error, &plain) == nil && plain != "" && body.Message == "" {
			return "", plain
		}
	}

	return "", body.Message
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
