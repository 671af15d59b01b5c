// Package result is the single deserialization boundary between the raw
// HTTP API and portal code. Historically the backend mixed two success
// conventions ({"success": bool} and {"status": "success"|"error"});
// Decode accepts both and normalizes everything to one Result shape.
package result

import (
	"encoding/json"
	"net/http"
)

type Kind string

const (
	KindTransport    Kind = "transport"
	KindUnauthorized Kind = "unauthorized"
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindServer       Kind = "server"
)

type Result[T any] struct {
	OK      bool
	Data    T
	Kind    Kind
	Message string
}

func Ok[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

func Err[T any](kind Kind, message string) Result[T] {
	return Result[T]{Kind: kind, Message: message}
}

// envelope is the superset of every wrapper shape the backend has used.
type envelope struct {
	Success *bool           `json:"success"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func (e *envelope) ok() bool {
	if e.Success != nil {
		return *e.Success
	}
	return e.Status == "success"
}

func (e *envelope) reason() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Error != "" {
		return e.Error
	}
	return "request failed"
}

// Decode maps an HTTP response body onto a Result. statusCode drives the
// error kind; the envelope supplies the message.
func Decode[T any](statusCode int, body []byte) Result[T] {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Err[T](KindTransport, "invalid response: "+err.Error())
	}

	if statusCode >= 200 && statusCode < 300 && env.ok() {
		var data T
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, &data); err != nil {
				return Err[T](KindTransport, "invalid payload: "+err.Error())
			}
		}
		return Ok(data)
	}

	return Err[T](kindFor(statusCode), env.reason())
}

func kindFor(statusCode int) Kind {
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return KindUnauthorized
	case statusCode == http.StatusNotFound:
		return KindNotFound
	case statusCode == http.StatusBadRequest || statusCode == http.StatusUnprocessableEntity || statusCode == http.StatusConflict:
		return KindValidation
	case statusCode >= 500:
		return KindServer
	default:
		return KindServer
	}
}
