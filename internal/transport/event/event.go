// Package event exposes the feature operations as independently invocable
// request handlers. Each handler translates an inbound event envelope into
// one feature call and wraps write operations in an explicit transaction
// committed on success and rolled back on failure.
package event

import (
	"encoding/json"
	"net/http"

	"github.com/micahgtan/to-do-list/internal/core/domain"
)

// Event is the inbound request envelope.
type Event struct {
	Body                  string            `json:"body"`
	PathParameters        map[string]string `json:"path_parameters,omitempty"`
	QueryStringParameters map[string]string `json:"query_string_parameters,omitempty"`
}

// Response is the outbound envelope. The adapter always answers 200; a
// failure is carried in the body under the error key.
type Response struct {
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}

type successBody struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type failureBody struct {
	Status string        `json:"status"`
	Error  *domain.Error `json:"error"`
}

func respondSuccess(data any) Response {
	body, err := json.Marshal(successBody{Status: "success", Data: data})
	if err != nil {
		return respondFailure(err)
	}
	return Response{StatusCode: http.StatusOK, Body: string(body)}
}

func respondFailure(err error) Response {
	body, marshalErr := json.Marshal(failureBody{Status: "failed", Error: domain.AsError(err)})
	if marshalErr != nil {
		body = []byte(`{"status":"failed","error":{"code":"SomethingWentWrongError","message":"failed to encode error"}}`)
	}
	return Response{StatusCode: http.StatusOK, Body: string(body)}
}
