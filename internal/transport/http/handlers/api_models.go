package handlers

import "github.com/micahgtan/to-do-list/internal/core/domain"

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// Response is the uniform HTTP envelope: data carries either the operation
// result or the structured error.
type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

func successResponse(data any) Response {
	return Response{Status: statusSuccess, Data: data}
}

func failedResponse(err error) Response {
	return Response{Status: statusFailed, Data: domain.AsError(err)}
}

// GreetingResponse is the health endpoint payload.
type GreetingResponse struct {
	Message string `json:"message"`
}
