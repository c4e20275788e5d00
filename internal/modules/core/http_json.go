package core

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

func RequestBody[TRequest any](r *http.Request) (TRequest, error) {
	var request TRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	return request, err
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ResponseOption func(http.ResponseWriter, *http.Request)

func WithHeader(header, value string) ResponseOption {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add(header, value)
	}
}

func WriteOK(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, 200, body)
}

func WriteCreated(w http.ResponseWriter, r *http.Request, location string, body interface{}) {
	WriteResponse(w, r, 201, body, WithHeader("Location", location))
}

func WriteBadRequest(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, 400, body)
}

func WriteInternalServerError(w http.ResponseWriter, r *http.Request, body interface{}) {
	WriteResponse(w, r, 500, body)
}

func WriteResponse(
	w http.ResponseWriter,
	r *http.Request,
	statusCode int,
	body interface{},
	opts ...ResponseOption,
) {
	for _, opt := range opts {
		opt(w, r)
	}

	if body != nil {
		w.Header().Set("Content-Type", "application/json")
	}

	w.WriteHeader(statusCode)
	writeBodyIfPresent(w, body)
}

func writeBodyIfPresent(w http.ResponseWriter, body interface{}) {
	if body == nil {
		return
	}

	// An error marshals into an empty object - carry the message instead.
	if err, ok := body.(error); ok {
		body = ErrorResponse{Error: err.Error()}
	}

	responseBytes, err := json.Marshal(body)
	if err != nil {
		zap.L().Error("failed to serialize response body", zap.Error(err))
		return
	}

	if _, err := w.Write(responseBytes); err != nil {
		zap.L().Error("failed to write response", zap.Error(err))
	}
}
