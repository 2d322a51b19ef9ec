// Package api defines response envelopes shared across HTTP handlers.
package api

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
