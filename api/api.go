// Package api gives the two external-collaborator boundaries of a hosted
// simulation service — submit and deliver — as Go interfaces and the
// request/response DTOs their JSON bodies are shaped like. HTTP intake,
// the durable job queue, and the worker that calls Deliverer live outside
// this package; it only fixes the contract a caller on either side of the
// core would implement against.
package api

import "github.com/flowsim/flowsim/sim/stats"

// SubmitRequest is the body a submit endpoint receives.
type SubmitRequest struct {
	Simulation string `json:"simulation"`
	UserID     string `json:"user_id"`
	BoardName  string `json:"board_name,omitempty"`
}

// Submitter persists a simulation job and triggers a worker to run it.
// Implementations must reject non-JSON bodies with an error the caller
// can map to HTTP 400.
type Submitter interface {
	Submit(req SubmitRequest) error
}

// DeliverSuccess is the payload posted to the callback URL when a run
// completes.
type DeliverSuccess struct {
	Data DeliverSuccessData `json:"data"`
}

type DeliverSuccessData struct {
	Statistics *stats.Report `json:"statistics"`
	UserID     string        `json:"user_id"`
	BoardName  string        `json:"board_name,omitempty"`
}

// DeliverFailure is the payload posted to the callback URL when a build
// or validation error prevented a run from producing statistics.
type DeliverFailure struct {
	Error DeliverFailureError `json:"error"`
}

type DeliverFailureError struct {
	Message string `json:"message"`
}

// Deliverer posts a run's outcome to its configured callback URL.
type Deliverer interface {
	DeliverSuccess(callbackURL string, payload DeliverSuccess) error
	DeliverFailure(callbackURL string, payload DeliverFailure) error
}
