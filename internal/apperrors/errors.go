package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrDumpsterUnavailable indicates a placement order was attempted against a
// dumpster that is not in the available status.
var ErrDumpsterUnavailable = errors.New("dumpster not available")

// ErrUpstreamUnavailable indicates an external collaborator (e.g. the postal
// code lookup service) could not be reached.
var ErrUpstreamUnavailable = errors.New("upstream service unavailable")
