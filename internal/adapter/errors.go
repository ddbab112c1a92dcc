package adapter

import "errors"

// Transport-level sentinels produced by mapHTTPError. One value per HTTP
// status the server is known to return; callers match with [errors.Is] and
// read the response body from the wrapped message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
