package service

import "errors"

var (
	// ErrInvalidDataProvided covers request bodies that fail structural or
	// range validation before any storage call.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single login failure value. Unknown login
	// and wrong password both map here so responses cannot be used to probe
	// which accounts exist.
	ErrInvalidCredentials = errors.New("invalid login/password")

	// ErrWrongCurrentPassword is returned by the change-password flow when
	// the supplied current password does not match the stored hash.
	ErrWrongCurrentPassword = errors.New("current password is incorrect")

	// ErrPasswordMismatch is returned when the new password and its
	// confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrEmptyPassword is returned when a signup or password change arrives
	// with a blank password.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrNotConfirmed guards destructive operations: plan wipes and the
	// clear-all reset execute only when the request carries an explicit
	// confirmation flag.
	ErrNotConfirmed = errors.New("operation was not confirmed")

	// ErrNoPlansYet is returned by the client plan service when the user has
	// no saved plan of the requested kind.
	ErrNoPlansYet = errors.New("no plans generated yet")

	// ErrTokenCreationFailed wraps JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the normalised form of every token
	// validation failure: expired, malformed, wrong signature or issuer.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrVersionIsNotSpecified is returned at construction time when the
	// application version is missing from the config.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
