// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Level-Up Fitness server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgWrongCurrentPassword is returned when a password change supplies a
	// current password that does not match the stored hash.
	MsgWrongCurrentPassword = "current password is incorrect"

	// MsgPasswordsDoNotMatch is returned when the new password and its
	// confirmation differ.
	MsgPasswordsDoNotMatch = "passwords do not match"

	// MsgEmptyPassword is returned when a signup or password change arrives
	// with a blank password.
	MsgEmptyPassword = "password must not be empty"

	// MsgOperationNotConfirmed is returned when a destructive operation
	// (plan wipe, clear-all reset) arrives without its confirmation flag.
	MsgOperationNotConfirmed = "operation was not confirmed"

	// MsgWorkoutLogNotFound is returned when a toggle or delete targets a
	// checklist entry that does not exist for the current user.
	MsgWorkoutLogNotFound = "workout log entry not found"

	// MsgIntegrityCheckFailed is returned when a plan upload carries a
	// payload hash that does not match the body the server received.
	MsgIntegrityCheckFailed = "payload integrity check failed"

	// MsgAccessDenied is returned when the authenticated user attempts to
	// access or modify a resource that belongs to a different user.
	MsgAccessDenied = "access denied"
)
