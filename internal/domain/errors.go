package domain

import "errors"

// Terminal per-request errors. The delivery layer maps each one to an HTTP
// status; nothing below it retries or compensates.
var (
	// ErrEmailTaken rejects a signup for an already-registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot enumerate registered accounts.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrUnauthenticated is the single outcome for every token failure:
	// missing, malformed, expired, bad signature, or unknown subject.
	ErrUnauthenticated = errors.New("could not validate credentials")

	// ErrPostNotFound covers both a missing post and a post owned by
	// someone else; the two cases are indistinguishable to the caller.
	ErrPostNotFound = errors.New("post not found")

	// ErrTooManyAttempts rejects a login once the attempt limiter trips.
	ErrTooManyAttempts = errors.New("too many login attempts")
)
