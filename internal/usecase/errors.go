package usecase

import "errors"

// Sentinel errors services wrap with context. Handlers map them to
// HTTP status codes with errors.Is.
var (
	// ErrNotFound covers missing resources and missing parents in
	// nested routes.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists covers uniqueness violations: duplicate
	// username/email/slug, second review per (title, author).
	ErrAlreadyExists = errors.New("already exists")

	// ErrForbidden is returned when the requester is neither the
	// resource author nor moderator/admin/superuser.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation covers semantically invalid input, e.g. a title
	// referencing an unknown category slug.
	ErrValidation = errors.New("validation failed")

	// ErrReservedUsername rejects the "me" username at signup.
	ErrReservedUsername = errors.New(`username "me" is reserved`)

	// ErrBadConfirmationCode is returned for expired, forged or
	// already-consumed confirmation codes.
	ErrBadConfirmationCode = errors.New("invalid confirmation code")
)
