// Domain error taxonomy. Services return these sentinels; handlers map
// them to HTTP statuses with errors.Is. Anything else is a server error.
package core

import "errors"

var (
	// ErrNotFound: the id does not resolve to a record.
	ErrNotFound = errors.New("user not found")
	// ErrUsernameTaken / ErrEmailTaken: uniqueness violations.
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	// ErrInvalidCredentials: login failed; deliberately does not say
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
