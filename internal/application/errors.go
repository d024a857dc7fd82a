package application

import "errors"

// InputError means the caller supplied invalid, missing or conflicting data.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

// AccessError means the caller lacks permission or presented a bad credential.
type AccessError struct {
	Msg string
}

func (e *AccessError) Error() string { return e.Msg }

func NewInputError(msg string) error  { return &InputError{Msg: msg} }
func NewAccessError(msg string) error { return &AccessError{Msg: msg} }

func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

func IsAccessError(err error) bool {
	var ae *AccessError
	return errors.As(err, &ae)
}

var (
	ErrEmailRegistered    = NewInputError("Email address already registered")
	ErrInvalidCredentials = NewInputError("Invalid email or password")
	ErrInvalidUserID      = NewInputError("Invalid user ID")
	ErrInvalidJobID       = NewInputError("Invalid job post ID")
	ErrEmailTaken         = NewInputError("Email address already taken")
	ErrTurnonMissing      = NewInputError("turnon property is missing")
	ErrMissingJobFields   = NewInputError("Please enter all relevant fields")
	ErrInvalidStart       = NewInputError("Invalid start value")
	ErrNegativeStart      = NewInputError("Start value cannot be negative")
	ErrInvalidToken       = NewAccessError("Invalid token")
	ErrNotCreator         = NewAccessError("Authorised user is not the creator of this job post")
	ErrNotWatcher         = NewAccessError("Authorised user is not a watcher of post author")
	ErrIDSpaceExhausted   = errors.New("identifier space exhausted")
)
