package store

import "errors"

// The operation errors callers are expected to match with errors.Is.
// Delete operations signal "nothing matched" through their boolean result
// instead; only mutating updates and creates raise these.
var (
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrNoActiveSession = errors.New("no user logged in")
	ErrUserNotFound    = errors.New("user not found")
	ErrOrderNotFound   = errors.New("order not found")
)
