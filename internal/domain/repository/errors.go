package repository

import "errors"

// Sentinel errors shared by repository implementations. "Not found" is a
// distinct error kind rather than a bare false so callers can tell missing
// records apart from other failures.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrBookNotFound  = errors.New("book not found")
	ErrQuoteNotFound = errors.New("quote not found")
)
