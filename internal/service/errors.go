package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.
//
// The lending policy errors double as the THROW messages raised inside the
// storage layer's atomic scripts, so a transaction lost to a concurrent
// racer translates back to the same sentinel the pre-checks would return.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameExists     = errors.New("username already registered")
	ErrUsernameRequired   = errors.New("username is required")
	ErrUsernameTooLong    = errors.New("username must be at most 64 characters")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidRole        = errors.New("invalid role")
)

// ===== Catalog Errors =====
var (
	ErrBookNotFound = errors.New("book not found")
	ErrISBNExists   = errors.New("a book with this ISBN already exists")
)

// ===== Lending Errors =====
var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrLoanNotFound       = errors.New("loan record not found")
	ErrBorrowLimitReached = errors.New("borrow limit reached")
	ErrNoCopiesAvailable  = errors.New("no copies available")
	ErrLoanNotActive      = errors.New("not currently borrowed")
)
