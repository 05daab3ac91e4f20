package usecase

import (
	"errors"
	"fmt"
)

// Handlers map these with errors.Is, so wrap rather than replace them
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidInput       = errors.New("invalid input")
)

var (
	ErrMovieNotFound = fmt.Errorf("movie %w", ErrNotFound)
	ErrUserNotFound  = fmt.Errorf("user %w", ErrNotFound)
	ErrUsernameTaken = fmt.Errorf("username %w", ErrConflict)
)
