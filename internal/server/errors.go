// Package server provides the HTTP REST API for the portfolio generator.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/resume-portfolio/internal/db"
	"github.com/jonathan/resume-portfolio/internal/schemas"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID string
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPortfolioNotFound indicates the portfolio does not exist or the
// caller may not see it. Ownership failures use this too so the API does
// not leak which IDs exist.
type ErrPortfolioNotFound struct {
	ID string
}

func (e *ErrPortfolioNotFound) Error() string {
	return fmt.Sprintf("portfolio not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists, *db.ErrSlugTaken:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrPortfolioNotFound, *db.ErrNotFound:
		return http.StatusNotFound
	case *ErrValidation, *schemas.ValidationError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
