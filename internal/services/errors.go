package services

import (
	"errors"
	"strings"

	"fleetadmin/internal/models"
)

var (
	// ErrUnauthorized is matched by every authentication failure.
	ErrUnauthorized = errors.New("not authorized")
	// ErrInvalidToken is the single outcome of a failed token verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidCredentials is matched by every failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrActorNotFound means the token was accepted but the actor record is gone.
	ErrActorNotFound = errors.New("User Not Found")
	// ErrDuplicateEntity is matched by every natural-key collision.
	ErrDuplicateEntity = errors.New("entity already exists")
	// ErrValidation is matched by malformed or missing request input.
	ErrValidation = errors.New("validation failed")

	ErrNoToken     error = &UnauthorizedError{Reason: "Not authorized, no token"}
	ErrTokenFailed error = &UnauthorizedError{Reason: "Not authorized, token failed"}
)

type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string { return e.Reason }

func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }

// DuplicateEntityError names the entity whose natural key collided.
type DuplicateEntityError struct {
	Entity string
}

func (e *DuplicateEntityError) Error() string { return e.Entity + " already exists" }

func (e *DuplicateEntityError) Is(target error) bool { return target == ErrDuplicateEntity }

type InvalidCredentialsError struct {
	Role models.Role
}

func (e *InvalidCredentialsError) Error() string {
	return "Invalid " + e.Role.Label() + " Email or Password"
}

func (e *InvalidCredentialsError) Is(target error) bool { return target == ErrInvalidCredentials }

// FieldError is one rejected input field, addressed by its JSON path.
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Param+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
