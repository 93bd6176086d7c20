package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
	// ErrStorage: the blob could not be stored. A document with a supplied blob
	// and no stored reference is not ingested, so this aborts the request.
	ErrStorage = errors.New("blob storage error")
)

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Constructors that tag an AppError with the matching sentinel so callers
// can errors.Is against the taxonomy.
func InvalidInput(message string) error {
	return NewAppError("INVALID_INPUT", message, ErrInvalidInput)
}

func NotFound(message string, cause error) error {
	return NewAppError("NOT_FOUND", message, errors.Join(ErrNotFound, cause))
}

func Database(message string, cause error) error {
	return NewAppError("DATABASE", message, errors.Join(ErrDatabase, cause))
}

func Storage(message string, cause error) error {
	return NewAppError("STORAGE", message, errors.Join(ErrStorage, cause))
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers for the server boundary.
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

// InternalError hides internals from callers; the original error is expected
// to have been logged with context already.
func InternalError() error {
	return status.Error(codes.Internal, "internal server error")
}

// GRPCStatus maps the error taxonomy onto a grpc status.
func GRPCStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return InternalError()
	}
}
