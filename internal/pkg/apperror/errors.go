package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Code identifies a failure class independently of the HTTP status it maps to.
type Code string

const (
	CodeValidationFailed   Code = "VALIDATION_FAILED"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeUnverified         Code = "UNVERIFIED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeDuplicateEmail     Code = "DUPLICATE_EMAIL"
	CodeDuplicateName      Code = "DUPLICATE_NAME"
	CodeAlreadyInvited     Code = "ALREADY_INVITED"
	CodeAlreadyLabeled     Code = "ALREADY_LABELED"
	CodeAlreadyInState     Code = "ALREADY_IN_STATE"
	CodeUnknownColour      Code = "UNKNOWN_COLOUR"
	CodePreconditionFailed Code = "PRECONDITION_FAILED"
	CodeRateLimited        Code = "RATE_LIMITED"
	CodeInternal           Code = "INTERNAL"
)

// AppError carries the failure class, the HTTP status the boundary should
// answer with, and a client-facing message.
type AppError struct {
	Code    Code
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code Code, status int, message string) *AppError {
	return &AppError{Code: code, Status: status, Message: message}
}

func ValidationFailed(message string) *AppError {
	return New(CodeValidationFailed, fiber.StatusBadRequest, message)
}

func Unauthenticated() *AppError {
	return New(CodeUnauthenticated, fiber.StatusUnauthorized, "Invalid authorization token")
}

func Unverified() *AppError {
	return New(CodeUnverified, fiber.StatusForbidden, "Email not verified")
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, fiber.StatusNotFound, message)
}

func DuplicateEmail() *AppError {
	return New(CodeDuplicateEmail, fiber.StatusConflict, "The email has already been taken")
}

func DuplicateName(message string) *AppError {
	return New(CodeDuplicateName, fiber.StatusConflict, message)
}

func AlreadyInvited() *AppError {
	return New(CodeAlreadyInvited, fiber.StatusConflict, "Collaborator already exists for this note")
}

func AlreadyLabeled() *AppError {
	return New(CodeAlreadyLabeled, fiber.StatusConflict, "Note already has this label")
}

func AlreadyInState(message string) *AppError {
	return New(CodeAlreadyInState, fiber.StatusConflict, message)
}

func UnknownColour() *AppError {
	return New(CodeUnknownColour, fiber.StatusBadRequest, "Colour not specified in the list")
}

func PreconditionFailed(message string) *AppError {
	return New(CodePreconditionFailed, fiber.StatusPreconditionFailed, message)
}

func RateLimited() *AppError {
	return New(CodeRateLimited, fiber.StatusTooManyRequests, "Too many requests")
}

func Internal(err error) *AppError {
	return &AppError{Code: CodeInternal, Status: fiber.StatusInternalServerError, Message: "Internal server error", Err: err}
}

// From extracts an *AppError from err, or nil when err is not one.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
