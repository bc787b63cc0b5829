package apperr

import (
	"errors"
	"fmt"
)

// Stable machine-readable error codes returned to API clients.
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeNotOwner              = "NOT_OWNER"
	CodeProfileNotFound       = "PROFILE_NOT_FOUND"
	CodeCampaignNotFound      = "CAMPAIGN_NOT_FOUND"
	CodeApplicationNotFound   = "APPLICATION_NOT_FOUND"
	CodeCampaignNotRecruiting = "CAMPAIGN_NOT_RECRUITING"
	CodeAlreadyApplied        = "ALREADY_APPLIED"
	CodeProfileAlreadyExists  = "PROFILE_ALREADY_EXISTS"
	CodeBusinessNumberExists  = "BUSINESS_NUMBER_EXISTS"
	CodeUserAlreadyExists     = "USER_ALREADY_EXISTS"
	CodeInvalidBusinessNumber = "INVALID_BUSINESS_NUMBER"
	CodeAgeBelowMinimum       = "AGE_BELOW_MINIMUM"
	CodeInvalidChannelURL     = "INVALID_CHANNEL_URL"
	CodeInvalidStatus         = "INVALID_STATUS"
	CodeCreationFailed        = "CREATION_FAILED"
	CodeUpdateFailed          = "UPDATE_FAILED"
	CodeFetchError            = "FETCH_ERROR"
	CodeValidationError       = "VALIDATION_ERROR"
)

// Error is a service-level failure carrying an HTTP status class, a stable
// code and a message suitable for direct display.
type Error struct {
	Status  int
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// Wrap attaches a storage-layer cause to a new Error. The cause is kept for
// logs only and never serialized to clients.
func Wrap(status int, code, message string, cause error) *Error {
	return &Error{Status: status, Code: code, Message: message, cause: cause}
}

// From extracts an *Error, falling back to a 500 FETCH_ERROR for unexpected
// failures so handlers always have a status and code to respond with.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Status: 500, Code: CodeFetchError, Message: "internal error", cause: err}
}
