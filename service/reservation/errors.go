package reservationsvc

import "errors"

// errors used by controllers

type ErrCode string

const (
	ErrValidation       ErrCode = "VALIDATION"
	ErrUserNotFound     ErrCode = "USER_NOT_FOUND"
	ErrUserInactive     ErrCode = "USER_INACTIVE"
	ErrBookNotFound     ErrCode = "BOOK_NOT_FOUND"
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrConflict         ErrCode = "CONFLICT"
	ErrLimitExceeded    ErrCode = "LIMIT_EXCEEDED"
	ErrAlreadyStarted   ErrCode = "ALREADY_STARTED"
	ErrAlreadyConfirmed ErrCode = "ALREADY_CONFIRMED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts the error code, or "" for uncoded (storage) errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Validation reason codes.
const (
	ReasonMissingFields  = "missing_fields"
	ReasonInvalidID      = "invalid_id"
	ReasonInvalidDate    = "invalid_date"
	ReasonPickupInPast   = "pickup_in_past"
	ReasonReturnByPickup = "return_not_after_pickup"
	ReasonWindowTooLong  = "window_too_long"
)

// ValidationError reports why a creation request was rejected before any
// business check ran. Fields holds the offending wire field names.
type ValidationError struct {
	Reason  string
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Code() ErrCode { return ErrValidation }
