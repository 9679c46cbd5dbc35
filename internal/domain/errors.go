package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fetch failure taxonomy.
// Every failure surfaced by the fetch pipeline matches exactly one of these.
var (
	ErrAPIKeyMissing       = errors.New("api configuration incomplete")
	ErrNetwork             = errors.New("flight api returned an error status")
	ErrParsing             = errors.New("flight api response could not be decoded")
	ErrIncompleteData      = errors.New("flight data is incomplete")
	ErrFlightAlreadyExists = errors.New("flight is already tracked")
	ErrFlightNotFound      = errors.New("flight not found")
	ErrUnknown             = errors.New("unknown error")
)

// Errors raised below the fetch boundary.
var (
	// ErrMissingCriticalData is matched by every MissingCriticalDataError.
	ErrMissingCriticalData = errors.New("missing critical data")

	// ErrInvalidCoordinate is matched by every InvalidCoordinateError.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrRecordNotFound is returned by stores when no record has the requested id.
	ErrRecordNotFound = errors.New("flight record not found")

	// ErrInvalidRequest indicates caller input failed validation.
	ErrInvalidRequest = errors.New("invalid request")
)

// FetchErrorKind tags a fetch failure.
type FetchErrorKind int

const (
	KindUnknown FetchErrorKind = iota
	KindAPIKeyMissing
	KindNetwork
	KindParsing
	KindIncompleteData
	KindFlightAlreadyExists
	KindFlightNotFound
)

var kindSentinels = map[FetchErrorKind]error{
	KindUnknown:             ErrUnknown,
	KindAPIKeyMissing:       ErrAPIKeyMissing,
	KindNetwork:             ErrNetwork,
	KindParsing:             ErrParsing,
	KindIncompleteData:      ErrIncompleteData,
	KindFlightAlreadyExists: ErrFlightAlreadyExists,
	KindFlightNotFound:      ErrFlightNotFound,
}

var kindNames = map[FetchErrorKind]string{
	KindUnknown:             "unknown_error",
	KindAPIKeyMissing:       "api_key_missing",
	KindNetwork:             "network_error",
	KindParsing:             "parsing_error",
	KindIncompleteData:      "incomplete_data",
	KindFlightAlreadyExists: "flight_already_exists",
	KindFlightNotFound:      "flight_not_found",
}

// String returns a stable machine-readable name for the kind.
func (k FetchErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Sentinel returns the sentinel error matched by this kind.
func (k FetchErrorKind) Sentinel() error {
	if err, ok := kindSentinels[k]; ok {
		return err
	}
	return ErrUnknown
}

// FetchError is the single error type returned by the fetch pipeline.
type FetchError struct {
	Kind FetchErrorKind
	Err  error
}

// NewFetchError creates a FetchError of the given kind wrapping the cause.
func NewFetchError(kind FetchErrorKind, cause error) *FetchError {
	return &FetchError{Kind: kind, Err: cause}
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return e.Kind.Sentinel().Error()
	}
	return fmt.Sprintf("%s: %v", e.Kind.Sentinel(), e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of this error's kind.
func (e *FetchError) Is(target error) bool {
	return target == e.Kind.Sentinel()
}

// KindOf extracts the fetch failure kind from err.
// Errors that are not FetchErrors are reported as KindUnknown.
func KindOf(err error) FetchErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// MissingCriticalDataError reports the first absent critical field of a response.
type MissingCriticalDataError struct {
	// Field is the human-readable name of the missing field (e.g., "Departure airport IATA")
	Field string

	// Message is the full error text
	Message string
}

// NewMissingCriticalData creates an error for an absent field.
func NewMissingCriticalData(field string) *MissingCriticalDataError {
	return &MissingCriticalDataError{
		Field:   field,
		Message: field + " is missing",
	}
}

func (e *MissingCriticalDataError) Error() string {
	return e.Message
}

func (e *MissingCriticalDataError) Unwrap() error {
	return ErrMissingCriticalData
}

// InvalidCoordinateError reports a latitude or longitude outside its range.
type InvalidCoordinateError struct {
	Lat float64
	Lon float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate (lat=%g, lon=%g)", e.Lat, e.Lon)
}

func (e *InvalidCoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if the error is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsRecordNotFound checks if the error reports an unknown record id.
func IsRecordNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}

// IsMissingCriticalData checks if the error reports an absent critical field.
func IsMissingCriticalData(err error) bool {
	return errors.Is(err, ErrMissingCriticalData)
}

// IsInvalidCoordinate checks if the error reports an out-of-range coordinate.
func IsInvalidCoordinate(err error) bool {
	return errors.Is(err, ErrInvalidCoordinate)
}
