package trackerr

import "fmt"

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(404, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(400, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrMissingConnection is returned when an operation that needs the database is
	// invoked without a connection.
	ErrMissingConnection = New(400, CodeInvalidRequest, "database connection must be provided")

	// ErrNoEvents is returned when a possession calculation is requested over an empty
	// match event stream: there is no first event to seed the scan with.
	ErrNoEvents = New(404, CodeNotFound, "no match events found to seed possession calculation")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(500, CodeInternalError, "internal error occurred")
)

type Extras map[string]interface{}

type TrackError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *TrackError {
	return &TrackError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e TrackError) Msg(format string, parts ...interface{}) *TrackError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e TrackError) WithExtras(extras Extras) *TrackError {
	e.Extras = &extras
	return &e
}

func (e *TrackError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
