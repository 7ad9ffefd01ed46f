package pkg

import "fmt"

// AppError is the HTTP-facing error envelope: a stable machine code, a
// human message, the HTTP status to respond with, and an optional wrapped
// cause carried along for diagnostics.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
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

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body rendered for failed requests.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	details := ""
	if e.Err != nil {
		details = e.Err.Error()
	}
	return HTTPError{Code: e.Code, Message: e.Message, Details: details}
}
