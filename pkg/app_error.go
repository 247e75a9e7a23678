package pkg

import "fmt"

// AppError is the error shape returned to HTTP callers.
//
// Kind mirrors the engine error taxonomy (NotFound, AlreadyInvoiced, ...) so the
// UI can branch on it; Message is shown to the end user verbatim.
type AppError struct {
	Kind       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON body written for failed requests.
type HTTPError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func NewDomainError(kind, message string, err error, httpStatus int) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(kind, message string, httpStatus int) *AppError {
	return &AppError{Kind: kind, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Kind: e.Kind, Message: e.Message}
}
