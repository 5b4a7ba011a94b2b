package constants

import "net/http"

const (
	CookieKeySecretToken = "secret_token"

	ViperSecretKey = "admin_secret"
)

type CtxKey string

const CtxKeyRequestID CtxKey = "request_id"

// CodedError is an error that carries the HTTP status it should map to.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound         = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized       = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrInvalidRequestBody = NewCodedError(http.StatusBadRequest, "invalid request body")
	ErrInvalidQueryParams = NewCodedError(http.StatusBadRequest, "invalid query params")
)
