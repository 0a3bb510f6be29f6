package constants

import "net/http"

// CodedError is an error that carries the http status the api layer should
// respond with. The central echo error handler unwraps to the first CodedError
// in the chain.
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
	ErrDBNotFound        = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized      = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrForbidden         = NewCodedError(http.StatusForbidden, "forbidden")
	ErrEmailAlreadyTaken = NewCodedError(http.StatusConflict, "email already taken")
	ErrSeasonNoTaken     = NewCodedError(http.StatusConflict, "season number already taken")
	ErrInvalidEntry      = NewCodedError(http.StatusBadRequest, "invalid entry")
)
