package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation    Code = "VALIDATION_ERROR"
	CodeDuplicateItem Code = "DUPLICATE_ITEM"
	CodeEmptyCart     Code = "EMPTY_CART"
	CodeUnauthorized  Code = "UNAUTHORIZED"
	CodeNotFound      Code = "NOT_FOUND"
	CodeConflict      Code = "CONFLICT"
	CodeRemote        Code = "REMOTE_ERROR"
	CodeUnreachable   Code = "NETWORK_UNREACHABLE"
	CodeInternal      Code = "INTERNAL_ERROR"
)

// Metadata describes how a code surfaces to the user. Notice is the
// fallback user-facing message when the error carries none. Fatal marks
// codes that end the current flow instead of showing an in-place notice;
// only auth expiry does, everything else is transient and recoverable.
type Metadata struct {
	Notice string
	Fatal  bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		Notice: "validation failed",
	},
	CodeDuplicateItem: {
		Notice: "item already added",
	},
	CodeEmptyCart: {
		Notice: "cart is empty",
	},
	CodeUnauthorized: {
		Notice: "session expired, please sign in again",
		Fatal:  true,
	},
	CodeNotFound: {
		Notice: "not found",
	},
	CodeConflict: {
		Notice: "conflict detected",
	},
	CodeRemote: {
		Notice: "the server rejected the request",
	},
	CodeUnreachable: {
		Notice: "network error, please check your connection",
	},
	CodeInternal: {
		Notice: "something went wrong",
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

// FromStatus maps a remote HTTP status to the matching client code.
func FromStatus(status int) Code {
	switch status {
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeValidation
	default:
		return CodeRemote
	}
}

type Error struct {
	code    Code
	message string
	status  int
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

// WithStatus records the remote HTTP status the error originated from.
func (e *Error) WithStatus(status int) *Error {
	if e == nil {
		return nil
	}
	e.status = status
	return e
}

// Status returns the originating remote HTTP status, or zero for local errors.
func (e *Error) Status() int {
	if e == nil {
		return 0
	}
	return e.status
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// CodeOf returns the code carried by err, or CodeInternal for untyped errors.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	if typed := As(err); typed != nil {
		return typed.Code()
	}
	return CodeInternal
}

// Notice returns the user-facing message for err: the error's own message
// when it is typed and has one, otherwise the code's default notice.
func Notice(err error) string {
	if err == nil {
		return ""
	}
	typed := As(err)
	if typed == nil {
		return metadataByCode[CodeInternal].Notice
	}
	if typed.Message() != "" {
		return typed.Message()
	}
	return MetadataFor(typed.Code()).Notice
}
