package customErrors

import (
	"errors"
	"fmt"
)

const (
	ErrInvalidDate   = "INVALID_DATE"
	ErrInvalidAmount = "INVALID_AMOUNT"
	ErrInvalidInput  = "INVALID_INPUT"
	ErrDuplicateUser = "DUPLICATE_USER"
	ErrNotFound      = "NOT_FOUND"
	ErrStoreFailure  = "STORE_FAILURE"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e ErrorResponse) Error() string {
	return fmt.Sprintf("code: %s, message: %s", e.Code, e.Message)
}

// Extensions is picked up by the GraphQL engine and rendered under errors[].extensions.
func (e ErrorResponse) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// CodeOf returns the code of the first ErrorResponse in err's chain, or "" if there is none.
func CodeOf(err error) string {
	var appErr ErrorResponse
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
