package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// NewDatabaseError wraps a repository failure. Connection problems and
// constraint violations alike surface as a 500 with a generic message so no
// internal detail leaks in the response body; the cause is kept for
// server-side logs.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("failed to %s %s", operation, entity),
		Cause:      cause,
	}
}
