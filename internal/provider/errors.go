package provider

import (
	"errors"
	"fmt"
)

// ErrAuth marks an invalid or expired credential. It is terminal for a
// whole sync run: every subsequent provider call would fail the same way.
var ErrAuth = errors.New("provider: unauthorized")

// ErrNotFound marks a page id that does not resolve to a database-backed
// page.
var ErrNotFound = errors.New("provider: not found")

type apiError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("provider api error: status=%d code=%s %s", e.Status, e.Code, e.Message)
}
