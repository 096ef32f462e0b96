package storefront

import (
	"fmt"

	"prokat-rental/internal/domain"
)

// NetworkError is a transport failure or a non-2xx answer from the rental API
type NetworkError struct {
	Op         string
	StatusCode int // 0 when no response arrived
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: rental api answered %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: rental api unreachable: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// EmptyCartError is returned by a commit of a cart with no items
type EmptyCartError struct{}

func (e *EmptyCartError) Error() string { return "cart is empty" }

// MalformedResponseError is data from the rental API that cannot be trusted:
// undecodable JSON, missing required fields, or an unknown status value.
type MalformedResponseError struct {
	What string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	if e.Err == nil {
		return "malformed response: " + e.What
	}
	return fmt.Sprintf("malformed response: %s: %v", e.What, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// ValidationError is shared with the service so both sides report rejected
// input the same way.
type ValidationError = domain.ValidationError
