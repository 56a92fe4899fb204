// Package failure classifies request failures into HTTP error responses.
//
// Every failure kind the API recognizes is a concrete error type implementing
// Condition. Classify matches them in a fixed order and converts the first
// match into an immutable Response. Errors that are not (and do not wrap) a
// Condition are unclassified and fall through to the terminal arm.
package failure

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// CodeRowReferenced is the constraint code for deleting a row that another
// row still references.
const CodeRowReferenced = 1451

// Condition is the closed set of recognized failure kinds.
type Condition interface {
	error
	condition()
}

// ValidationFailed carries ordered validation messages keyed by field name.
type ValidationFailed struct {
	Fields map[string][]string
}

func (e *ValidationFailed) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	fields := slices.Sorted(maps.Keys(e.Fields))
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// NotFound reports a missing record of the named resource kind.
type NotFound struct {
	Resource string
}

func (e *NotFound) Error() string {
	if e == nil {
		return "not found"
	}
	return fmt.Sprintf("%s not found", strings.ToLower(e.Resource))
}

// Unauthenticated reports a request without valid credentials.
type Unauthenticated struct{}

func (e *Unauthenticated) Error() string { return "unauthenticated" }

// Unauthorized reports an authenticated request that lacks permission.
type Unauthorized struct {
	Message string
}

func (e *Unauthorized) Error() string {
	if e == nil || e.Message == "" {
		return "unauthorized"
	}
	return "unauthorized: " + e.Message
}

// RouteNotFound reports a request path with no registered route.
type RouteNotFound struct{}

func (e *RouteNotFound) Error() string { return "route not found" }

// MethodNotAllowed reports a known path requested with an unsupported method.
type MethodNotAllowed struct{}

func (e *MethodNotAllowed) Error() string { return "method not allowed" }

// HTTPError is an HTTP-layer failure with an explicit status and message.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "http error"
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// ConstraintViolation reports a database constraint failure.
type ConstraintViolation struct {
	Code int
	Err  error
}

func (e *ConstraintViolation) Error() string {
	if e == nil {
		return "constraint violation"
	}
	if e.Err == nil {
		return fmt.Sprintf("constraint violation %d", e.Code)
	}
	return fmt.Sprintf("constraint violation %d: %v", e.Code, e.Err)
}

func (e *ConstraintViolation) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Unclassified wraps a failure with no specific mapping. Debug holds optional
// diagnostic detail such as a recovered stack trace.
type Unclassified struct {
	Debug string
	Err   error
}

func (e *Unclassified) Error() string {
	if e == nil || e.Err == nil {
		return "unclassified failure"
	}
	return e.Err.Error()
}

func (e *Unclassified) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (*ValidationFailed) condition()    {}
func (*NotFound) condition()            {}
func (*Unauthenticated) condition()     {}
func (*Unauthorized) condition()        {}
func (*RouteNotFound) condition()       {}
func (*MethodNotAllowed) condition()    {}
func (*HTTPError) condition()           {}
func (*ConstraintViolation) condition() {}
func (*Unclassified) condition()        {}
