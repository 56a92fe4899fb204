package failure

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Response messages for the fixed-body arms.
const (
	MessageUnauthenticated  = "Unauthenticated."
	MessageRouteNotFound    = "The specified URL could not be found"
	MessageMethodNotAllowed = "The specified method for the request is invalid."
	MessageRowReferenced    = "Cannot remove this resource permanently as it is related to another resource."
	MessageUnexpected       = "Unexpected error. Please try again later."
	messageNotFoundFormat   = "No %s instance exists with the specified model id."
)

// Classify converts err into the Response for the first matching arm:
// validation, not found, unauthenticated, unauthorized, route not found,
// method not allowed, HTTP error, referenced-row constraint violation.
//
// Anything else is unclassified. With debug disabled it becomes a masked 500.
// With debug enabled Classify returns the original error as its second result
// so the caller can render diagnostics; the Response is then the zero value.
func Classify(err error, debug bool) (Response, error) {
	switch c := match(err).(type) {
	case *ValidationFailed:
		return fieldResponse(http.StatusUnprocessableEntity, c.Fields), nil
	case *NotFound:
		msg := fmt.Sprintf(messageNotFoundFormat, strings.ToLower(c.Resource))
		return messageResponse(http.StatusNotFound, msg), nil
	case *Unauthenticated:
		return messageResponse(http.StatusUnauthorized, MessageUnauthenticated), nil
	case *Unauthorized:
		return messageResponse(http.StatusForbidden, c.Message), nil
	case *RouteNotFound:
		return messageResponse(http.StatusNotFound, MessageRouteNotFound), nil
	case *MethodNotAllowed:
		return messageResponse(http.StatusMethodNotAllowed, MessageMethodNotAllowed), nil
	case *HTTPError:
		if validStatus(c.Status) {
			return messageResponse(c.Status, c.Message), nil
		}
	case *ConstraintViolation:
		if c.Code == CodeRowReferenced {
			return messageResponse(http.StatusConflict, MessageRowReferenced), nil
		}
	}

	if debug {
		if err == nil {
			err = &Unclassified{}
		}
		return Response{}, err
	}
	return messageResponse(http.StatusInternalServerError, MessageUnexpected), nil
}

// Kind names the arm err is classified under.
func Kind(err error) string {
	switch c := match(err).(type) {
	case *ValidationFailed:
		return "validation"
	case *NotFound:
		return "not_found"
	case *Unauthenticated:
		return "unauthenticated"
	case *Unauthorized:
		return "unauthorized"
	case *RouteNotFound:
		return "route_not_found"
	case *MethodNotAllowed:
		return "method_not_allowed"
	case *HTTPError:
		if validStatus(c.Status) {
			return "http"
		}
	case *ConstraintViolation:
		if c.Code == CodeRowReferenced {
			return "constraint"
		}
	}
	return "unclassified"
}

// match returns the first recognized condition in err's chain, in arm order.
// Nil condition pointers are skipped, so a typed nil is unclassified.
func match(err error) Condition {
	if err == nil {
		return nil
	}

	var validation *ValidationFailed
	if errors.As(err, &validation) && validation != nil {
		return validation
	}
	var notFound *NotFound
	if errors.As(err, &notFound) && notFound != nil {
		return notFound
	}
	var unauthenticated *Unauthenticated
	if errors.As(err, &unauthenticated) && unauthenticated != nil {
		return unauthenticated
	}
	var unauthorized *Unauthorized
	if errors.As(err, &unauthorized) && unauthorized != nil {
		return unauthorized
	}
	var route *RouteNotFound
	if errors.As(err, &route) && route != nil {
		return route
	}
	var method *MethodNotAllowed
	if errors.As(err, &method) && method != nil {
		return method
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		return httpErr
	}
	var constraint *ConstraintViolation
	if errors.As(err, &constraint) && constraint != nil {
		return constraint
	}
	return nil
}

func validStatus(status int) bool {
	return status >= 100 && status <= 599
}
