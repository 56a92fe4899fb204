package failure

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Response is the wire-level error produced by Classify. The body is either a
// message or a field-to-messages map. Accessors return copies, so a Response
// cannot be modified once built.
type Response struct {
	status  int
	message string
	fields  map[string][]string
}

type envelope struct {
	Error any `json:"error"`
	Code  int `json:"code"`
}

func messageResponse(status int, message string) Response {
	return Response{status: status, message: message}
}

func fieldResponse(status int, fields map[string][]string) Response {
	return Response{status: status, fields: cloneFields(fields)}
}

// Status returns the HTTP status code.
func (r Response) Status() int { return r.status }

// Message returns the message body, or "" when the body is a field map.
func (r Response) Message() string { return r.message }

// Fields returns a copy of the field map, or nil when the body is a message.
func (r Response) Fields() map[string][]string {
	if r.fields == nil {
		return nil
	}
	return cloneFields(r.fields)
}

// HasFields reports whether the body is a field map.
func (r Response) HasFields() bool { return r.fields != nil }

// Body returns the message string or a copy of the field map.
func (r Response) Body() any {
	if r.fields != nil {
		return cloneFields(r.fields)
	}
	return r.message
}

func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelope{Error: r.Body(), Code: r.status})
}

// Diagnostic is the debug-mode rendering of an unclassified failure.
type Diagnostic struct {
	Error     string   `json:"error"`
	Code      int      `json:"code"`
	Exception string   `json:"exception"`
	Trace     []string `json:"trace,omitempty"`
}

// Diagnose builds the debug rendering for err. The trace comes from the first
// Unclassified in err's chain.
func Diagnose(err error) Diagnostic {
	d := Diagnostic{
		Error:     MessageUnexpected,
		Code:      http.StatusInternalServerError,
		Exception: "<nil>",
	}
	if err == nil {
		return d
	}

	d.Error = err.Error()
	d.Exception = fmt.Sprintf("%T", err)

	var u *Unclassified
	if errors.As(err, &u) && u != nil && u.Debug != "" {
		d.Trace = splitTrace(u.Debug)
	}
	return d
}

func cloneFields(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func splitTrace(s string) []string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	trace := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			trace = append(trace, line)
		}
	}
	return trace
}
