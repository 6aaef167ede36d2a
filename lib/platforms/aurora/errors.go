package aurora

import "fmt"

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Resource   string
	Method     string
	Url        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s %s returned %d: %s", e.Resource, e.Method, e.Url, e.StatusCode, e.Body)
}

// ShapeError is returned when a response decodes as JSON but lacks a field
// the caller depends on.
type ShapeError struct {
	Resource string
	// dotted path of the field inside the response, ex. `design.arrays[0].azimuth`
	Field  string
	Reason string
}

func (e *ShapeError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "missing"
	}
	return fmt.Sprintf("%s: field %s: %s", e.Resource, e.Field, reason)
}

func required[T any](resource, field string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, &ShapeError{Resource: resource, Field: field}
	}
	return *v, nil
}

func optional[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
