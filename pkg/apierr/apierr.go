// Package apierr defines the typed errors surfaced by the API clients.
package apierr

import "fmt"

// TransportError reports an HTTP exchange that did not complete with a
// success status: either the request never completed (Err is set) or the
// service answered with a non-2xx code (StatusCode is set).
type TransportError struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: request failed: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Service, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// GeolocationError reports a structurally valid geolocation payload whose
// status field was not "success". Message carries the service-provided
// reason, or "unknown error" when the service gave none.
type GeolocationError struct {
	Message string
}

func (e *GeolocationError) Error() string {
	return "geolocation failed: " + e.Message
}

// MalformedResponseError reports a response payload that lacks a key the
// mapping requires. Field names the missing key; an empty Field with a
// non-nil Err means the body was not decodable at all.
type MalformedResponseError struct {
	Service string
	Field   string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: response missing %q", e.Service, e.Field)
	}
	return fmt.Sprintf("%s: undecodable response: %v", e.Service, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
