/* errors.go
 * This file contains the closed set of error kinds shared between sub packages. Every command
 * invocation terminates with either a normalized record or exactly one of these; none of them
 * is ever retried automatically.
 */

package shared

import "fmt"

// InvalidUIDError is returned when a user supplied UID fails local validation.
// No network call is attempted for an invalid UID.
type InvalidUIDError struct {
	UID string
}

func (e InvalidUIDError) Error() string {
	return fmt.Sprintf("invalid uid %q: must be numeric and at least 6 digits", e.UID)
}

// InvalidRegionError is returned when a region/server code is not in the allow-list.
// Suggestion carries the closest valid code, or "" when nothing ranked.
type InvalidRegionError struct {
	Region     string
	Suggestion string
}

func (e InvalidRegionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("invalid region %q, did you mean %q", e.Region, e.Suggestion)
	}
	return fmt.Sprintf("invalid region %q", e.Region)
}

// NetworkError wraps a transport level failure (DNS, connect, reset).
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e NetworkError) Unwrap() error { return e.Err }

// TimeoutError is returned when the upstream API does not answer within the
// endpoint's bounded wait.
type TimeoutError struct{}

func (e TimeoutError) Error() string { return "api request timed out" }

// UpstreamStatusError is returned for any non-200 upstream response.
type UpstreamStatusError struct {
	Code int
}

func (e UpstreamStatusError) Error() string {
	return fmt.Sprintf("api returned status %d", e.Code)
}

// MalformedResponseError is returned when the upstream was reachable but the
// payload is unusable. The normalizer downgrades any structural fault to this
// kind rather than crashing the invocation.
type MalformedResponseError struct {
	Detail string
}

func (e MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %s", e.Detail)
}
