package llm

import (
	"fmt"
)

// MissingCredentialsError is returned before any network activity when the
// API key environment variable is not set.
type MissingCredentialsError struct {
	EnvVar string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("%s environment variable not set", e.EnvVar)
}

// APIError reports a failed request: either a non-2xx response, in which
// case StatusCode is set, or a transport failure, in which case Err is set.
type APIError struct {
	Provider   string
	StatusCode int
	Type       string
	Message    string
	Timeout    bool
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("%s API request timed out: %v", e.Provider, e.Err)
	case e.StatusCode == 0:
		return fmt.Sprintf("%s API request failed: %v", e.Provider, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s API error (%d): %s", e.Provider, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s API error (%d)", e.Provider, e.StatusCode)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// EmptyResponseError is returned when a well-formed reply carries no text.
type EmptyResponseError struct {
	Provider string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("no text in %s response", e.Provider)
}
