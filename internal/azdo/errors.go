package azdo

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
)

// NotFoundError indicates a named resource is absent, either on the remote
// service or in the local repository cache. The message names the failed
// lookup and how to recover.
type NotFoundError struct {
	// Resource describes what was looked up (name or identifier).
	Resource string
	// Hint is an optional recovery command.
	Hint string
}

// Error returns a user-facing message with recovery guidance.
func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s not found", e.Resource)
	if e.Hint != "" {
		msg += fmt.Sprintf("\n\nTo refresh, run:\n  %s", e.Hint)
	}
	return msg
}

// Is allows errors.Is() to work with wrapped errors.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// RemoteServiceError wraps any other failure from the Azure DevOps service,
// including authentication failures, surfaced with the underlying message.
type RemoteServiceError struct {
	// StatusCode is the HTTP status, when known (0 otherwise).
	StatusCode int
	// Reason is the underlying error.
	Reason error
}

// Error returns a user-facing message, with token guidance on auth failures.
func (e *RemoteServiceError) Error() string {
	if e.StatusCode == http.StatusUnauthorized {
		return fmt.Sprintf("authentication failed: %v\n\nCheck your %s environment variable", e.Reason, "ADO_PAT")
	}
	return fmt.Sprintf("Azure DevOps API error: %v", e.Reason)
}

// Unwrap returns the underlying error.
func (e *RemoteServiceError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *RemoteServiceError) Is(target error) bool {
	_, ok := target.(*RemoteServiceError)
	return ok
}

// translateError converts SDK failures into the package error taxonomy.
// 404s become NotFoundError; everything else, including 401s, becomes a
// RemoteServiceError carrying the status when known.
func translateError(err error, resource string) error {
	if err == nil {
		return nil
	}

	status := 0
	var wrapped azuredevops.WrappedError
	if errors.As(err, &wrapped) && wrapped.StatusCode != nil {
		status = *wrapped.StatusCode
	} else {
		// Some transport failures only carry the status in the message.
		msg := err.Error()
		switch {
		case strings.Contains(msg, "401") || strings.Contains(strings.ToLower(msg), "unauthorized"):
			status = http.StatusUnauthorized
		case strings.Contains(msg, "404") || strings.Contains(strings.ToLower(msg), "not found"):
			status = http.StatusNotFound
		}
	}

	if status == http.StatusNotFound {
		return &NotFoundError{Resource: resource}
	}
	return &RemoteServiceError{StatusCode: status, Reason: err}
}
