// Package provider defines the contract for cloud-storage backends and the
// registry that maps service names to backend instances.
//
// Backends wrap blocking third-party clients; nothing blocking leaks past the
// Provider interface, and implementations must be safe for concurrent use.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/paimon/gateway/internal/staging"
)

// Provider is an authenticated handle to one remote storage service.
type Provider interface {
	// EnsureSession logs in to the remote service if no session exists yet.
	// It is idempotent and safe to call concurrently: at most one login
	// exchange runs, and every caller observes its outcome.
	EnsureSession(ctx context.Context) error

	// UploadAndLink sends the staged file to the remote service and returns
	// a public shareable link. It establishes the session first if needed.
	// Either a usable link or an error is returned, never both.
	UploadAndLink(ctx context.Context, f staging.File) (string, error)
}

// ErrMissingCredentials is returned when a provider is asked to log in
// without configured account credentials.
var ErrMissingCredentials = errors.New("provider credentials not configured")

// UnsupportedServiceError reports a request for a service name outside the
// known set. Its message is part of the HTTP contract.
type UnsupportedServiceError struct {
	Name      string
	Supported []string
}

func (e *UnsupportedServiceError) Error() string {
	return fmt.Sprintf("Unsupported service: %s. Supported services: %s",
		e.Name, strings.Join(e.Supported, ", "))
}
