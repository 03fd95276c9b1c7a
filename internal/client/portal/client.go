// Package portal is the REST client for the AMC portal's onboarding
// endpoints. The server owns persistence and business rules; this
// package only speaks the wire contract.
package portal

import (
	"context"

	"github.com/amcdesk/onboard/internal/client/imports"
	"github.com/amcdesk/onboard/internal/client/models"
)

// Client is the onboarding surface of the portal API. Implementations
// carry the tenant's bearer token on every call.
type Client interface {
	Close() error

	// GetOnboarding fetches the tenant's onboarding record, or server
	// defaults when none has been persisted yet.
	GetOnboarding(ctx context.Context) (*models.OnboardingRecord, error)

	// SaveOnboarding persists the wizard position and all eight step
	// payloads verbatim. It never changes the lifecycle status.
	SaveOnboarding(ctx context.Context, currentStep int, steps map[string]models.StepData) error

	// Submit asks the server to transition the record to submitted.
	Submit(ctx context.Context) error

	// UploadDevices sends raw spreadsheet rows for normalization and
	// returns the count plus the canonical device entries.
	UploadDevices(ctx context.Context, rows []imports.RawRow) (int, []models.DeviceEntry, error)

	// DownloadTemplate fetches the inventory spreadsheet template,
	// narrowed to the given category tokens when any are set.
	DownloadTemplate(ctx context.Context, categories []string) ([]byte, error)
}
