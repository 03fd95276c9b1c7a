// Package services orchestrates the onboarding lifecycle: loading and
// hydrating the draft, persisting it, moving between steps, importing
// inventory workbooks and submitting for review.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/amcdesk/onboard/internal/client/draft"
	"github.com/amcdesk/onboard/internal/client/imports"
	"github.com/amcdesk/onboard/internal/client/models"
	"github.com/amcdesk/onboard/internal/client/portal"
	"github.com/amcdesk/onboard/internal/client/repositories/drafts"
	"github.com/amcdesk/onboard/internal/logging"
)

var (
	// ErrBusy means a save or submit is already in flight. Repeat
	// invocations are rejected rather than queued, so a double click
	// can never produce duplicate writes.
	ErrBusy = errors.New("another save is already in progress")

	// ErrAccuracyNotConfirmed blocks submission until the step-8
	// acknowledgment flag is set. No network call is made.
	ErrAccuracyNotConfirmed = errors.New("information accuracy must be confirmed before submitting")

	// ErrEntryNotFound means no collection entry carries the given id.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidSerial means a manually added device carries an empty
	// or template-sample serial number.
	ErrInvalidSerial = errors.New("invalid serial number")
)

// OnboardingService drives one tenant's onboarding session.
type OnboardingService interface {
	// Load fetches the record from the portal and hydrates the draft.
	// When the portal is unreachable and a local snapshot exists, the
	// snapshot is hydrated instead and fromSnapshot is true.
	Load(ctx context.Context) (fromSnapshot bool, err error)

	// Store exposes the draft state for reading and field edits.
	Store() *draft.Store

	// SaveDraft persists all eight steps and the wizard position.
	// It never changes the lifecycle status.
	SaveDraft(ctx context.Context) error

	// AdvanceStep persists the current state, then moves forward one
	// step (capped at the last). On persistence failure the position
	// is unchanged.
	AdvanceStep(ctx context.Context) (int, error)

	// RetreatStep moves back one step (floored at 1) without
	// persisting.
	RetreatStep() (int, error)

	// Submit persists the draft and requests the transition to
	// submitted. Requires the step-8 accuracy acknowledgment.
	Submit(ctx context.Context) error

	// ImportWorkbook parses an inventory workbook, uploads the
	// surviving rows for normalization and appends the returned
	// entries to the device collection. The collection is untouched
	// on any failure. Rejected with ErrBusy while another save or
	// import is in flight.
	ImportWorkbook(ctx context.Context, r io.Reader) (int, error)

	// TemplateCategories derives the category tokens from the step-3
	// flags, recomputed from current state on every call.
	TemplateCategories() []string

	// DownloadTemplate fetches the inventory template narrowed to the
	// selected categories.
	DownloadTemplate(ctx context.Context) ([]byte, error)

	// AddDevice appends a manually entered device, assigning an id
	// when none is set. Empty and template-sample serials are
	// rejected with ErrInvalidSerial.
	AddDevice(d models.DeviceEntry) (models.DeviceEntry, error)

	// RemoveDevice deletes the device with the given id.
	RemoveDevice(id string) error

	// AddServer appends a manually entered server entry.
	AddServer(e models.ServerEntry) (models.ServerEntry, error)

	// RemoveServer deletes the server entry with the given id.
	RemoveServer(id string) error
}

type onboardingService struct {
	client    portal.Client
	store     *draft.Store
	snapshots drafts.Repository
	log       logging.Logger
	saving    atomic.Bool
}

// NewOnboardingService wires the portal client, the local snapshot
// repository and a fresh draft store.
func NewOnboardingService(client portal.Client, snapshots drafts.Repository, log logging.Logger) OnboardingService {
	return &onboardingService{
		client:    client,
		store:     draft.NewStore(),
		snapshots: snapshots,
		log:       log,
	}
}

func (s *onboardingService) Store() *draft.Store { return s.store }

func (s *onboardingService) Load(ctx context.Context) (bool, error) {
	rec, err := s.client.GetOnboarding(ctx)
	if err == nil {
		if herr := s.store.HydrateRecord(rec); herr != nil {
			return false, fmt.Errorf("hydrating onboarding: %w", herr)
		}
		return false, nil
	}

	s.log.Warn(ctx, "portal fetch failed, trying local snapshot", "error", err)

	data, serr := s.snapshots.Load(ctx)
	if serr != nil {
		return false, fmt.Errorf("fetching onboarding: %w", err)
	}
	var snap models.OnboardingRecord
	if uerr := json.Unmarshal(data, &snap); uerr != nil {
		return false, fmt.Errorf("decoding local snapshot: %w", uerr)
	}
	if herr := s.store.HydrateRecord(&snap); herr != nil {
		return false, fmt.Errorf("hydrating snapshot: %w", herr)
	}
	return true, nil
}

// persist PUTs the current draft. On failure the payload is written to
// the local snapshot so nothing is lost; on success a stale snapshot
// is cleared.
func (s *onboardingService) persist(ctx context.Context) error {
	rec := s.store.Record()

	if err := s.client.SaveOnboarding(ctx, rec.CurrentStep, rec.Steps); err != nil {
		if data, merr := json.Marshal(rec); merr == nil {
			if serr := s.snapshots.Save(ctx, data); serr != nil {
				s.log.Warn(ctx, "saving local snapshot failed", "error", serr)
			}
		}
		return fmt.Errorf("saving draft: %w", err)
	}

	if err := s.snapshots.Clear(ctx); err != nil {
		s.log.Warn(ctx, "clearing local snapshot failed", "error", err)
	}
	return nil
}

func (s *onboardingService) SaveDraft(ctx context.Context) error {
	if !s.store.Editable() {
		return draft.ErrReadOnly
	}
	if !s.saving.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.saving.Store(false)

	return s.persist(ctx)
}

func (s *onboardingService) AdvanceStep(ctx context.Context) (int, error) {
	if !s.store.Editable() {
		return s.store.CurrentStep(), draft.ErrReadOnly
	}
	if !s.saving.CompareAndSwap(false, true) {
		return s.store.CurrentStep(), ErrBusy
	}
	defer s.saving.Store(false)

	if err := s.persist(ctx); err != nil {
		return s.store.CurrentStep(), err
	}
	return s.store.Advance()
}

func (s *onboardingService) RetreatStep() (int, error) {
	return s.store.Retreat()
}

func (s *onboardingService) Submit(ctx context.Context) error {
	if !s.store.AccuracyConfirmed() {
		return ErrAccuracyNotConfirmed
	}
	if !s.store.Editable() {
		return draft.ErrReadOnly
	}
	if !s.saving.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.saving.Store(false)

	if err := s.persist(ctx); err != nil {
		return err
	}
	if err := s.client.Submit(ctx); err != nil {
		return fmt.Errorf("submitting onboarding: %w", err)
	}

	s.store.SetStatus(models.StatusSubmitted)
	s.log.Info(ctx, "onboarding submitted for review")
	return nil
}

func (s *onboardingService) ImportWorkbook(ctx context.Context, r io.Reader) (int, error) {
	if !s.store.Editable() {
		return 0, draft.ErrReadOnly
	}
	if !s.saving.CompareAndSwap(false, true) {
		return 0, ErrBusy
	}
	defer s.saving.Store(false)

	rows, err := imports.ParseWorkbook(r)
	if err != nil {
		return 0, err
	}

	count, devices, err := s.client.UploadDevices(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("uploading devices: %w", err)
	}

	merged := append(s.store.Devices(), devices...)
	if err := s.store.ReplaceCollection(4, "devices", merged); err != nil {
		return 0, err
	}

	s.log.Info(ctx, "devices imported", "count", count)
	return count, nil
}

func (s *onboardingService) TemplateCategories() []string {
	return TemplateCategories(s.store.Step(3))
}

func (s *onboardingService) DownloadTemplate(ctx context.Context) ([]byte, error) {
	return s.client.DownloadTemplate(ctx, s.TemplateCategories())
}

func (s *onboardingService) AddDevice(d models.DeviceEntry) (models.DeviceEntry, error) {
	serial := strings.TrimSpace(d.SerialNumber)
	if serial == "" {
		return models.DeviceEntry{}, fmt.Errorf("%w: a serial number is required", ErrInvalidSerial)
	}
	if imports.IsSampleSerial(serial) {
		return models.DeviceEntry{}, fmt.Errorf("%w: %q is a template sample", ErrInvalidSerial, serial)
	}
	d.SerialNumber = serial

	if d.ID == "" {
		d.ID = models.NewDeviceID()
	}
	devices := append(s.store.Devices(), d)
	if err := s.store.ReplaceCollection(4, "devices", devices); err != nil {
		return models.DeviceEntry{}, err
	}
	return d, nil
}

func (s *onboardingService) RemoveDevice(id string) error {
	devices := s.store.Devices()
	kept := make([]models.DeviceEntry, 0, len(devices))
	for _, d := range devices {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(devices) {
		return fmt.Errorf("%w: device %s", ErrEntryNotFound, id)
	}
	return s.store.ReplaceCollection(4, "devices", kept)
}

func (s *onboardingService) AddServer(e models.ServerEntry) (models.ServerEntry, error) {
	if e.ID == "" {
		e.ID = models.NewServerID()
	}
	servers := append(s.store.Servers(), e)
	if err := s.store.ReplaceCollection(5, "servers", servers); err != nil {
		return models.ServerEntry{}, err
	}
	return e, nil
}

func (s *onboardingService) RemoveServer(id string) error {
	servers := s.store.Servers()
	kept := make([]models.ServerEntry, 0, len(servers))
	for _, e := range servers {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(servers) {
		return fmt.Errorf("%w: server %s", ErrEntryNotFound, id)
	}
	return s.store.ReplaceCollection(5, "servers", kept)
}
