// Package draft holds the in-memory working copy of the onboarding
// questionnaire. All mutations go through a typed action set and are
// rejected with ErrReadOnly once the record has left an editable
// status, so the lifecycle gate cannot be bypassed programmatically.
package draft

import (
	"errors"
	"fmt"

	"github.com/amcdesk/onboard/internal/client/models"
	"github.com/amcdesk/onboard/internal/client/schema"
)

var (
	ErrReadOnly      = errors.New("onboarding is read-only in its current status")
	ErrUnknownStep   = errors.New("unknown step")
	ErrUnknownField  = errors.New("unknown field")
	ErrNotContact    = errors.New("field is not a contact object")
	ErrNotCollection = errors.New("field is not a collection")
)

// Store is the draft state for one tenant session. It is not safe for
// concurrent use; all access happens on the interaction loop.
type Store struct {
	id            string
	status        models.Status
	adminFeedback string
	currentStep   int
	steps         map[string]models.StepData
}

// NewStore returns a store seeded with schema defaults for all eight
// steps, positioned on step 1.
func NewStore() *Store {
	s := &Store{currentStep: 1, steps: make(map[string]models.StepData, models.StepCount)}
	for step := 1; step <= models.StepCount; step++ {
		s.steps[models.StepKey(step)] = schema.Defaults(step)
	}
	return s
}

// Editable reports whether mutations are currently allowed.
func (s *Store) Editable() bool { return s.status.Editable() }

// Status returns the lifecycle status last seen from the portal.
func (s *Store) Status() models.Status { return s.status }

// SetStatus records a server-confirmed status transition.
func (s *Store) SetStatus(status models.Status) { s.status = status }

// AdminFeedback returns reviewer feedback, present when changes were
// requested.
func (s *Store) AdminFeedback() string { return s.adminFeedback }

// CurrentStep returns the 1-based wizard position.
func (s *Store) CurrentStep() int { return s.currentStep }

// Advance moves one step forward, capped at the last step. The cap is
// a silent no-op: the position is returned either way.
func (s *Store) Advance() (int, error) {
	if !s.Editable() {
		return s.currentStep, ErrReadOnly
	}
	if s.currentStep < models.StepCount {
		s.currentStep++
	}
	return s.currentStep, nil
}

// Retreat moves one step back, floored at step 1.
func (s *Store) Retreat() (int, error) {
	if !s.Editable() {
		return s.currentStep, ErrReadOnly
	}
	if s.currentStep > 1 {
		s.currentStep--
	}
	return s.currentStep, nil
}

// Step returns the live payload of a step. Callers must treat it as
// read-only; writes go through Apply.
func (s *Store) Step(step int) models.StepData {
	if !schema.ValidStep(step) {
		return nil
	}
	return s.steps[models.StepKey(step)]
}

// Devices returns the typed device collection of step 4.
func (s *Store) Devices() []models.DeviceEntry {
	if v, ok := s.Step(4)["devices"].([]models.DeviceEntry); ok {
		return v
	}
	return []models.DeviceEntry{}
}

// Servers returns the typed server collection of step 5.
func (s *Store) Servers() []models.ServerEntry {
	if v, ok := s.Step(5)["servers"].([]models.ServerEntry); ok {
		return v
	}
	return []models.ServerEntry{}
}

// AccuracyConfirmed reads the step-8 acknowledgment flag that gates
// submission.
func (s *Store) AccuracyConfirmed() bool {
	v, _ := s.Step(8)["information_accuracy_confirmed"].(bool)
	return v
}

// Record snapshots the store into an OnboardingRecord suitable for
// persistence. Step maps are copied one level deep so later edits do
// not leak into the snapshot.
func (s *Store) Record() *models.OnboardingRecord {
	steps := make(map[string]models.StepData, len(s.steps))
	for key, data := range s.steps {
		cp := make(models.StepData, len(data))
		for k, v := range data {
			cp[k] = v
		}
		steps[key] = cp
	}
	return &models.OnboardingRecord{
		ID:            s.id,
		Status:        s.status,
		CurrentStep:   s.currentStep,
		AdminFeedback: s.adminFeedback,
		Steps:         steps,
	}
}

// Apply executes a single action against the store. Mutating actions
// fail with ErrReadOnly when the record is not editable; Hydrate is
// always allowed since it mirrors server state.
func (s *Store) Apply(a Action) error {
	if _, ok := a.(Hydrate); !ok && !s.Editable() {
		return ErrReadOnly
	}
	return a.apply(s)
}

// SetField replaces a scalar or boolean field value.
func (s *Store) SetField(step int, field string, value any) error {
	return s.Apply(SetField{Step: step, Field: field, Value: value})
}

// SetNestedField replaces one key of a contact object.
func (s *Store) SetNestedField(step int, parent, field string, value any) error {
	return s.Apply(SetNestedField{Step: step, Parent: parent, Field: field, Value: value})
}

// ReplaceCollection swaps a step's array-valued field wholesale.
func (s *Store) ReplaceCollection(step int, field string, items any) error {
	return s.Apply(ReplaceCollection{Step: step, Field: field, Items: items})
}

// HydrateRecord overwrites the whole store from a fetched record.
func (s *Store) HydrateRecord(rec *models.OnboardingRecord) error {
	return s.Apply(Hydrate{Record: rec})
}

func (s *Store) lookupField(step int, field string) (schema.Field, error) {
	if !schema.ValidStep(step) {
		return schema.Field{}, fmt.Errorf("%w: %d", ErrUnknownStep, step)
	}
	f, ok := schema.Lookup(step, field)
	if !ok {
		return schema.Field{}, fmt.Errorf("%w: step %d has no field %q", ErrUnknownField, step, field)
	}
	return f, nil
}
