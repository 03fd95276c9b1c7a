package draft

import (
	"fmt"

	"github.com/amcdesk/onboard/internal/client/models"
	"github.com/amcdesk/onboard/internal/client/schema"
)

// Action is one mutation of the draft state. The set is closed: field
// writes, nested contact writes, collection replacement and hydration.
type Action interface {
	apply(s *Store) error
}

// SetField replaces a scalar or boolean field of a step payload.
type SetField struct {
	Step  int
	Field string
	Value any
}

func (a SetField) apply(s *Store) error {
	f, err := s.lookupField(a.Step, a.Field)
	if err != nil {
		return err
	}
	switch f.Kind {
	case schema.KindContact:
		return fmt.Errorf("setting %q: use SetNestedField for contact objects", a.Field)
	case schema.KindCollection:
		return fmt.Errorf("setting %q: use ReplaceCollection for collections", a.Field)
	}
	s.steps[models.StepKey(a.Step)][a.Field] = a.Value
	return nil
}

// SetNestedField replaces one key inside a contact object.
type SetNestedField struct {
	Step   int
	Parent string
	Field  string
	Value  any
}

func (a SetNestedField) apply(s *Store) error {
	f, err := s.lookupField(a.Step, a.Parent)
	if err != nil {
		return err
	}
	if f.Kind != schema.KindContact {
		return fmt.Errorf("%w: %q", ErrNotContact, a.Parent)
	}
	known := false
	for _, c := range schema.ContactFields {
		if c == a.Field {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: contact %q has no field %q", ErrUnknownField, a.Parent, a.Field)
	}

	data := s.steps[models.StepKey(a.Step)]
	contact, ok := data[a.Parent].(map[string]any)
	if !ok {
		contact = make(map[string]any, len(schema.ContactFields))
	}
	contact[a.Field] = a.Value
	data[a.Parent] = contact
	return nil
}

// ReplaceCollection swaps an array-valued field wholesale. Add, remove
// and import operations compute the new array and hand it in.
type ReplaceCollection struct {
	Step  int
	Field string
	Items any
}

func (a ReplaceCollection) apply(s *Store) error {
	f, err := s.lookupField(a.Step, a.Field)
	if err != nil {
		return err
	}
	if f.Kind != schema.KindCollection {
		return fmt.Errorf("%w: %q", ErrNotCollection, a.Field)
	}
	s.steps[models.StepKey(a.Step)][a.Field] = a.Items
	return nil
}

// Hydrate overwrites the whole store from a freshly fetched record.
// Steps missing from the record fall back to schema defaults, so the
// store always carries all eight payloads. Collection fields are
// normalized into their typed entry slices.
type Hydrate struct {
	Record *models.OnboardingRecord
}

func (a Hydrate) apply(s *Store) error {
	rec := a.Record
	if rec == nil {
		rec = &models.OnboardingRecord{}
	}

	steps := make(map[string]models.StepData, models.StepCount)
	for step := 1; step <= models.StepCount; step++ {
		key := models.StepKey(step)
		data := schema.Defaults(step)
		if src, ok := rec.Steps[key]; ok {
			for k, v := range src {
				if _, known := schema.Lookup(step, k); known {
					data[k] = v
				}
			}
		}
		steps[key] = data
	}

	devices, err := models.DecodeEntries[models.DeviceEntry](steps[models.StepKey(4)]["devices"])
	if err != nil {
		return fmt.Errorf("hydrating devices: %w", err)
	}
	steps[models.StepKey(4)]["devices"] = devices

	servers, err := models.DecodeEntries[models.ServerEntry](steps[models.StepKey(5)]["servers"])
	if err != nil {
		return fmt.Errorf("hydrating servers: %w", err)
	}
	steps[models.StepKey(5)]["servers"] = servers

	current := rec.CurrentStep
	if current < 1 {
		current = 1
	}
	if current > models.StepCount {
		current = models.StepCount
	}

	s.id = rec.ID
	s.status = rec.Status
	s.adminFeedback = rec.AdminFeedback
	s.currentStep = current
	s.steps = steps
	return nil
}
