package models

import (
	"encoding/json"
	"fmt"
)

// StepCount is the number of wizard steps in the questionnaire.
const StepCount = 8

// stepKeys are the wire names of the step payloads, in wizard order.
// They appear as top-level keys of the onboarding JSON document.
var stepKeys = [StepCount]string{
	"step1_company_contract",
	"step2_office_environment",
	"step3_device_categories",
	"step4_device_inventory",
	"step5_server_network",
	"step6_software_access",
	"step7_vendor_handover",
	"step8_scope_confirmation",
}

// StepKey returns the wire name for a 1-based step number.
// It panics on a step outside 1..StepCount; callers are expected to
// validate step numbers against the schema first.
func StepKey(step int) string {
	if step < 1 || step > StepCount {
		panic(fmt.Sprintf("models: step %d out of range", step))
	}
	return stepKeys[step-1]
}

// StepKeys returns all step wire names in wizard order.
func StepKeys() []string {
	keys := make([]string, StepCount)
	copy(keys, stepKeys[:])
	return keys
}

// StepData is one step's payload: named fields mapping to scalars,
// nested contact objects, or entry collections.
type StepData map[string]any

// OnboardingRecord is the root aggregate: lifecycle status, wizard
// position and all eight step payloads. The step payloads are flattened
// to top-level JSON keys on the wire (see StepKey).
type OnboardingRecord struct {
	ID            string
	Status        Status
	CurrentStep   int
	AdminFeedback string
	Steps         map[string]StepData
}

// MarshalJSON flattens the step payloads next to the scalar fields,
// matching the portal's document shape.
func (r OnboardingRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Steps)+4)
	if r.ID != "" {
		out["id"] = r.ID
	}
	if r.Status != "" {
		out["status"] = r.Status
	}
	out["current_step"] = r.CurrentStep
	if r.AdminFeedback != "" {
		out["admin_feedback"] = r.AdminFeedback
	}
	for key, data := range r.Steps {
		out[key] = data
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the flattened document and collects any step
// payloads present. Missing steps stay absent; the draft store fills
// them with schema defaults on hydration.
func (r *OnboardingRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding onboarding record: %w", err)
	}

	if v, ok := raw["id"]; ok {
		if err := json.Unmarshal(v, &r.ID); err != nil {
			return fmt.Errorf("decoding id: %w", err)
		}
	}
	if v, ok := raw["status"]; ok {
		if err := json.Unmarshal(v, &r.Status); err != nil {
			return fmt.Errorf("decoding status: %w", err)
		}
	}
	if v, ok := raw["current_step"]; ok {
		if err := json.Unmarshal(v, &r.CurrentStep); err != nil {
			return fmt.Errorf("decoding current_step: %w", err)
		}
	}
	if v, ok := raw["admin_feedback"]; ok {
		if err := json.Unmarshal(v, &r.AdminFeedback); err != nil {
			return fmt.Errorf("decoding admin_feedback: %w", err)
		}
	}

	r.Steps = make(map[string]StepData)
	for _, key := range stepKeys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		var sd StepData
		if err := json.Unmarshal(v, &sd); err != nil {
			return fmt.Errorf("decoding %s: %w", key, err)
		}
		if sd != nil {
			r.Steps[key] = sd
		}
	}
	return nil
}

// DecodeEntries converts a loosely typed collection value (as produced
// by JSON decoding into StepData) into a typed entry slice.
func DecodeEntries[T any](v any) ([]T, error) {
	if v == nil {
		return []T{}, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("re-encoding collection: %w", err)
	}
	out := []T{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decoding collection entries: %w", err)
	}
	return out, nil
}
