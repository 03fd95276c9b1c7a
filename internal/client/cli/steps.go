package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amcdesk/onboard/internal/client/draft"
	"github.com/amcdesk/onboard/internal/client/models"
	"github.com/amcdesk/onboard/internal/client/schema"
	"github.com/amcdesk/onboard/internal/client/services"
)

// stepTitles are the human names of the wizard steps, in order.
var stepTitles = [models.StepCount]string{
	"Company & Contract",
	"Office Environment",
	"Device Categories",
	"Device Inventory",
	"Servers & Network",
	"Software & Access",
	"Vendor Handover",
	"Scope Confirmation",
}

// Status prints the lifecycle state and any reviewer feedback.
func (a *App) Status(ctx context.Context) error {
	store := a.svc.Store()
	status := store.Status()
	if status == "" {
		status = "new (not yet saved)"
	}
	printlnFn("Status:", string(status))
	printlnFn(fmt.Sprintf("Step: %d/%d — %s", store.CurrentStep(), models.StepCount, stepTitles[store.CurrentStep()-1]))
	if fb := store.AdminFeedback(); fb != "" {
		printlnFn("Reviewer feedback:", fb)
	}
	if !store.Editable() {
		printlnFn("The record is read-only while under review.")
	}
	return nil
}

// Show prints the fields of the current step, or of the step number
// given as an argument.
func (a *App) Show(ctx context.Context, args []string) error {
	store := a.svc.Store()
	step := store.CurrentStep()
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || !schema.ValidStep(n) {
			printlnFn(fmt.Sprintf("Usage: show [1-%d]", models.StepCount))
			return nil
		}
		step = n
	}

	printlnFn(fmt.Sprintf("Step %d — %s", step, stepTitles[step-1]))
	data := store.Step(step)
	for _, f := range schema.Fields(step) {
		switch f.Kind {
		case schema.KindContact:
			contact, _ := data[f.Name].(map[string]any)
			printlnFn(fmt.Sprintf("  %s:", f.Name))
			for _, c := range schema.ContactFields {
				printlnFn(fmt.Sprintf("    %s: %v", c, contact[c]))
			}
		case schema.KindCollection:
			printlnFn(fmt.Sprintf("  %s: %d entries", f.Name, collectionLen(data[f.Name])))
		default:
			printlnFn(fmt.Sprintf("  %s: %v", f.Name, data[f.Name]))
		}
	}
	return nil
}

func collectionLen(v any) int {
	switch items := v.(type) {
	case []models.DeviceEntry:
		return len(items)
	case []models.ServerEntry:
		return len(items)
	case []any:
		return len(items)
	default:
		return 0
	}
}

// Edit prompts for a field of the current step and a new value.
// Contact sub-fields use dotted names (primary_contact.email).
func (a *App) Edit(ctx context.Context) error {
	store := a.svc.Store()
	step := store.CurrentStep()

	name, err := GetSimpleText(a.reader, "Field name (use parent.child for contacts)", outWriter())
	if err != nil {
		return err
	}

	if parent, child, ok := strings.Cut(name, "."); ok {
		value, err := GetSimpleText(a.reader, "New value", outWriter())
		if err != nil {
			return err
		}
		if err := store.SetNestedField(step, parent, child, value); err != nil {
			a.reportEditError(err)
			return err
		}
		return nil
	}

	f, ok := schema.Lookup(step, name)
	if !ok {
		printlnFn(fmt.Sprintf("Step %d has no field %q", step, name))
		return nil
	}

	var value any
	switch f.Kind {
	case schema.KindBool:
		current, _ := store.Step(step)[name].(bool)
		v, err := GetBool(a.reader, "New value", current, outWriter())
		if err != nil {
			printlnFn(err.Error())
			return err
		}
		value = v
	case schema.KindCollection:
		printlnFn("Collections are edited with the devices/servers commands.")
		return nil
	default:
		v, err := GetSimpleText(a.reader, "New value", outWriter())
		if err != nil {
			return err
		}
		value = v
	}

	if err := store.SetField(step, name, value); err != nil {
		a.reportEditError(err)
		return err
	}
	return nil
}

func (a *App) reportEditError(err error) {
	if errors.Is(err, draft.ErrReadOnly) {
		printlnFn("The record is read-only and cannot be edited.")
		return
	}
	printlnFn("Edit failed:", err.Error())
}

// Next persists the draft and moves one step forward.
func (a *App) Next(ctx context.Context) error {
	step, err := a.svc.AdvanceStep(ctx)
	if err != nil {
		a.reportLifecycleError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Now on step %d — %s", step, stepTitles[step-1]))
	return nil
}

// Back moves one step back without persisting.
func (a *App) Back(ctx context.Context) error {
	step, err := a.svc.RetreatStep()
	if err != nil {
		a.reportLifecycleError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Now on step %d — %s", step, stepTitles[step-1]))
	return nil
}

// Save persists the draft explicitly.
func (a *App) Save(ctx context.Context) error {
	if err := a.svc.SaveDraft(ctx); err != nil {
		a.reportLifecycleError(err)
		return err
	}
	printlnFn("Draft saved.")
	return nil
}

// Submit sends the questionnaire for staff review.
func (a *App) Submit(ctx context.Context) error {
	confirmed, err := GetBool(a.reader, "Submit the onboarding for review? This locks editing", false, outWriter())
	if err != nil || !confirmed {
		printlnFn("Submission cancelled.")
		return err
	}
	if err := a.svc.Submit(ctx); err != nil {
		a.reportLifecycleError(err)
		return err
	}
	printlnFn("Onboarding submitted. You will be notified after review.")
	return nil
}

func (a *App) reportLifecycleError(err error) {
	switch {
	case errors.Is(err, draft.ErrReadOnly):
		printlnFn("The record is read-only while under review.")
	case errors.Is(err, services.ErrBusy):
		printlnFn("A save is already in progress; please wait.")
	case errors.Is(err, services.ErrAccuracyNotConfirmed):
		printlnFn("Confirm information accuracy on step 8 before submitting.")
	default:
		printlnFn("Request failed (your changes are kept locally):", err.Error())
	}
}
