package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/amcdesk/onboard/internal/client/models"
)

// Devices lists the declared device inventory.
func (a *App) Devices(ctx context.Context) error {
	devices := a.svc.Store().Devices()
	if len(devices) == 0 {
		printlnFn("No devices declared yet. Use adddevice or import.")
		return nil
	}
	for _, d := range devices {
		printlnFn(fmt.Sprintf("  %s  %-12s %s %s  sn=%s  %s",
			d.ID, d.DeviceType, d.Brand, d.Model, d.SerialNumber, d.AssignedUser))
	}
	printlnFn(fmt.Sprintf("%d device(s)", len(devices)))
	return nil
}

// AddDevice interactively collects one device entry.
func (a *App) AddDevice(ctx context.Context) error {
	types := make([]string, 0, len(models.DeviceTypes()))
	for _, t := range models.DeviceTypes() {
		types = append(types, string(t))
	}

	deviceType, err := GetSimpleText(a.reader, "Device type ("+strings.Join(types, ", ")+")", outWriter())
	if err != nil {
		return err
	}
	brand, err := GetSimpleText(a.reader, "Brand", outWriter())
	if err != nil {
		return err
	}
	model, err := GetSimpleText(a.reader, "Model", outWriter())
	if err != nil {
		return err
	}
	serial, err := GetSimpleText(a.reader, "Serial number", outWriter())
	if err != nil {
		return err
	}
	if serial == "" {
		printlnFn("A serial number is required.")
		return nil
	}
	assignedUser, err := GetSimpleText(a.reader, "Assigned user (optional)", outWriter())
	if err != nil {
		return err
	}
	location, err := GetSimpleText(a.reader, "Physical location (optional)", outWriter())
	if err != nil {
		return err
	}

	d, err := a.svc.AddDevice(models.DeviceEntry{
		DeviceType:       models.DeviceType(deviceType),
		Brand:            brand,
		Model:            model,
		SerialNumber:     serial,
		WarrantyStatus:   models.WarrantyUnknown,
		Condition:        models.ConditionGood,
		AssignedUser:     assignedUser,
		PhysicalLocation: location,
	})
	if err != nil {
		a.reportEditError(err)
		return err
	}
	printlnFn("Added device", d.ID)
	return nil
}

// RemoveDevice deletes a device by id.
func (a *App) RemoveDevice(ctx context.Context, id string) error {
	if err := a.svc.RemoveDevice(id); err != nil {
		a.reportEditError(err)
		return err
	}
	printlnFn("Removed device", id)
	return nil
}
