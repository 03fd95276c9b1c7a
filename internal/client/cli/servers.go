package cli

import (
	"context"
	"fmt"

	"github.com/amcdesk/onboard/internal/client/models"
)

// Servers lists the declared server entries.
func (a *App) Servers(ctx context.Context) error {
	servers := a.svc.Store().Servers()
	if len(servers) == 0 {
		printlnFn("No servers declared yet. Use addserver.")
		return nil
	}
	for _, e := range servers {
		printlnFn(fmt.Sprintf("  %s  %-8s %s  roles=%s  backup=%s",
			e.ID, e.Type, e.OS, e.Roles, e.BackupStatus))
	}
	printlnFn(fmt.Sprintf("%d server(s)", len(servers)))
	return nil
}

// AddServer interactively collects one server entry.
func (a *App) AddServer(ctx context.Context) error {
	serverType, err := GetSimpleText(a.reader, "Server type (physical, virtual)", outWriter())
	if err != nil {
		return err
	}
	os, err := GetSimpleText(a.reader, "Operating system", outWriter())
	if err != nil {
		return err
	}
	roles, err := GetSimpleText(a.reader, "Roles (AD, file server, ...)", outWriter())
	if err != nil {
		return err
	}
	backup, err := GetSimpleText(a.reader, "Backup status (daily, weekly, monthly, none, unknown)", outWriter())
	if err != nil {
		return err
	}
	lastBackup, err := GetSimpleText(a.reader, "Last backup date (optional)", outWriter())
	if err != nil {
		return err
	}

	e, err := a.svc.AddServer(models.ServerEntry{
		Type:         models.ServerType(serverType),
		OS:           os,
		Roles:        roles,
		BackupStatus: models.BackupStatus(backup),
		LastBackup:   lastBackup,
	})
	if err != nil {
		a.reportEditError(err)
		return err
	}
	printlnFn("Added server", e.ID)
	return nil
}

// RemoveServer deletes a server entry by id.
func (a *App) RemoveServer(ctx context.Context, id string) error {
	if err := a.svc.RemoveServer(id); err != nil {
		a.reportEditError(err)
		return err
	}
	printlnFn("Removed server", id)
	return nil
}
