package models

import "github.com/google/uuid"

// ServerType distinguishes physical machines from virtual ones.
type ServerType string

const (
	ServerPhysical ServerType = "physical"
	ServerVirtual  ServerType = "virtual"
)

// BackupStatus describes how often the server is backed up.
type BackupStatus string

const (
	BackupDaily   BackupStatus = "daily"
	BackupWeekly  BackupStatus = "weekly"
	BackupMonthly BackupStatus = "monthly"
	BackupNone    BackupStatus = "none"
	BackupUnknown BackupStatus = "unknown"
)

// ServerEntry is one server declared in the topology step. Ids follow
// the same non-reuse rule as device ids.
type ServerEntry struct {
	ID           string       `json:"id"`
	Type         ServerType   `json:"type"`
	OS           string       `json:"os"`
	Roles        string       `json:"roles"`
	BackupStatus BackupStatus `json:"backup_status"`
	LastBackup   string       `json:"last_backup"`
}

// NewServerID returns a fresh opaque server id.
func NewServerID() string {
	return "srv_" + uuid.NewString()
}
