// Package models defines the onboarding record, its step payloads and the
// inventory entry types exchanged with the AMC portal.
package models

// Status is the review lifecycle state of an onboarding record.
type Status string

const (
	StatusDraft            Status = "draft"
	StatusSubmitted        Status = "submitted"
	StatusChangesRequested Status = "changes_requested"
	StatusApproved         Status = "approved"
	StatusConverted        Status = "converted"
)

// Editable reports whether the tenant may still modify the record.
// A zero Status means the record has never been persisted and counts
// as editable. Everything past submission is read-only.
func (s Status) Editable() bool {
	switch s {
	case "", StatusDraft, StatusChangesRequested:
		return true
	default:
		return false
	}
}
