// Package schema is the constant table describing the eight onboarding
// steps: field order, field kinds and default values. It has no state
// and no error conditions.
package schema

import "github.com/amcdesk/onboard/internal/client/models"

// Kind classifies a step field.
type Kind int

const (
	// KindScalar is a free-text or enum string field.
	KindScalar Kind = iota
	// KindBool is a yes/no flag.
	KindBool
	// KindContact is a nested {name, email, mobile} object.
	KindContact
	// KindCollection is an array of sub-entities (devices, servers).
	KindCollection
)

// Field is one named field of a step payload.
type Field struct {
	Name string
	Kind Kind
}

// ContactFields are the keys of every nested contact object.
var ContactFields = []string{"name", "email", "mobile"}

var steps = [models.StepCount][]Field{
	{ // step 1: company & contract
		{Name: "company_name", Kind: KindScalar},
		{Name: "industry", Kind: KindScalar},
		{Name: "employee_count", Kind: KindScalar},
		{Name: "registered_address", Kind: KindScalar},
		{Name: "city", Kind: KindScalar},
		{Name: "state", Kind: KindScalar},
		{Name: "postal_code", Kind: KindScalar},
		{Name: "gst_number", Kind: KindScalar},
		{Name: "contract_start_date", Kind: KindScalar},
		{Name: "billing_cycle", Kind: KindScalar},
		{Name: "primary_contact", Kind: KindContact},
		{Name: "escalation_contact", Kind: KindContact},
	},
	{ // step 2: office environment
		{Name: "office_count", Kind: KindScalar},
		{Name: "floors", Kind: KindScalar},
		{Name: "seating_capacity", Kind: KindScalar},
		{Name: "working_hours", Kind: KindScalar},
		{Name: "working_days", Kind: KindScalar},
		{Name: "power_backup", Kind: KindScalar},
		{Name: "internet_provider", Kind: KindScalar},
		{Name: "internet_bandwidth", Kind: KindScalar},
		{Name: "site_contact", Kind: KindContact},
	},
	{ // step 3: device categories
		{Name: "has_desktops", Kind: KindBool},
		{Name: "has_laptops", Kind: KindBool},
		{Name: "has_printers", Kind: KindBool},
		{Name: "has_servers", Kind: KindBool},
		{Name: "has_networking", Kind: KindBool},
		{Name: "has_cctv", Kind: KindBool},
		{Name: "has_ups", Kind: KindBool},
		{Name: "has_pos", Kind: KindBool},
		{Name: "has_projectors", Kind: KindBool},
		{Name: "approximate_device_count", Kind: KindScalar},
	},
	{ // step 4: device inventory
		{Name: "devices", Kind: KindCollection},
		{Name: "inventory_notes", Kind: KindScalar},
	},
	{ // step 5: servers & network topology
		{Name: "servers", Kind: KindCollection},
		{Name: "firewall_brand", Kind: KindScalar},
		{Name: "router_brand", Kind: KindScalar},
		{Name: "managed_switches", Kind: KindScalar},
		{Name: "static_ip_count", Kind: KindScalar},
		{Name: "domain_provider", Kind: KindScalar},
		{Name: "wifi_coverage", Kind: KindScalar},
		{Name: "topology_notes", Kind: KindScalar},
	},
	{ // step 6: software & access
		{Name: "business_applications", Kind: KindScalar},
		{Name: "email_provider", Kind: KindScalar},
		{Name: "antivirus_product", Kind: KindScalar},
		{Name: "remote_access_tool", Kind: KindScalar},
		{Name: "licensing_notes", Kind: KindScalar},
		{Name: "admin_access_granted", Kind: KindBool},
		{Name: "it_admin_contact", Kind: KindContact},
	},
	{ // step 7: previous-vendor handover
		{Name: "previous_vendor_name", Kind: KindScalar},
		{Name: "vendor_contract_end", Kind: KindScalar},
		{Name: "handover_status", Kind: KindScalar},
		{Name: "credentials_received", Kind: KindBool},
		{Name: "documentation_received", Kind: KindBool},
		{Name: "pending_items", Kind: KindScalar},
		{Name: "vendor_contact", Kind: KindContact},
	},
	{ // step 8: scope confirmation
		{Name: "expected_response_time", Kind: KindScalar},
		{Name: "preferred_visit_day", Kind: KindScalar},
		{Name: "special_instructions", Kind: KindScalar},
		{Name: "exclusions_acknowledged", Kind: KindBool},
		{Name: "information_accuracy_confirmed", Kind: KindBool},
	},
}

// ValidStep reports whether step is a 1-based step number.
func ValidStep(step int) bool {
	return step >= 1 && step <= models.StepCount
}

// Fields returns the ordered field list of a step, or nil when step is
// out of range.
func Fields(step int) []Field {
	if !ValidStep(step) {
		return nil
	}
	return steps[step-1]
}

// Lookup finds a field by name within a step.
func Lookup(step int, name string) (Field, bool) {
	for _, f := range Fields(step) {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults builds a fresh payload for a step with every field set to
// its zero value: empty strings, false flags, blank contacts and empty
// typed collections.
func Defaults(step int) models.StepData {
	fields := Fields(step)
	data := make(models.StepData, len(fields))
	for _, f := range fields {
		switch f.Kind {
		case KindBool:
			data[f.Name] = false
		case KindContact:
			contact := make(map[string]any, len(ContactFields))
			for _, c := range ContactFields {
				contact[c] = ""
			}
			data[f.Name] = contact
		case KindCollection:
			switch f.Name {
			case "devices":
				data[f.Name] = []models.DeviceEntry{}
			case "servers":
				data[f.Name] = []models.ServerEntry{}
			default:
				data[f.Name] = []any{}
			}
		default:
			data[f.Name] = ""
		}
	}
	return data
}

// CategoryFlags lists the nine step-3 category booleans in order,
// paired with the category token the template endpoint understands.
func CategoryFlags() []struct{ Field, Token string } {
	return []struct{ Field, Token string }{
		{"has_desktops", "desktops"},
		{"has_laptops", "laptops"},
		{"has_printers", "printers"},
		{"has_servers", "servers"},
		{"has_networking", "networking"},
		{"has_cctv", "cctv"},
		{"has_ups", "ups"},
		{"has_pos", "pos"},
		{"has_projectors", "projectors"},
	}
}
