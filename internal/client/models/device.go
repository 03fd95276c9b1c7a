package models

import "github.com/google/uuid"

// DeviceType classifies an inventory asset.
type DeviceType string

const (
	DeviceTypeDesktop     DeviceType = "desktop"
	DeviceTypeLaptop      DeviceType = "laptop"
	DeviceTypePrinter     DeviceType = "printer"
	DeviceTypeServer      DeviceType = "server"
	DeviceTypeRouter      DeviceType = "router"
	DeviceTypeSwitch      DeviceType = "switch"
	DeviceTypeFirewall    DeviceType = "firewall"
	DeviceTypeUPS         DeviceType = "ups"
	DeviceTypeCCTVCamera  DeviceType = "cctv_camera"
	DeviceTypePOSTerminal DeviceType = "pos_terminal"
	DeviceTypeProjector   DeviceType = "projector"
	DeviceTypeOther       DeviceType = "other"
)

// DeviceTypes lists the fixed device catalog in display order.
func DeviceTypes() []DeviceType {
	return []DeviceType{
		DeviceTypeDesktop, DeviceTypeLaptop, DeviceTypePrinter,
		DeviceTypeServer, DeviceTypeRouter, DeviceTypeSwitch,
		DeviceTypeFirewall, DeviceTypeUPS, DeviceTypeCCTVCamera,
		DeviceTypePOSTerminal, DeviceTypeProjector, DeviceTypeOther,
	}
}

// WarrantyStatus describes the asset's warranty coverage.
type WarrantyStatus string

const (
	WarrantyInWarranty    WarrantyStatus = "in_warranty"
	WarrantyOutOfWarranty WarrantyStatus = "out_of_warranty"
	WarrantyUnknown       WarrantyStatus = "unknown"
)

// Condition describes the asset's physical state.
type Condition string

const (
	ConditionGood       Condition = "good"
	ConditionFair       Condition = "fair"
	ConditionPoor       Condition = "poor"
	ConditionNotWorking Condition = "not_working"
)

// DeviceEntry is one physical or logical asset declared during
// onboarding. The id is client-generated, opaque and never reused
// within an editing session; the serial number is the natural key.
type DeviceEntry struct {
	ID               string         `json:"id"`
	DeviceType       DeviceType     `json:"device_type"`
	Brand            string         `json:"brand"`
	Model            string         `json:"model"`
	SerialNumber     string         `json:"serial_number"`
	Configuration    string         `json:"configuration"`
	OSVersion        string         `json:"os_version"`
	PurchaseDate     string         `json:"purchase_date"`
	WarrantyStatus   WarrantyStatus `json:"warranty_status"`
	Condition        Condition      `json:"condition"`
	AssignedUser     string         `json:"assigned_user"`
	Department       string         `json:"department"`
	PhysicalLocation string         `json:"physical_location"`
}

// NewDeviceID returns a fresh opaque device id. UUIDs make ids
// collision-free even under programmatic bulk adds.
func NewDeviceID() string {
	return "dev_" + uuid.NewString()
}
