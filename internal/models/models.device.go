// FilePath: internal/models/models.device.go
package models

// Device is a tracked appliance (e.g. an irrigation controller) with a log of
// usage sessions. Operations are owned exclusively by their device and are
// eager-loaded newest-first whenever the device is fetched.
type Device struct {
	ID         int64              `json:"id" db:"id"`
	Name       string             `json:"name" db:"name"`
	Active     bool               `json:"active" db:"active"`
	Operations []*DeviceOperation `json:"operations" db:"-"`
}

// DeviceOperation is a single dated usage record of a device.
// The owning device id is not part of the read shape; nested listings make it
// redundant.
type DeviceOperation struct {
	ID       int64   `json:"id" db:"id"`
	DeviceID int64   `json:"-" db:"device_id"`
	Date     Date    `json:"date" db:"date"`
	Duration int     `json:"duration" db:"duration"`
	Note     *string `json:"note,omitempty" db:"note"`
}

// DeviceCreate is the payload for creating a device. Active defaults to true
// when omitted.
type DeviceCreate struct {
	Name   string `json:"name"`
	Active *bool  `json:"active"`
}

// DeviceUpdate is the partial-update payload for a device. Only non-nil
// fields are applied; the active flag is the device's single mutable field.
type DeviceUpdate struct {
	Active *bool `json:"active"`
}

// DeviceOperationCreate is the payload for recording a usage session. When
// posted through the parent-scoped endpoint the path id overrides DeviceID.
type DeviceOperationCreate struct {
	Date     Date    `json:"date"`
	Duration int     `json:"duration"`
	Note     *string `json:"note"`
	DeviceID int64   `json:"device_id"`
}
