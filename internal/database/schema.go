// FilePath: internal/database/schema.go
package database

import (
	"fmt"
)

// The two stores are schema-isolated by construction: the device store only
// ever receives deviceSchema, the bottle store only bottleSchema. Dates are
// TEXT in ISO form so ORDER BY sorts chronologically. The FK cascade is
// declared for safety, but parent deletion always runs the explicit
// child-then-parent transaction in the repositories.

const deviceSchema = `
CREATE TABLE IF NOT EXISTS devices (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	name   TEXT    NOT NULL,
	active BOOLEAN NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS device_operations (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	device_id INTEGER NOT NULL REFERENCES devices(id) ON DELETE CASCADE,
	date      TEXT    NOT NULL,
	duration  INTEGER NOT NULL,
	note      TEXT
);

CREATE INDEX IF NOT EXISTS idx_device_operations_device_id
	ON device_operations(device_id);
`

const bottleSchema = `
CREATE TABLE IF NOT EXISTS bottles (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	purchase_date  TEXT    NOT NULL,
	purchase_price REAL    NOT NULL,
	initial_weight REAL    NOT NULL,
	filling_weight REAL    NOT NULL,
	active         BOOLEAN NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS bottle_operations (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	bottle_id INTEGER NOT NULL REFERENCES bottles(id) ON DELETE CASCADE,
	date      TEXT    NOT NULL,
	weight    REAL    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bottle_operations_bottle_id
	ON bottle_operations(bottle_id);
`

// EnsureDeviceSchema creates the device store tables if they do not exist.
// It is idempotent and runs before the server accepts traffic.
func EnsureDeviceSchema(db DB) error {
	if _, err := db.GetDB().Exec(deviceSchema); err != nil {
		return fmt.Errorf("error ensuring device schema: %w", err)
	}
	return nil
}

// EnsureBottleSchema creates the bottle store tables if they do not exist.
func EnsureBottleSchema(db DB) error {
	if _, err := db.GetDB().Exec(bottleSchema); err != nil {
		return fmt.Errorf("error ensuring bottle schema: %w", err)
	}
	return nil
}
