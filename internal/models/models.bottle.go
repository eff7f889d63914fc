// FilePath: internal/models/models.bottle.go
package models

// Bottle is a tracked gas bottle with a log of weight readings.
type Bottle struct {
	ID            int64              `json:"id" db:"id"`
	PurchaseDate  Date               `json:"purchase_date" db:"purchase_date"`
	PurchasePrice float64            `json:"purchase_price" db:"purchase_price"`
	InitialWeight float64            `json:"initial_weight" db:"initial_weight"`
	FillingWeight float64            `json:"filling_weight" db:"filling_weight"`
	Active        bool               `json:"active" db:"active"`
	Operations    []*BottleOperation `json:"operations" db:"-"`
}

// BottleOperation is a single dated weight reading of a bottle.
type BottleOperation struct {
	ID       int64   `json:"id" db:"id"`
	BottleID int64   `json:"-" db:"bottle_id"`
	Date     Date    `json:"date" db:"date"`
	Weight   float64 `json:"weight" db:"weight"`
}

// BottleCreate is the payload for creating a bottle. Active defaults to true
// when omitted.
type BottleCreate struct {
	PurchaseDate  Date    `json:"purchase_date"`
	PurchasePrice float64 `json:"purchase_price"`
	InitialWeight float64 `json:"initial_weight"`
	FillingWeight float64 `json:"filling_weight"`
	Active        *bool   `json:"active"`
}

// BottleUpdate is the partial-update payload for a bottle; only the active
// flag is mutable after creation.
type BottleUpdate struct {
	Active *bool `json:"active"`
}

// BottleOperationCreate is the payload for recording a weight reading. When
// posted through the parent-scoped endpoint the path id overrides BottleID.
type BottleOperationCreate struct {
	Date     Date    `json:"date"`
	Weight   float64 `json:"weight"`
	BottleID int64   `json:"bottle_id"`
}
