package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TreatmentEvent is one spraying occasion on one planting. Lines hang off
// it; the pair is written atomically and never mutated afterwards.
type TreatmentEvent struct {
	ID              int64     `db:"id" json:"id"`
	PlantingID      int64     `db:"planting_id" json:"planting_id"`
	ApplicationDate time.Time `db:"application_date" json:"application_date"`
	ApplicationTime *string   `db:"application_time" json:"application_time,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// TreatmentLine is one product applied against one target within an event.
// The three snapshot fields are copied from the catalog at record time and
// stay frozen even if the product's MoA assignment changes later.
type TreatmentLine struct {
	ID                  int64           `db:"id" json:"id"`
	EventID             int64           `db:"event_id" json:"event_id"`
	ProductID           int64           `db:"product_id" json:"product_id"`
	TargetID            *int64          `db:"target_id" json:"target_id,omitempty"`
	DosageRate          decimal.Decimal `db:"dosage_rate" json:"dosage_rate"`
	DosageUnit          string          `db:"dosage_unit" json:"dosage_unit"`
	ProductNameSnapshot string          `db:"product_name_snapshot" json:"product_name_snapshot"`
	MoACodeSnapshot     string          `db:"moa_code_snapshot" json:"moa_code_snapshot"`
	MechanismSnapshot   string          `db:"mechanism_snapshot" json:"mechanism_snapshot"`
}

// MechanismUsage is one aggregator row: what mechanism hit the target on
// what date, newest first. Values come from line snapshots only.
type MechanismUsage struct {
	ApplicationDate time.Time `db:"application_date" json:"application_date"`
	ApplicationTime *string   `db:"application_time" json:"application_time,omitempty"`
	MoACode         string    `db:"moa_code" json:"moa_code"`
	MechanismName   string    `db:"mechanism_name" json:"mechanism_name"`
	ProductName     string    `db:"product_name" json:"product_name"`
}
