package domain

import "time"

type PlantingStatus string

const (
	PlantingStatusActive    PlantingStatus = "active"
	PlantingStatusHarvested PlantingStatus = "harvested"
	PlantingStatusFailed    PlantingStatus = "failed"
)

// Planting is one crop's occupancy of one plot for one growing cycle.
// Rotation is tracked per planting, not per plot.
type Planting struct {
	ID           int64          `db:"id" json:"id"`
	PlotID       int64          `db:"plot_id" json:"plot_id"`
	CropID       int64          `db:"crop_id" json:"crop_id"`
	PlantingDate time.Time      `db:"planting_date" json:"planting_date"`
	Status       PlantingStatus `db:"status" json:"status"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}
