package dto

import "github.com/shopspring/decimal"

type TreatmentLineRequest struct {
	ProductID  int64           `json:"product_id" validate:"required"`
	TargetID   int64           `json:"target_id" validate:"required"`
	DosageRate decimal.Decimal `json:"dosage_rate"`
	DosageUnit string          `json:"dosage_unit" validate:"required"`
}

type RecordTreatmentRequest struct {
	PlantingID      int64                  `json:"planting_id"`
	ApplicationDate string                 `json:"application_date"`
	ApplicationTime string                 `json:"application_time,omitempty"`
	Lines           []TreatmentLineRequest `json:"lines" validate:"dive"`
}

type RecordTreatmentResponse struct {
	TreatmentEventID int64 `json:"treatment_event_id"`
}
