package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Classification systems assigning mode-of-action codes.
const (
	SystemIRAC = "IRAC"
	SystemFRAC = "FRAC"
	SystemHRAC = "HRAC"
)

type ResistanceRisk string

const (
	ResistanceRiskLow    ResistanceRisk = "low"
	ResistanceRiskMedium ResistanceRisk = "medium"
	ResistanceRiskHigh   ResistanceRisk = "high"
)

// MoAGroup is one documented mechanism within one classification taxonomy,
// e.g. IRAC 4A. (classification_system, moa_code) is unique.
type MoAGroup struct {
	ID                   int64          `db:"id" json:"id"`
	ClassificationSystem string         `db:"classification_system" json:"classification_system"`
	MoACode              string         `db:"moa_code" json:"moa_code"`
	MechanismName        string         `db:"mechanism_name" json:"mechanism_name"`
	ResistanceRisk       ResistanceRisk `db:"resistance_risk" json:"resistance_risk"`
	CreatedAt            time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at" json:"updated_at"`
}

type Product struct {
	ID                 int64               `db:"id" json:"id"`
	ProductName        string              `db:"product_name" json:"product_name"`
	ActiveIngredient   string              `db:"active_ingredient" json:"active_ingredient"`
	ProductType        string              `db:"product_type" json:"product_type"`
	MoAGroupID         *int64              `db:"moa_group_id" json:"moa_group_id,omitempty"`
	RecommendedRateMin decimal.NullDecimal `db:"recommended_rate_min" json:"recommended_rate_min,omitempty"`
	RecommendedRateMax decimal.NullDecimal `db:"recommended_rate_max" json:"recommended_rate_max,omitempty"`
	RateUnit           string              `db:"rate_unit" json:"rate_unit,omitempty"`
	CreatedAt          time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time           `db:"updated_at" json:"updated_at"`
}

type Target struct {
	ID             int64     `db:"id" json:"id"`
	TargetName     string    `db:"target_name" json:"target_name"`
	ScientificName string    `db:"scientific_name" json:"scientific_name,omitempty"`
	TargetType     string    `db:"target_type" json:"target_type"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// TargetProduct is one recommendation candidate: a product registered as
// effective against a target, joined with its current mechanism. MoA fields
// are nil for products without a group assignment.
type TargetProduct struct {
	ProductID      int64   `db:"product_id" json:"product_id"`
	ProductName    string  `db:"product_name" json:"product_name"`
	MoACode        *string `db:"moa_code" json:"moa_code,omitempty"`
	MechanismName  *string `db:"mechanism_name" json:"mechanism_name,omitempty"`
	EfficacyRating int     `db:"efficacy_rating" json:"efficacy_rating"`
}
