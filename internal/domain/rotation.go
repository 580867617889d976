package domain

type RotationStatus string

const (
	// RotationStatusNoHistory means no treatment against the target has
	// been recorded yet; always compliant.
	RotationStatusNoHistory RotationStatus = "no_history"
	RotationStatusCompliant RotationStatus = "compliant"
	RotationStatusViolation RotationStatus = "violation"
)

type RotationCheck struct {
	Status           RotationStatus `json:"status"`
	Compliant        bool           `json:"compliant"`
	Reason           string         `json:"reason,omitempty"`
	LastMechanism    string         `json:"last_mechanism,omitempty"`
	ConsecutiveCount int            `json:"consecutive_count"`
}

// Recommendation is one ranked candidate for the next treatment. Mechanism
// fields reflect the product's current catalog assignment, not a snapshot,
// since that is what would actually be applied.
type Recommendation struct {
	ProductID      int64  `json:"product_id"`
	ProductName    string `json:"product_name"`
	MoACode        string `json:"moa_code,omitempty"`
	MechanismName  string `json:"mechanism_name,omitempty"`
	EfficacyRating int    `json:"efficacy_rating"`
	RecentlyUsed   bool   `json:"recently_used"`
}
