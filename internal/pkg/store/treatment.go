package store

import (
	"context"
	"fmt"

	"github.com/ptcharoen/agrirot/internal/domain"
	"github.com/ptcharoen/agrirot/internal/pkg/store/xpgx"
)

// InsertTreatment writes the event and all its lines in one transaction.
// A failure on any line leaves nothing behind.
func (s *store) InsertTreatment(
	ctx context.Context,
	event *domain.TreatmentEvent,
	lines []*domain.TreatmentLine,
) (int64, error) {
	var eventID int64

	err := s.pool.WithTx(ctx, func(ctx context.Context, tx xpgx.Pool) error {
		insertEvent := builder().Insert(tableEvents).
			Columns("planting_id", "application_date", "application_time").
			Values(event.PlantingID, event.ApplicationDate, event.ApplicationTime).
			Suffix("RETURNING id")

		var inserted struct {
			ID int64 `db:"id"`
		}
		if err := tx.Getx(ctx, &inserted, insertEvent); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
		eventID = inserted.ID

		insertLines := builder().Insert(tableLines).
			Columns("event_id", "product_id", "target_id", "dosage_rate", "dosage_unit",
				"product_name_snapshot", "moa_code_snapshot", "mechanism_snapshot")

		for _, line := range lines {
			insertLines = insertLines.Values(
				eventID, line.ProductID, line.TargetID, line.DosageRate, line.DosageUnit,
				line.ProductNameSnapshot, line.MoACodeSnapshot, line.MechanismSnapshot)
		}

		if _, err := tx.Execx(ctx, insertLines); err != nil {
			return fmt.Errorf("insert lines: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, wrapErr(err)
	}

	return eventID, nil
}
