package treatment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ptcharoen/agrirot/internal/domain"
	"github.com/ptcharoen/agrirot/internal/domain/dto"
	"github.com/ptcharoen/agrirot/internal/pkg/constants"
	"github.com/ptcharoen/agrirot/internal/pkg/logger"
	"github.com/ptcharoen/agrirot/internal/pkg/store"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// RecordTreatment validates the request, freezes a mode-of-action snapshot
// for every line from the catalog's current state, and appends the event
// with all lines in one transaction. Validation runs fully before the first
// write, so a bad line means nothing is persisted.
func (s *Service) RecordTreatment(ctx context.Context, req *dto.RecordTreatmentRequest) (int64, error) {
	event, err := validateShape(req)
	if err != nil {
		return 0, err
	}

	planting, err := s.store.GetPlanting(ctx, req.PlantingID)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return 0, fmt.Errorf("planting %d: %w", req.PlantingID, constants.ErrPlantingNotFound)
		}
		return 0, fmt.Errorf("store.GetPlanting: %w", err)
	}
	if planting.Status != domain.PlantingStatusActive {
		return 0, fmt.Errorf("planting %d has status %q: %w", planting.ID, planting.Status, constants.ErrPlantingNotActive)
	}

	lines := make([]*domain.TreatmentLine, 0, len(req.Lines))
	for i, lineReq := range req.Lines {
		line, err := s.resolveLine(ctx, i, lineReq)
		if err != nil {
			return 0, err
		}
		lines = append(lines, line)
	}

	eventID, err := s.store.InsertTreatment(ctx, event, lines)
	if err != nil {
		logger.Errorf(ctx, "store.InsertTreatment: %s", err.Error())
		return 0, fmt.Errorf("store.InsertTreatment: %w", err)
	}

	logger.Infof(ctx, "recorded treatment event %d on planting %d with %d lines", eventID, req.PlantingID, len(lines))
	return eventID, nil
}

func validateShape(req *dto.RecordTreatmentRequest) (*domain.TreatmentEvent, error) {
	if req.PlantingID == 0 {
		return nil, constants.ErrMissingPlantingID
	}

	date, err := time.Parse(dateLayout, req.ApplicationDate)
	if err != nil {
		return nil, constants.ErrBadApplicationDate
	}

	event := &domain.TreatmentEvent{
		PlantingID:      req.PlantingID,
		ApplicationDate: date,
	}
	if req.ApplicationTime != "" {
		if _, err = time.Parse(timeLayout, req.ApplicationTime); err != nil {
			return nil, constants.ErrBadApplicationTime
		}
		t := req.ApplicationTime
		event.ApplicationTime = &t
	}

	if len(req.Lines) == 0 {
		return nil, constants.ErrEmptyTreatmentLines
	}
	for i, line := range req.Lines {
		if line.DosageRate.Sign() <= 0 {
			return nil, fmt.Errorf("line %d: %w", i, constants.ErrNonPositiveDosage)
		}
	}

	return event, nil
}

// resolveLine checks the line's references and copies the snapshot fields.
// This is the only place mechanism identity is captured; nothing downstream
// re-derives it from the catalog.
func (s *Service) resolveLine(ctx context.Context, idx int, req dto.TreatmentLineRequest) (*domain.TreatmentLine, error) {
	product, err := s.store.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, fmt.Errorf("line %d, product %d: %w", idx, req.ProductID, constants.ErrProductNotFound)
		}
		return nil, fmt.Errorf("store.GetProduct: %w", err)
	}

	if _, err = s.store.GetTarget(ctx, req.TargetID); err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, fmt.Errorf("line %d, target %d: %w", idx, req.TargetID, constants.ErrTargetNotFound)
		}
		return nil, fmt.Errorf("store.GetTarget: %w", err)
	}

	mechanism, err := s.store.GetCurrentMechanism(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, fmt.Errorf("line %d, product %d: %w", idx, req.ProductID, constants.ErrProductWithoutMoA)
		}
		return nil, fmt.Errorf("store.GetCurrentMechanism: %w", err)
	}

	targetID := req.TargetID
	return &domain.TreatmentLine{
		ProductID:           req.ProductID,
		TargetID:            &targetID,
		DosageRate:          req.DosageRate,
		DosageUnit:          req.DosageUnit,
		ProductNameSnapshot: product.ProductName,
		MoACodeSnapshot:     mechanism.MoACode,
		MechanismSnapshot:   mechanism.MechanismName,
	}, nil
}
