package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ptcharoen/agrirot/internal/domain"
)

var plantingColumns = []string{"id", "plot_id", "crop_id", "planting_date", "status", "created_at", "updated_at"}

func (s *store) GetPlanting(ctx context.Context, id int64) (*domain.Planting, error) {
	query := builder().Select(plantingColumns...).
		From(tablePlantings).
		Where(sq.Eq{"id": id})

	var selected domain.Planting
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) InsertPlanting(ctx context.Context, planting *domain.Planting) (*domain.Planting, error) {
	status := planting.Status
	if status == "" {
		status = domain.PlantingStatusActive
	}

	query := builder().Insert(tablePlantings).
		Columns("plot_id", "crop_id", "planting_date", "status").
		Values(planting.PlotID, planting.CropID, planting.PlantingDate, status).
		Suffix("RETURNING " + joinColumns(plantingColumns))

	var selected domain.Planting
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}
