package store

import (
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ptcharoen/agrirot/internal/pkg/constants"
)

const (
	tableMoAGroups      = "moa_groups"
	tableProducts       = "products"
	tableTargets        = "targets"
	tableProductTargets = "product_targets"
	tablePlantings      = "plantings"
	tableEvents         = "treatment_events"
	tableLines          = "treatment_lines"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
