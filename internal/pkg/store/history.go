package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ptcharoen/agrirot/internal/domain"
)

type RecentMechanismsOpts struct {
	PlantingID int64
	TargetID   int64
	Limit      int
}

// recentMechanismsQuery builds the one history read shared by the
// compliance check and the recommendation ranker. Only snapshot columns are
// selected; the current catalog state of any product never enters here.
// Newest first: event date, then event time, then line id so that lines
// recorded later on the same occasion come out first.
func recentMechanismsQuery(opts RecentMechanismsOpts) sq.SelectBuilder {
	return builder().Select(
		"te.application_date",
		"te.application_time",
		"tl.moa_code_snapshot as moa_code",
		"tl.mechanism_snapshot as mechanism_name",
		"tl.product_name_snapshot as product_name").
		From(tableLines + " tl").
		Join(tableEvents + " te on te.id=tl.event_id").
		Where(sq.And{
			sq.Eq{"te.planting_id": opts.PlantingID},
			sq.Eq{"tl.target_id": opts.TargetID},
		}).
		OrderBy("te.application_date desc", "te.application_time desc nulls last", "tl.id desc").
		Limit(uint64(opts.Limit))
}

func (s *store) ListRecentMechanisms(ctx context.Context, opts RecentMechanismsOpts) ([]*domain.MechanismUsage, error) {
	var selected []*domain.MechanismUsage
	if err := s.pool.Selectx(ctx, &selected, recentMechanismsQuery(opts)); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
