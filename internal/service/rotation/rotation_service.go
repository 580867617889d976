package rotation

import (
	"context"
	"fmt"
	"sort"

	"github.com/ptcharoen/agrirot/internal/domain"
	"github.com/ptcharoen/agrirot/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

// Policy is the rotation discipline the checker enforces. MaxConsecutive is
// the run length that triggers a violation; the default of 2 flags any two
// identical mechanisms in a row.
type Policy struct {
	MaxConsecutive int
	Lookback       int
	HistoryLimit   int
}

const (
	defaultMaxConsecutive = 2
	defaultLookback       = 2
	defaultHistoryLimit   = 5
)

func (p Policy) withDefaults() Policy {
	if p.MaxConsecutive <= 0 {
		p.MaxConsecutive = defaultMaxConsecutive
	}
	if p.Lookback <= 0 {
		p.Lookback = defaultLookback
	}
	if p.HistoryLimit <= 0 {
		p.HistoryLimit = defaultHistoryLimit
	}
	return p
}

type Service struct {
	store  store.Store
	policy Policy
}

func NewService(store store.Store, policy Policy) *Service {
	return &Service{store: store, policy: policy.withDefaults()}
}

// UsageHistory returns the newest-first mechanism sequence for a target on
// a planting, read from frozen line snapshots. No history is an empty
// slice, never an error.
func (s *Service) UsageHistory(ctx context.Context, plantingID, targetID int64, limit int) ([]*domain.MechanismUsage, error) {
	if limit <= 0 {
		limit = s.policy.HistoryLimit
	}

	usages, err := s.store.ListRecentMechanisms(ctx, store.RecentMechanismsOpts{
		PlantingID: plantingID,
		TargetID:   targetID,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("store.ListRecentMechanisms: %w", err)
	}
	if usages == nil {
		usages = []*domain.MechanismUsage{}
	}

	return usages, nil
}

// CheckRotation classifies the recent mechanism sequence. Fewer than two
// entries cannot violate anything; with two or more, a repeated moa_code at
// the head of the sequence is a violation and the count is the run length
// of that code.
func (s *Service) CheckRotation(ctx context.Context, plantingID, targetID int64) (*domain.RotationCheck, error) {
	window := s.policy.MaxConsecutive + 1
	if window < 3 {
		window = 3
	}

	recent, err := s.UsageHistory(ctx, plantingID, targetID, window)
	if err != nil {
		return nil, err
	}

	if len(recent) == 0 {
		return &domain.RotationCheck{
			Status:    domain.RotationStatusNoHistory,
			Compliant: true,
		}, nil
	}

	head := recent[0].MoACode
	run := 1
	for _, usage := range recent[1:] {
		if usage.MoACode != head {
			break
		}
		run++
	}

	if run >= s.policy.MaxConsecutive {
		return &domain.RotationCheck{
			Status:           domain.RotationStatusViolation,
			Compliant:        false,
			Reason:           fmt.Sprintf("mechanism %s used %d times in a row against the same target; rotate to a different MoA group", head, run),
			LastMechanism:    head,
			ConsecutiveCount: run,
		}, nil
	}

	return &domain.RotationCheck{
		Status:           domain.RotationStatusCompliant,
		Compliant:        true,
		LastMechanism:    head,
		ConsecutiveCount: run,
	}, nil
}

// Recommend ranks catalog candidates for the next treatment against the
// target. Candidates carry their current mechanism (that is what would be
// sprayed next), while the recently-used set comes from frozen history.
func (s *Service) Recommend(ctx context.Context, plantingID, targetID int64, lookback int) ([]*domain.Recommendation, error) {
	if lookback <= 0 {
		lookback = s.policy.Lookback
	}

	var (
		recent     []*domain.MechanismUsage
		candidates []*domain.TargetProduct
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		recent, err = s.UsageHistory(egCtx, plantingID, targetID, lookback)
		return err
	})
	eg.Go(func() error {
		var err error
		candidates, err = s.store.ListProductsForTarget(egCtx, targetID)
		if err != nil {
			return fmt.Errorf("store.ListProductsForTarget: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	recentCodes := make(map[string]struct{}, len(recent))
	for _, usage := range recent {
		recentCodes[usage.MoACode] = struct{}{}
	}

	recommendations := make([]*domain.Recommendation, 0, len(candidates))
	for _, candidate := range candidates {
		rec := &domain.Recommendation{
			ProductID:      candidate.ProductID,
			ProductName:    candidate.ProductName,
			EfficacyRating: candidate.EfficacyRating,
		}
		if candidate.MoACode != nil {
			rec.MoACode = *candidate.MoACode
			_, rec.RecentlyUsed = recentCodes[*candidate.MoACode]
		}
		if candidate.MechanismName != nil {
			rec.MechanismName = *candidate.MechanismName
		}
		recommendations = append(recommendations, rec)
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		a, b := recommendations[i], recommendations[j]
		if a.RecentlyUsed != b.RecentlyUsed {
			return !a.RecentlyUsed
		}
		if a.EfficacyRating != b.EfficacyRating {
			return a.EfficacyRating > b.EfficacyRating
		}
		return a.ProductName < b.ProductName
	})

	return recommendations, nil
}
