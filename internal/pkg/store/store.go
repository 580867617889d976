package store

import (
	"context"

	"github.com/ptcharoen/agrirot/internal/domain"
	"github.com/ptcharoen/agrirot/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the persistence boundary of the rotation engine. The catalog
// half is read-mostly reference data; the treatment half is append-only
// history. Services depend on this interface so tests can swap in fakes.
type Store interface {
	// catalog
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetTarget(ctx context.Context, id int64) (*domain.Target, error)
	GetCurrentMechanism(ctx context.Context, productID int64) (*domain.MoAGroup, error)
	ListMoAGroups(ctx context.Context) ([]*domain.MoAGroup, error)
	ListMoAGroupsBySystem(ctx context.Context, system string) ([]*domain.MoAGroup, error)
	UpsertMoAGroup(ctx context.Context, group *domain.MoAGroup) (*domain.MoAGroup, error)
	ListProductsForTarget(ctx context.Context, targetID int64) ([]*domain.TargetProduct, error)
	InsertTarget(ctx context.Context, target *domain.Target) (*domain.Target, error)
	InsertProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	LinkProductTarget(ctx context.Context, productID, targetID int64, efficacyRating int) error

	// plantings
	GetPlanting(ctx context.Context, id int64) (*domain.Planting, error)
	InsertPlanting(ctx context.Context, planting *domain.Planting) (*domain.Planting, error)

	// treatment history
	InsertTreatment(ctx context.Context, event *domain.TreatmentEvent, lines []*domain.TreatmentLine) (int64, error)
	ListRecentMechanisms(ctx context.Context, opts RecentMechanismsOpts) ([]*domain.MechanismUsage, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
