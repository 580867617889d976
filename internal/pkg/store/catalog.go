package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ptcharoen/agrirot/internal/domain"
)

var (
	moaGroupColumns = []string{"id", "classification_system", "moa_code", "mechanism_name", "resistance_risk", "created_at", "updated_at"}
	productColumns  = []string{"id", "product_name", "active_ingredient", "product_type", "moa_group_id", "recommended_rate_min", "recommended_rate_max", "rate_unit", "created_at", "updated_at"}
	targetColumns   = []string{"id", "target_name", "scientific_name", "target_type", "created_at"}
)

func (s *store) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	query := builder().Select(productColumns...).
		From(tableProducts).
		Where(sq.Eq{"id": id})

	var selected domain.Product
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetTarget(ctx context.Context, id int64) (*domain.Target, error) {
	query := builder().Select(targetColumns...).
		From(tableTargets).
		Where(sq.Eq{"id": id})

	var selected domain.Target
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

// GetCurrentMechanism resolves the MoA group a product is assigned to right
// now. Returns ErrDBNotFound when the product has no assignment.
func (s *store) GetCurrentMechanism(ctx context.Context, productID int64) (*domain.MoAGroup, error) {
	query := builder().Select(
		"mg.id", "mg.classification_system", "mg.moa_code", "mg.mechanism_name",
		"mg.resistance_risk", "mg.created_at", "mg.updated_at").
		From(tableMoAGroups + " mg").
		Join(tableProducts + " p on p.moa_group_id=mg.id").
		Where(sq.Eq{"p.id": productID})

	var selected domain.MoAGroup
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListMoAGroups(ctx context.Context) ([]*domain.MoAGroup, error) {
	query := builder().Select(moaGroupColumns...).
		From(tableMoAGroups).
		OrderBy("classification_system, moa_code")

	var selected []*domain.MoAGroup
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListMoAGroupsBySystem(ctx context.Context, system string) ([]*domain.MoAGroup, error) {
	query := builder().Select(moaGroupColumns...).
		From(tableMoAGroups).
		Where(sq.Eq{"classification_system": system}).
		OrderBy("moa_code")

	var selected []*domain.MoAGroup
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpsertMoAGroup(ctx context.Context, group *domain.MoAGroup) (*domain.MoAGroup, error) {
	query := builder().Insert(tableMoAGroups).
		Columns("classification_system", "moa_code", "mechanism_name", "resistance_risk").
		Values(group.ClassificationSystem, group.MoACode, group.MechanismName, group.ResistanceRisk).
		Suffix(`on conflict (classification_system, moa_code) do update
set mechanism_name=excluded.mechanism_name,
	resistance_risk=excluded.resistance_risk,
	updated_at=now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	selectQuery := builder().Select(moaGroupColumns...).
		From(tableMoAGroups).
		Where(sq.And{
			sq.Eq{"classification_system": group.ClassificationSystem},
			sq.Eq{"moa_code": group.MoACode},
		})

	var selected domain.MoAGroup
	if err := s.pool.Getx(ctx, &selected, selectQuery); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListProductsForTarget(ctx context.Context, targetID int64) ([]*domain.TargetProduct, error) {
	query := builder().Select(
		"p.id as product_id", "p.product_name", "mg.moa_code", "mg.mechanism_name", "pt.efficacy_rating").
		From(tableProducts + " p").
		Join(tableProductTargets + " pt on pt.product_id=p.id").
		LeftJoin(tableMoAGroups + " mg on mg.id=p.moa_group_id").
		Where(sq.Eq{"pt.target_id": targetID}).
		OrderBy("pt.efficacy_rating desc, p.product_name")

	var selected []*domain.TargetProduct
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) InsertTarget(ctx context.Context, target *domain.Target) (*domain.Target, error) {
	query := builder().Insert(tableTargets).
		Columns("target_name", "scientific_name", "target_type").
		Values(target.TargetName, target.ScientificName, target.TargetType).
		Suffix("RETURNING " + joinColumns(targetColumns))

	var selected domain.Target
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) InsertProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := builder().Insert(tableProducts).
		Columns("product_name", "active_ingredient", "product_type", "moa_group_id",
			"recommended_rate_min", "recommended_rate_max", "rate_unit").
		Values(product.ProductName, product.ActiveIngredient, product.ProductType, product.MoAGroupID,
			product.RecommendedRateMin, product.RecommendedRateMax, product.RateUnit).
		Suffix("RETURNING " + joinColumns(productColumns))

	var selected domain.Product
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) LinkProductTarget(ctx context.Context, productID, targetID int64, efficacyRating int) error {
	query := builder().Insert(tableProductTargets).
		Columns("product_id", "target_id", "efficacy_rating").
		Values(productID, targetID, efficacyRating).
		Suffix(`on conflict (product_id, target_id) do update set efficacy_rating=excluded.efficacy_rating`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
