package treatment

import (
	"context"
	"errors"
	"testing"

	"github.com/ptcharoen/agrirot/internal/domain"
	"github.com/ptcharoen/agrirot/internal/domain/dto"
	"github.com/ptcharoen/agrirot/internal/pkg/constants"
	"github.com/ptcharoen/agrirot/internal/pkg/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	store.Store

	plantings  map[int64]*domain.Planting
	products   map[int64]*domain.Product
	targets    map[int64]*domain.Target
	mechanisms map[int64]*domain.MoAGroup

	insertedEvent *domain.TreatmentEvent
	insertedLines []*domain.TreatmentLine
	insertCalls   int
}

func (f *fakeStore) GetPlanting(_ context.Context, id int64) (*domain.Planting, error) {
	if p, ok := f.plantings[id]; ok {
		return p, nil
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) GetTarget(_ context.Context, id int64) (*domain.Target, error) {
	if t, ok := f.targets[id]; ok {
		return t, nil
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) GetCurrentMechanism(_ context.Context, productID int64) (*domain.MoAGroup, error) {
	if m, ok := f.mechanisms[productID]; ok {
		return m, nil
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) InsertTreatment(_ context.Context, event *domain.TreatmentEvent, lines []*domain.TreatmentLine) (int64, error) {
	f.insertCalls++
	f.insertedEvent = event
	f.insertedLines = lines
	return 42, nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		plantings: map[int64]*domain.Planting{
			1: {ID: 1, Status: domain.PlantingStatusActive},
			2: {ID: 2, Status: domain.PlantingStatusHarvested},
		},
		products: map[int64]*domain.Product{
			10: {ID: 10, ProductName: "Provado"},
			11: {ID: 11, ProductName: "Prevathon"},
		},
		targets: map[int64]*domain.Target{
			100: {ID: 100, TargetName: "Thrips"},
		},
		mechanisms: map[int64]*domain.MoAGroup{
			10: {MoACode: "4A", MechanismName: "Neonicotinoids"},
			11: {MoACode: "28", MechanismName: "Diamides"},
		},
	}
}

func validRequest() *dto.RecordTreatmentRequest {
	return &dto.RecordTreatmentRequest{
		PlantingID:      1,
		ApplicationDate: "2026-03-01",
		ApplicationTime: "07:30",
		Lines: []dto.TreatmentLineRequest{
			{ProductID: 10, TargetID: 100, DosageRate: decimal.NewFromInt(15), DosageUnit: "ml/20L"},
		},
	}
}

func TestRecordTreatment_FreezesSnapshotFields(t *testing.T) {
	fs := newFakeStore()
	svc := NewService(fs)

	eventID, err := svc.RecordTreatment(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), eventID)

	require.Len(t, fs.insertedLines, 1)
	line := fs.insertedLines[0]
	assert.Equal(t, "Provado", line.ProductNameSnapshot)
	assert.Equal(t, "4A", line.MoACodeSnapshot)
	assert.Equal(t, "Neonicotinoids", line.MechanismSnapshot)
	require.NotNil(t, line.TargetID)
	assert.Equal(t, int64(100), *line.TargetID)
	require.NotNil(t, fs.insertedEvent.ApplicationTime)
	assert.Equal(t, "07:30", *fs.insertedEvent.ApplicationTime)
}

func TestRecordTreatment_SnapshotSurvivesCatalogChange(t *testing.T) {
	fs := newFakeStore()
	svc := NewService(fs)

	_, err := svc.RecordTreatment(context.Background(), validRequest())
	require.NoError(t, err)

	// reassigning the product's mechanism afterwards must not touch the
	// recorded line
	fs.mechanisms[10] = &domain.MoAGroup{MoACode: "3A", MechanismName: "Pyrethroids"}

	assert.Equal(t, "4A", fs.insertedLines[0].MoACodeSnapshot)
	assert.Equal(t, "Neonicotinoids", fs.insertedLines[0].MechanismSnapshot)
}

func TestRecordTreatment_ValidationRejectsBeforeAnyWrite(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *dto.RecordTreatmentRequest)
		wantErr error
	}{
		{"missing planting id", func(r *dto.RecordTreatmentRequest) { r.PlantingID = 0 }, constants.ErrMissingPlantingID},
		{"bad date", func(r *dto.RecordTreatmentRequest) { r.ApplicationDate = "01/03/2026" }, constants.ErrBadApplicationDate},
		{"bad time", func(r *dto.RecordTreatmentRequest) { r.ApplicationTime = "7am" }, constants.ErrBadApplicationTime},
		{"no lines", func(r *dto.RecordTreatmentRequest) { r.Lines = nil }, constants.ErrEmptyTreatmentLines},
		{"zero dosage", func(r *dto.RecordTreatmentRequest) { r.Lines[0].DosageRate = decimal.Zero }, constants.ErrNonPositiveDosage},
		{"negative dosage", func(r *dto.RecordTreatmentRequest) { r.Lines[0].DosageRate = decimal.NewFromInt(-1) }, constants.ErrNonPositiveDosage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFakeStore()
			svc := NewService(fs)

			req := validRequest()
			tt.mutate(req)

			_, err := svc.RecordTreatment(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, fs.insertCalls)
		})
	}
}

func TestRecordTreatment_UnknownReferences(t *testing.T) {
	fs := newFakeStore()
	svc := NewService(fs)

	req := validRequest()
	req.PlantingID = 99
	_, err := svc.RecordTreatment(context.Background(), req)
	assert.ErrorIs(t, err, constants.ErrPlantingNotFound)

	req = validRequest()
	req.Lines[0].ProductID = 99
	_, err = svc.RecordTreatment(context.Background(), req)
	assert.ErrorIs(t, err, constants.ErrProductNotFound)

	req = validRequest()
	req.Lines[0].TargetID = 99
	_, err = svc.RecordTreatment(context.Background(), req)
	assert.ErrorIs(t, err, constants.ErrTargetNotFound)

	assert.Zero(t, fs.insertCalls)
}

func TestRecordTreatment_InactivePlanting(t *testing.T) {
	fs := newFakeStore()
	svc := NewService(fs)

	req := validRequest()
	req.PlantingID = 2

	_, err := svc.RecordTreatment(context.Background(), req)
	assert.ErrorIs(t, err, constants.ErrPlantingNotActive)
	assert.Zero(t, fs.insertCalls)
}

func TestRecordTreatment_ProductWithoutMechanism(t *testing.T) {
	fs := newFakeStore()
	delete(fs.mechanisms, 10)
	svc := NewService(fs)

	_, err := svc.RecordTreatment(context.Background(), validRequest())
	assert.ErrorIs(t, err, constants.ErrProductWithoutMoA)
	assert.Zero(t, fs.insertCalls)
}

func TestRecordTreatment_BadThirdLineWritesNothing(t *testing.T) {
	fs := newFakeStore()
	svc := NewService(fs)

	req := validRequest()
	req.Lines = []dto.TreatmentLineRequest{
		{ProductID: 10, TargetID: 100, DosageRate: decimal.NewFromInt(10), DosageUnit: "ml/20L"},
		{ProductID: 11, TargetID: 100, DosageRate: decimal.NewFromInt(20), DosageUnit: "ml/20L"},
		{ProductID: 10, TargetID: 999, DosageRate: decimal.NewFromInt(30), DosageUnit: "ml/20L"},
	}

	_, err := svc.RecordTreatment(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constants.ErrTargetNotFound))
	assert.Zero(t, fs.insertCalls)
	assert.Nil(t, fs.insertedLines)
}
