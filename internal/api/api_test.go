package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ptcharoen/agrirot/internal/domain"
	"github.com/ptcharoen/agrirot/internal/pkg/constants"
	"github.com/ptcharoen/agrirot/internal/pkg/store"
	"github.com/ptcharoen/agrirot/internal/service/rotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	store.Store

	usages []*domain.MechanismUsage
	groups []*domain.MoAGroup
}

func (f *fakeStore) ListRecentMechanisms(context.Context, store.RecentMechanismsOpts) ([]*domain.MechanismUsage, error) {
	return f.usages, nil
}

func (f *fakeStore) ListMoAGroups(context.Context) ([]*domain.MoAGroup, error) {
	return f.groups, nil
}

func (f *fakeStore) GetPlanting(context.Context, int64) (*domain.Planting, error) {
	return nil, constants.ErrDBNotFound
}

func newTestService(t *testing.T, fs *fakeStore) *APIService {
	t.Helper()
	svc, err := NewAPIService(fs, rotation.Policy{})
	require.NoError(t, err)
	return svc
}

func doRequest(svc *APIService, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)
	return rec
}

func TestCheckRotationEndpoint_Violation(t *testing.T) {
	fs := &fakeStore{usages: []*domain.MechanismUsage{
		{ApplicationDate: time.Now(), MoACode: "4A", MechanismName: "Neonicotinoids", ProductName: "Provado"},
		{ApplicationDate: time.Now().AddDate(0, 0, -4), MoACode: "4A", MechanismName: "Neonicotinoids", ProductName: "Provado"},
	}}
	svc := newTestService(t, fs)

	rec := doRequest(svc, http.MethodGet, "/api/v1/plantings/1/rotation/check?target_id=3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var check domain.RotationCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &check))
	assert.Equal(t, domain.RotationStatusViolation, check.Status)
	assert.False(t, check.Compliant)
	assert.Equal(t, "4A", check.LastMechanism)
	assert.Equal(t, 2, check.ConsecutiveCount)
}

func TestCheckRotationEndpoint_MissingTargetIs400(t *testing.T) {
	svc := newTestService(t, &fakeStore{})

	rec := doRequest(svc, http.MethodGet, "/api/v1/plantings/1/rotation/check", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUsageHistoryEndpoint_EmptyHistoryIs200(t *testing.T) {
	svc := newTestService(t, &fakeStore{})

	rec := doRequest(svc, http.MethodGet, "/api/v1/plantings/1/rotation/history?target_id=3&limit=3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var history []*domain.MechanismUsage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Empty(t, history)
}

func TestRecordTreatmentEndpoint_UnknownPlantingIs404(t *testing.T) {
	svc := newTestService(t, &fakeStore{})

	body := `{"planting_id":99,"application_date":"2026-03-01","lines":[{"product_id":1,"target_id":2,"dosage_rate":"10","dosage_unit":"ml/20L"}]}`
	rec := doRequest(svc, http.MethodPost, "/api/v1/treatments", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordTreatmentEndpoint_EmptyLinesIs400(t *testing.T) {
	svc := newTestService(t, &fakeStore{})

	body := `{"planting_id":1,"application_date":"2026-03-01","lines":[]}`
	rec := doRequest(svc, http.MethodPost, "/api/v1/treatments", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMoAGroupsEndpoint(t *testing.T) {
	fs := &fakeStore{groups: []*domain.MoAGroup{
		{ID: 1, ClassificationSystem: domain.SystemIRAC, MoACode: "4A", MechanismName: "Neonicotinoids", ResistanceRisk: domain.ResistanceRiskMedium},
	}}
	svc := newTestService(t, fs)

	rec := doRequest(svc, http.MethodGet, "/api/v1/catalog/moa/groups", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var groups []*domain.MoAGroup
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "4A", groups[0].MoACode)
}

func TestBackfillEndpoint_RequiresAdminToken(t *testing.T) {
	svc := newTestService(t, &fakeStore{})

	rec := doRequest(svc, http.MethodPost, "/api/v1/catalog/moa/backfill", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
